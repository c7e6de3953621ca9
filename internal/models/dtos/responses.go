package dtos

import "time"

// APIResponse is the standard envelope returned by all endpoints
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	Field        string `json:"field,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// TourSummary is one entry in the tour list
type TourSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	LegCount    int     `json:"leg_count"`
	CreatedAt   string  `json:"created_at"`
}

// LegStatus is a leg enriched with the caller's progress on it
type LegStatus struct {
	ID          int64   `json:"id"`
	Order       int     `json:"order"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Description *string `json:"description,omitempty"`
	// State is one of approved, pending, rejected, open
	State string `json:"state"`
}

// TourDetail is the tour page payload for an authenticated caller
type TourDetail struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	Legs        []LegStatus `json:"legs"`
	NextLegID   *int64      `json:"next_leg_id,omitempty"`
	Completed   bool        `json:"completed"`
}

// PirepResponse is one PIREP as returned to its submitter
type PirepResponse struct {
	ID          int64      `json:"id"`
	LegID       int64      `json:"leg_id"`
	Callsign    string     `json:"callsign"`
	Comment     *string    `json:"comment,omitempty"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote  *string    `json:"review_note,omitempty"`
}

// ReviewQueueEntry is one row of the admin review queue (sqlx read model)
type ReviewQueueEntry struct {
	PirepID     int64     `db:"pirep_id" json:"pirep_id"`
	UserName    string    `db:"user_name" json:"user_name"`
	UserEmail   string    `db:"user_email" json:"user_email"`
	TourID      int64     `db:"tour_id" json:"tour_id"`
	TourTitle   string    `db:"tour_title" json:"tour_title"`
	LegOrder    int       `db:"leg_order" json:"leg_order"`
	Departure   string    `db:"departure_code" json:"departure"`
	Arrival     string    `db:"arrival_code" json:"arrival"`
	Callsign    string    `db:"callsign" json:"callsign"`
	Comment     *string   `db:"comment" json:"comment,omitempty"`
	Status      string    `db:"status" json:"status"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}

// TourProgressRow aggregates a user's standing on one tour (sqlx read model)
type TourProgressRow struct {
	TourID       int64 `db:"tour_id" json:"tour_id"`
	TotalLegs    int   `db:"total_legs" json:"total_legs"`
	ApprovedLegs int   `db:"approved_legs" json:"approved_legs"`
	PendingLegs  int   `db:"pending_legs" json:"pending_legs"`
}

// BadgeResponse is one badge in list or profile payloads
type BadgeResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	IconURL     *string    `json:"icon_url,omitempty"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

// CompletedTour is one completed-tour record in a profile
type CompletedTour struct {
	TourID      int64     `json:"tour_id"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}

// UserProfile is the GET /users/me payload
type UserProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	AvatarURL      *string         `json:"avatar_url,omitempty"`
	Role           string          `json:"role"`
	Badges         []BadgeResponse `json:"badges"`
	CompletedTours []CompletedTour `json:"completed_tours"`
}

// SessionResponse carries the freshly minted session token
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
}

// HealthResponse is the GET /healthCheck payload
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}
