package dtos

// PirepSubmitRequest is the body of POST /tours/{tourID}/pireps
type PirepSubmitRequest struct {
	Callsign string  `json:"callsign"`
	Comment  *string `json:"comment,omitempty"`
}

// PirepReviewRequest is the body of POST /admin/pireps/{pirepID}/review
type PirepReviewRequest struct {
	Status     string  `json:"status"`
	ReviewNote *string `json:"review_note,omitempty"`
}

// LegInput is one leg of a tour create/update payload
type LegInput struct {
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Description *string `json:"description,omitempty"`
	Order       int     `json:"order"`
}

// TourUpsertRequest is the body of tour create/update admin calls.
// Legs replace the tour's existing legs wholesale.
type TourUpsertRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Legs        []LegInput `json:"legs"`
}

// AirportUpsertRequest is the body of airport create/update admin calls
type AirportUpsertRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// BadgeUpsertRequest is the body of badge create/update admin calls
type BadgeUpsertRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IconURL     *string `json:"icon_url,omitempty"`
}

// SessionRequest carries the identity-provider-verified profile exchanged
// for a session token. Verification against the provider happens upstream.
type SessionRequest struct {
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}
