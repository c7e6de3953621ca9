package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vattours/server/internal/constants"
	"vattours/server/internal/models/dtos"
)

// PirepQueryRepository serves the raw SQL read models the admin screens use.
// It stays on sqlx because the queries are joins shaped for display, not
// entity graphs.
type PirepQueryRepository struct {
	db *sqlx.DB
}

// NewPirepQueryRepository creates a new pirep query repository
func NewPirepQueryRepository(db *sqlx.DB) *PirepQueryRepository {
	return &PirepQueryRepository{db: db}
}

const reviewQueueQuery = `
SELECT p.id           AS pirep_id,
       u.name         AS user_name,
       u.email        AS user_email,
       t.id           AS tour_id,
       t.title        AS tour_title,
       l.leg_order    AS leg_order,
       l.departure_code,
       l.arrival_code,
       p.callsign,
       p.comment,
       p.status,
       p.submitted_at
FROM pireps p
JOIN users u ON u.id = p.user_id
JOIN legs  l ON l.id = p.leg_id
JOIN tours t ON t.id = l.tour_id
WHERE ($1::text = '' OR p.status::text = $1::text)
ORDER BY p.submitted_at`

// ListReviewQueue lists pireps for review, optionally filtered by status
func (r *PirepQueryRepository) ListReviewQueue(ctx context.Context, status *constants.PirepStatus) ([]dtos.ReviewQueueEntry, error) {
	filter := ""
	if status != nil {
		filter = status.String()
	}

	entries := []dtos.ReviewQueueEntry{}
	if err := r.db.SelectContext(ctx, &entries, reviewQueueQuery, filter); err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}
	return entries, nil
}

const tourProgressQuery = `
SELECT t.id AS tour_id,
       COUNT(DISTINCT l.id) AS total_legs,
       COUNT(DISTINCT l.id) FILTER (WHERE p.status = 'approved') AS approved_legs,
       COUNT(DISTINCT l.id) FILTER (WHERE p.status = 'pending')  AS pending_legs
FROM tours t
JOIN legs l ON l.tour_id = t.id
LEFT JOIN pireps p ON p.leg_id = l.id AND p.user_id = $1
GROUP BY t.id
ORDER BY t.id`

// TourProgress aggregates a user's per-tour standing across all tours
func (r *PirepQueryRepository) TourProgress(ctx context.Context, userID string) ([]dtos.TourProgressRow, error) {
	rows := []dtos.TourProgressRow{}
	if err := r.db.SelectContext(ctx, &rows, tourProgressQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to aggregate tour progress: %w", err)
	}
	return rows, nil
}
