package postgres

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const mentorshipColumns = `
	id, mentor_id, mentee_id, status, start_date, end_date, last_interaction,
	meetings_completed, mentor_rating, mentee_rating, created_at`

// ScanMentorship scans one mentorships row selected with mentorshipColumns
func ScanMentorship(row pgx.Row) (models.MentorshipRecord, error) {
	var m models.MentorshipRecord
	var status string

	err := row.Scan(
		&m.ID, &m.MentorID, &m.MenteeID, &status, &m.StartDate, &m.EndDate, &m.LastInteraction,
		&m.MeetingsCompleted, &m.MentorRating, &m.MenteeRating, &m.CreatedAt,
	)
	if err != nil {
		return models.MentorshipRecord{}, err
	}
	m.Status = models.MentorshipStatus(status)

	return m, nil
}

// GetAllMentorships fetches every mentorship regardless of status
func (c *Client) GetAllMentorships(ctx context.Context) ([]models.MentorshipRecord, error) {
	query := `SELECT` + mentorshipColumns + ` FROM mentorships ORDER BY created_at ASC, id ASC`
	return queryList(ctx, c, "getAllMentorships", query, ScanMentorship)
}

// GetMentorshipsByStatus fetches mentorships in the given status
func (c *Client) GetMentorshipsByStatus(ctx context.Context, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	query := `SELECT` + mentorshipColumns + ` FROM mentorships WHERE status = $1 ORDER BY created_at ASC, id ASC`
	return queryList(ctx, c, "getMentorshipsByStatus", query, ScanMentorship, string(status))
}

// GetMentorshipsByMentor fetches mentorships of one mentor, optionally narrowed to a status.
// An empty status matches all.
func (c *Client) GetMentorshipsByMentor(ctx context.Context, mentorID uuid.UUID, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	query := `SELECT` + mentorshipColumns + `
		FROM mentorships
		WHERE mentor_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at ASC, id ASC`
	return queryList(ctx, c, "getMentorshipsByMentor", query, ScanMentorship, mentorID, string(status))
}
