package repository

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

// MentorshipRepository implements MentorshipStore over a MentorshipDataSource
type MentorshipRepository struct {
	source    MentorshipDataSource
	validator snapshotValidator
}

// NewMentorshipRepository creates a new mentorship repository
func NewMentorshipRepository(source MentorshipDataSource) *MentorshipRepository {
	return &MentorshipRepository{
		source:    source,
		validator: newSnapshotValidator(),
	}
}

// ListAll returns every mentorship regardless of status
func (r *MentorshipRepository) ListAll(ctx context.Context) ([]models.MentorshipRecord, error) {
	return r.checked(r.source.GetAllMentorships(ctx))
}

// ListByStatus returns mentorships in the given status
func (r *MentorshipRepository) ListByStatus(ctx context.Context, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	return r.checked(r.source.GetMentorshipsByStatus(ctx, status))
}

// ListByMentor returns one mentor's mentorships in the given status
func (r *MentorshipRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	return r.checked(r.source.GetMentorshipsByMentor(ctx, mentorID, status))
}

func (r *MentorshipRepository) checked(records []models.MentorshipRecord, err error) ([]models.MentorshipRecord, error) {
	if err != nil {
		return nil, err
	}
	check(r.validator, "mentorship", records, func(m *models.MentorshipRecord) uuid.UUID { return m.ID })
	return records, nil
}

var _ MentorshipStore = (*MentorshipRepository)(nil)
