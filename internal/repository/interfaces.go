package repository

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/database/postgres"
	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

// MentorshipStore is the read side of the mentorship records the analytics run over
type MentorshipStore interface {
	// ListAll returns every mentorship regardless of status
	ListAll(ctx context.Context) ([]models.MentorshipRecord, error)

	// ListByStatus returns mentorships in the given status
	ListByStatus(ctx context.Context, status models.MentorshipStatus) ([]models.MentorshipRecord, error)

	// ListByMentor returns one mentor's mentorships in the given status
	ListByMentor(ctx context.Context, mentorID uuid.UUID, status models.MentorshipStatus) ([]models.MentorshipRecord, error)
}

// UserStore is the read side of the user directory
type UserStore interface {
	// ListEligibleMentors returns users with role ALUMNI and isVerified set
	ListEligibleMentors(ctx context.Context) ([]models.UserRecord, error)

	// ListAll returns every user
	ListAll(ctx context.Context) ([]models.UserRecord, error)

	// Count returns the number of users
	Count(ctx context.Context) (int, error)
}

// MentorshipDataSource is the storage backend behind MentorshipStore
type MentorshipDataSource interface {
	GetAllMentorships(ctx context.Context) ([]models.MentorshipRecord, error)
	GetMentorshipsByStatus(ctx context.Context, status models.MentorshipStatus) ([]models.MentorshipRecord, error)
	GetMentorshipsByMentor(ctx context.Context, mentorID uuid.UUID, status models.MentorshipStatus) ([]models.MentorshipRecord, error)
}

// UserDataSource is the storage backend behind UserStore
type UserDataSource interface {
	GetAllUsers(ctx context.Context) ([]models.UserRecord, error)
	GetVerifiedAlumni(ctx context.Context) ([]models.UserRecord, error)
	CountUsers(ctx context.Context) (int, error)
}

var (
	_ MentorshipDataSource = (*postgres.Client)(nil)
	_ UserDataSource       = (*postgres.Client)(nil)
)
