package repository

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
)

// UserRepository implements UserStore over a UserDataSource
type UserRepository struct {
	source    UserDataSource
	validator snapshotValidator
}

// NewUserRepository creates a new user repository
func NewUserRepository(source UserDataSource) *UserRepository {
	return &UserRepository{
		source:    source,
		validator: newSnapshotValidator(),
	}
}

// ListEligibleMentors returns verified alumni.
// The eligibility rule is re-applied here so a looser backend cannot widen the pool.
func (r *UserRepository) ListEligibleMentors(ctx context.Context) ([]models.UserRecord, error) {
	users, err := r.checked(r.source.GetVerifiedAlumni(ctx))
	if err != nil {
		return nil, err
	}

	eligible := make([]models.UserRecord, 0, len(users))
	for _, u := range users {
		if u.IsEligibleMentor() {
			eligible = append(eligible, u)
		}
	}
	return eligible, nil
}

// ListAll returns every user
func (r *UserRepository) ListAll(ctx context.Context) ([]models.UserRecord, error) {
	return r.checked(r.source.GetAllUsers(ctx))
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return r.source.CountUsers(ctx)
}

func (r *UserRepository) checked(users []models.UserRecord, err error) ([]models.UserRecord, error) {
	if err != nil {
		return nil, err
	}
	check(r.validator, "user", users, func(u *models.UserRecord) uuid.UUID { return u.ID })
	return users, nil
}

var _ UserStore = (*UserRepository)(nil)
