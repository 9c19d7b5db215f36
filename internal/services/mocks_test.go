package services_test

import (
	"context"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMentorshipStore is a mock implementation of repository.MentorshipStore
type MockMentorshipStore struct {
	mock.Mock
}

func (m *MockMentorshipStore) ListAll(ctx context.Context) ([]models.MentorshipRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MentorshipRecord), args.Error(1)
}

func (m *MockMentorshipStore) ListByStatus(ctx context.Context, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MentorshipRecord), args.Error(1)
}

func (m *MockMentorshipStore) ListByMentor(ctx context.Context, mentorID uuid.UUID, status models.MentorshipStatus) ([]models.MentorshipRecord, error) {
	args := m.Called(ctx, mentorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MentorshipRecord), args.Error(1)
}

// MockUserStore is a mock implementation of repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ListEligibleMentors(ctx context.Context) ([]models.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRecord), args.Error(1)
}

func (m *MockUserStore) ListAll(ctx context.Context) ([]models.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRecord), args.Error(1)
}

func (m *MockUserStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
