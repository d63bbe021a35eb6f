package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = errors.New("user does not exist")

// ProfileReader defines read operations for user accounts.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// ProfileWriter defines write operations for user accounts.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, jobRole, location *string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserService handles profiles and admin account management.
type UserService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader ProfileReader, writer ProfileWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// Get returns a single user account.
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return s.reader.List(ctx)
}

// UpdateProfile applies a partial profile edit.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, jobRole, location *string) error {
	err := s.writer.UpdateProfile(ctx, userID, firstName, lastName, jobRole, location)
	if isNoRows(err) {
		return ErrUserNotFound
	}
	return err
}

// Delete removes a user account together with their skills, endorsements and
// notifications. The caller's request transaction makes the cascade
// all-or-nothing.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	err := s.writer.Delete(ctx, userID)
	if isNoRows(err) {
		return ErrUserNotFound
	}
	return err
}
