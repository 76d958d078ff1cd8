package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmallet/plop/internal/models"
	"github.com/jmallet/plop/internal/storage"
)

// UserService implements the business rules for user accounts.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// GetAllUsers retrieves every user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUserByID retrieves a user by ID. Returns (nil, nil) when no user exists.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// CreateUser creates a new user after checking that the email and username
// are not taken, email first. The checks are advisory; the store's unique
// constraints remain the authoritative guard under concurrent creates.
func (s *UserService) CreateUser(ctx context.Context, email, username string) (*models.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Warn("CreateUser rejected: duplicate email", "email", email)
		return nil, &ValidationError{Msg: fmt.Sprintf("email '%s' already exists", email)}
	}

	existing, err = s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		slog.Warn("CreateUser rejected: duplicate username", "username", username)
		return nil, &ValidationError{Msg: fmt.Sprintf("username '%s' already exists", username)}
	}

	user := &models.User{
		Email:    email,
		Username: username,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// DeleteUser removes a user by ID. Returns a NotFoundError when no user
// with that ID exists. Owned items are removed together with the user.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, &NotFoundError{Msg: fmt.Sprintf("user with ID %d not found", id)}
	}

	deleted, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		slog.Error("DeleteUser failed", "user_id", id, "error", err)
		return false, err
	}

	slog.Info("User deleted", "user_id", id)
	return deleted, nil
}
