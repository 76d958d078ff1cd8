// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/jmallet/plop/internal/models"
)

// Store defines the interface for user and item storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookups return (nil, nil) when the record does not exist; an error means
// the store itself failed. Deletes report whether a row was removed and do
// not treat a missing row as an error.
type Store interface {
	// CreateUser persists a new user and populates ID and CreatedAt.
	// The store's unique constraints on email and username are the
	// authoritative guard against duplicates.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// GetUserByEmail retrieves a user by exact email match.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUsername retrieves a user by exact username match.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// ListUsers retrieves every stored user. Order is unspecified.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// DeleteUser removes a user by ID, cascading to their items.
	// Returns whether a user was actually deleted.
	DeleteUser(ctx context.Context, id int64) (bool, error)

	// CreateItem persists a new item and populates ID and CreatedAt.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItemByID retrieves an item by ID.
	GetItemByID(ctx context.Context, id int64) (*models.Item, error)

	// ListItemsByUser retrieves all items owned by the given user,
	// most recently created first.
	ListItemsByUser(ctx context.Context, userID int64) ([]*models.Item, error)

	// DeleteItem removes an item by ID.
	// Returns whether an item was actually deleted.
	DeleteItem(ctx context.Context, id int64) (bool, error)

	// Ping verifies the underlying store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
