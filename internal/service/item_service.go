package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmallet/plop/internal/models"
	"github.com/jmallet/plop/internal/storage"
)

// ItemService implements the business rules for items.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// CreateItemForUser creates a new item owned by the given user.
// Returns a NotFoundError when the owner does not exist; nothing is
// persisted in that case.
func (s *ItemService) CreateItemForUser(ctx context.Context, userID int64, name string) (*models.Item, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		slog.Warn("CreateItemForUser rejected: owner not found", "user_id", userID)
		return nil, &NotFoundError{Msg: fmt.Sprintf("user with ID %d not found", userID)}
	}

	item := &models.Item{
		Name:   name,
		UserID: userID,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("CreateItemForUser failed", "user_id", userID, "error", err)
		return nil, err
	}

	slog.Info("Item created", "item_id", item.ID, "user_id", userID)
	return item, nil
}

// GetUserItems retrieves the items owned by the given user, newest first.
// Returns a NotFoundError when the user does not exist.
func (s *ItemService) GetUserItems(ctx context.Context, userID int64) ([]*models.Item, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Msg: fmt.Sprintf("user with ID %d not found", userID)}
	}

	return s.store.ListItemsByUser(ctx, userID)
}

// ItemsOwnedBy retrieves the items owned by the given user without checking
// that the user still exists. Used when resolving items off an already-loaded
// user record: if the owner was deleted in the meantime the listing is simply
// empty.
func (s *ItemService) ItemsOwnedBy(ctx context.Context, userID int64) ([]*models.Item, error) {
	return s.store.ListItemsByUser(ctx, userID)
}

// GetItemByID retrieves an item by ID. Returns (nil, nil) when no item exists.
func (s *ItemService) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	return s.store.GetItemByID(ctx, id)
}

// DeleteItem removes an item by ID. Returns a NotFoundError when no item
// with that ID exists.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, &NotFoundError{Msg: fmt.Sprintf("item with ID %d not found", id)}
	}

	deleted, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		slog.Error("DeleteItem failed", "item_id", id, "error", err)
		return false, err
	}

	slog.Info("Item deleted", "item_id", id)
	return deleted, nil
}
