package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmallet/plop/internal/models"
)

func TestCreateItemForUser(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)
	items := NewItemService(store)
	ctx := context.Background()

	t.Run("missing owner yields NotFoundError and persists nothing", func(t *testing.T) {
		_, err := items.CreateItemForUser(ctx, 7, "widget")
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if nferr.Error() != "user with ID 7 not found" {
			t.Errorf("Unexpected message: %q", nferr.Error())
		}

		orphans, err := store.ListItemsByUser(ctx, 7)
		if err != nil {
			t.Fatalf("ListItemsByUser failed: %v", err)
		}
		if len(orphans) != 0 {
			t.Errorf("Expected nothing persisted, got %d items", len(orphans))
		}
	})

	t.Run("existing owner", func(t *testing.T) {
		owner, err := users.CreateUser(ctx, "a@x.com", "alice")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		item, err := items.CreateItemForUser(ctx, owner.ID, "widget")
		if err != nil {
			t.Fatalf("CreateItemForUser failed: %v", err)
		}
		if item.ID == 0 {
			t.Error("Expected item ID to be assigned")
		}
		if item.Name != "widget" || item.UserID != owner.ID {
			t.Errorf("Unexpected item fields: %+v", item)
		}
		if item.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})
}

func TestGetUserItems(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)
	items := NewItemService(store)
	ctx := context.Background()

	t.Run("missing user yields NotFoundError", func(t *testing.T) {
		_, err := items.GetUserItems(ctx, 42)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
	})

	t.Run("items come back newest first", func(t *testing.T) {
		owner, err := users.CreateUser(ctx, "b@x.com", "bob")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		// Insert with explicit timestamps to pin the ordering
		for _, it := range []*models.Item{
			{Name: "first", UserID: owner.ID, CreatedAt: 100},
			{Name: "second", UserID: owner.ID, CreatedAt: 200},
			{Name: "third", UserID: owner.ID, CreatedAt: 300},
		} {
			if err := store.CreateItem(ctx, it); err != nil {
				t.Fatalf("CreateItem failed: %v", err)
			}
		}

		got, err := items.GetUserItems(ctx, owner.ID)
		if err != nil {
			t.Fatalf("GetUserItems failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(got))
		}
		for i, want := range []string{"third", "second", "first"} {
			if got[i].Name != want {
				t.Errorf("Item %d: got %q, want %q", i, got[i].Name, want)
			}
		}
	})
}

func TestItemsOwnedBy(t *testing.T) {
	store := newTestStore(t)
	items := NewItemService(store)
	ctx := context.Background()

	// No owner check on this path: a vanished user is an empty listing
	got, err := items.ItemsOwnedBy(ctx, 42)
	if err != nil {
		t.Fatalf("ItemsOwnedBy failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty listing, got %d items", len(got))
	}
}

func TestDeleteItem(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)
	items := NewItemService(store)
	ctx := context.Background()

	t.Run("missing item yields NotFoundError", func(t *testing.T) {
		_, err := items.DeleteItem(ctx, 42)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if nferr.Error() != "item with ID 42 not found" {
			t.Errorf("Unexpected message: %q", nferr.Error())
		}
	})

	t.Run("existing item is removed", func(t *testing.T) {
		owner, err := users.CreateUser(ctx, "c@x.com", "carol")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		item, err := items.CreateItemForUser(ctx, owner.ID, "gadget")
		if err != nil {
			t.Fatalf("CreateItemForUser failed: %v", err)
		}

		deleted, err := items.DeleteItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if !deleted {
			t.Error("Expected DeleteItem to return true")
		}

		gone, err := items.GetItemByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetItemByID failed: %v", err)
		}
		if gone != nil {
			t.Errorf("Expected item to be gone, got %+v", gone)
		}
	})
}
