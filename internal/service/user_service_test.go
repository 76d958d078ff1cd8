package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmallet/plop/internal/storage"
	"github.com/jmallet/plop/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "plop-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "a@x.com", "alice")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected user ID to be assigned")
	}
	if user.Email != "a@x.com" || user.Username != "alice" {
		t.Errorf("Unexpected user fields: %+v", user)
	}
	if user.CreatedAt == 0 {
		t.Error("Expected CreatedAt to be set")
	}

	retrieved, err := svc.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved == nil || retrieved.Email != user.Email || retrieved.Username != user.Username {
		t.Fatalf("GetUserByID returned %+v, want %+v", retrieved, user)
	}
}

func TestCreateUserDuplicates(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "a@x.com", "alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("duplicate email with new username", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "a@x.com", "alice2")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
		if verr.Error() != "email 'a@x.com' already exists" {
			t.Errorf("Unexpected message: %q", verr.Error())
		}
	})

	t.Run("duplicate username with new email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "a2@x.com", "alice")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
		if verr.Error() != "username 'alice' already exists" {
			t.Errorf("Unexpected message: %q", verr.Error())
		}
	})

	t.Run("email is checked before username", func(t *testing.T) {
		// Both taken: the email message must win
		_, err := svc.CreateUser(ctx, "a@x.com", "alice")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
		if verr.Error() != "email 'a@x.com' already exists" {
			t.Errorf("Unexpected message: %q", verr.Error())
		}
	})
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	t.Run("missing user yields NotFoundError", func(t *testing.T) {
		_, err := svc.DeleteUser(ctx, 42)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
		if nferr.Error() != "user with ID 42 not found" {
			t.Errorf("Unexpected message: %q", nferr.Error())
		}
	})

	t.Run("existing user is removed", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "b@x.com", "bob")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		deleted, err := svc.DeleteUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}
		if !deleted {
			t.Error("Expected DeleteUser to return true")
		}

		gone, err := svc.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if gone != nil {
			t.Errorf("Expected user to be gone, got %+v", gone)
		}
	})
}

func TestGetAllUsers(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	users, err := svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users, got %d", len(users))
	}

	for _, u := range []struct{ email, username string }{
		{"a@x.com", "alice"},
		{"b@x.com", "bob"},
		{"c@x.com", "carol"},
	} {
		if _, err := svc.CreateUser(ctx, u.email, u.username); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	users, err = svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("Expected 3 users, got %d", len(users))
	}
}
