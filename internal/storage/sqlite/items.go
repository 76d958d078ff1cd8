package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallet/plop/internal/models"
)

// CreateItem inserts a new item and populates the assigned ID.
// CreatedAt is set to the current time unless already provided.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO items (name, created_at, user_id) VALUES (?, ?, ?)",
		item.Name, item.CreatedAt, item.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read item ID: %w", err)
	}
	item.ID = id

	return nil
}

// GetItemByID retrieves an item by its ID.
func (s *SQLiteStore) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, user_id FROM items WHERE id = ?",
		id,
	).Scan(&item.ID, &item.Name, &item.CreatedAt, &item.UserID)

	if err == sql.ErrNoRows {
		return nil, nil // Item not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListItemsByUser retrieves all items owned by a user, newest first.
// The secondary id ordering keeps results deterministic when several items
// share the same creation second.
func (s *SQLiteStore) ListItemsByUser(ctx context.Context, userID int64) ([]*models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, user_id FROM items
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items by user: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt, &item.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// DeleteItem removes an item by ID. Returns whether an item was deleted.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return n > 0, nil
}
