package models

// Item represents an object owned by a user.
type Item struct {
	// ID is the unique identifier for the item, assigned by the store.
	ID int64

	// Name is the display name of the item. Not unique.
	Name string

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64

	// UserID references the owning user. An item is only ever created
	// for an existing user and is removed together with its owner.
	UserID int64
}
