package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	// IDs are never reused, even after deletion.
	ID int64

	// Email is the user's email address (unique across all users).
	Email string

	// Username is the user's display handle (unique across all users).
	Username string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
