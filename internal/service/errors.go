// Package service implements the business rules for users and items on top
// of a storage.Store: uniqueness of email and username, and owner existence
// before any item operation.
package service

// ValidationError indicates a requested create would violate a uniqueness
// rule. The message is safe to show to API clients.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError indicates a referenced ID does not resolve to an existing
// record. The message is safe to show to API clients.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}
