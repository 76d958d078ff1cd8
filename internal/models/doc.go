// Package models defines the core domain records for plop.
//
// Two records make up the whole model:
//   - User: a registered account identified by a unique email and username
//   - Item: a named object owned by exactly one user
//
// The relationship is User 1-N Item, with the foreign key on the Item side.
// Deleting a user removes their items (enforced by the storage schema), so an
// item never outlives its owner.
//
// Records are plain structs. IDs and creation timestamps are assigned by the
// storage layer and are immutable afterwards; everything above storage treats
// them as read-only. Relationships are expressed through ID fields rather than
// pointers to avoid circular references.
package models
