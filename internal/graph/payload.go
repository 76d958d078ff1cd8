package graph

import (
	"time"

	"github.com/jmallet/plop/internal/models"
)

// userPayload is the response shape of the User type. IDs narrow to int for
// the GraphQL Int scalar and timestamps widen to time.Time for DateTime.
type userPayload struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// itemPayload is the response shape of the Item type.
type itemPayload struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int       `json:"userId"`
}

func newUserPayload(user *models.User) userPayload {
	return userPayload{
		ID:        int(user.ID),
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: time.Unix(user.CreatedAt, 0).UTC(),
	}
}

func newUserPayloads(users []*models.User) []userPayload {
	payloads := make([]userPayload, len(users))
	for i, user := range users {
		payloads[i] = newUserPayload(user)
	}
	return payloads
}

func newItemPayload(item *models.Item) itemPayload {
	return itemPayload{
		ID:        int(item.ID),
		Name:      item.Name,
		CreatedAt: time.Unix(item.CreatedAt, 0).UTC(),
		UserID:    int(item.UserID),
	}
}

func newItemPayloads(items []*models.Item) []itemPayload {
	payloads := make([]itemPayload, len(items))
	for i, item := range items {
		payloads[i] = newItemPayload(item)
	}
	return payloads
}
