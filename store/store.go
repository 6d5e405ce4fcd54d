package store

import (
	"context"
	"errors"

	"lostfound-hub/models"
)

// ErrNotFound is returned when an id does not match any document.
var ErrNotFound = errors.New("not found")

// ItemFilter restricts an item listing by equality. Empty fields match all.
type ItemFilter struct {
	Type         string
	ReportUserID string
}

type ItemStore interface {
	List(ctx context.Context, f ItemFilter) ([]models.Item, error)
	Create(ctx context.Context, it models.Item) (models.Item, error)
	// Update merges fields into the document and returns the updated
	// record, or ErrNotFound if the id does not exist.
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.Item, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type MessageStore interface {
	Insert(ctx context.Context, m models.Message) (models.Message, error)
	// Between returns the union of messages sent either way between the
	// two users, in no particular order.
	Between(ctx context.Context, userID, otherID string) ([]models.Message, error)
	// ForUser returns everything the user sent or received.
	ForUser(ctx context.Context, userID string) ([]models.Message, error)
	All(ctx context.Context) ([]models.Message, error)
	Delete(ctx context.Context, id string) error
}
