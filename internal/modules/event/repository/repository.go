package repository

import (
	"context"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventRepository abstract interface
type EventRepository interface {
	Insert(ctx context.Context, data *shareddomain.Event) error
	// FetchAll in store natural order
	FetchAll(ctx context.Context) ([]shareddomain.Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (shareddomain.Event, error)
	// FindByIDs skip id which no longer resolve to an event
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]shareddomain.Event, error)
}
