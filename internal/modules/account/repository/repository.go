package repository

import (
	"context"

	shareddomain "github.com/golangid/attendo/pkg/shared/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountRepository abstract interface
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (shareddomain.Account, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (shareddomain.Account, error)
	// Insert return Conflict error when email already registered
	Insert(ctx context.Context, data *shareddomain.Account) error
	// AddJoinedEvent return NotFound error when no account registered with email
	AddJoinedEvent(ctx context.Context, email string, eventID primitive.ObjectID) error
}
