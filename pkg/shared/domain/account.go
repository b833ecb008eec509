package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// AccountStatus approval state of account
type AccountStatus string

const (
	// AccountStatusPending initial status after signup
	AccountStatusPending AccountStatus = "pending"
	// AccountStatusApproved status set by approval flow
	AccountStatusApproved AccountStatus = "approved"
)

// Account model, EventsJoined is weak reference to Event id
type Account struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	Password     string               `bson:"password" json:"-"`
	Status       AccountStatus        `bson:"status" json:"status"`
	EventsJoined []primitive.ObjectID `bson:"eventsJoined" json:"eventsJoined"`
}

// CollectionName return collection name of Account model
func (Account) CollectionName() string {
	return "users"
}
