package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback model
type Feedback struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Message string             `bson:"message" json:"message"`
	Date    time.Time          `bson:"date" json:"date"`
}

// CollectionName return collection name of Feedback model
func (Feedback) CollectionName() string {
	return "feedbacks"
}
