package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Participant model, attendee identified by join code (UniqueNumber)
type Participant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	UniqueNumber string             `bson:"uniqueNumber" json:"uniqueNumber"`
	Attendance   int                `bson:"attendance" json:"attendance"`
}

// CollectionName return collection name of Participant model
func (Participant) CollectionName() string {
	return "students"
}
