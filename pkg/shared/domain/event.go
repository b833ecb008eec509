package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event model, date and time are stored as given
type Event struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Date  string             `bson:"date" json:"date"`
	Time  string             `bson:"time" json:"time"`
	Place string             `bson:"place" json:"place"`
}

// CollectionName return collection name of Event model
func (Event) CollectionName() string {
	return "events"
}
