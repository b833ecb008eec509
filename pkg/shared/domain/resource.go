package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Resource model
type Resource struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MaterialName string             `bson:"materialName" json:"materialName"`
	Quantity     int                `bson:"quantity" json:"quantity"`
}

// CollectionName return collection name of Resource model
func (Resource) CollectionName() string {
	return "resources"
}
