package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
}
