package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry references a menu item a user intends to order. Entries are
// removed in bulk once a payment naming them is recorded.
type CartEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
