package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is written once per completed checkout and never mutated.
// CartIDs are the cart entries the checkout consumed; MenuItemIDs feed the
// per-category order statistics.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Date          string               `bson:"date,omitempty" json:"date,omitempty"`
	CartIDs       []string             `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
}
