package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
)

// Booking status is free-form beyond the two well-known values; the
// status-update endpoint writes whatever the admin sends.
type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Date   string             `bson:"date,omitempty" json:"date,omitempty"`
	Time   string             `bson:"time,omitempty" json:"time,omitempty"`
	Guests int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}
