package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is keyed by email: signup refuses a second document for the same
// address, so at most one record exists per email.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Role     UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
