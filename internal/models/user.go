package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Only USER is assigned today; ADMIN gates the account listing.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account document. Destinations are embedded and ordered.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Role           string             `bson:"role" json:"role"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Destinations   []Destination      `bson:"destinations" json:"destinations"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
