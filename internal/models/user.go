package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
)

type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	FirstName  string             `json:"first_name" bson:"first_name"`
	LastName   string             `json:"last_name" bson:"last_name"`
	Password   string             `json:"-" bson:"password,omitempty"`
	Role       UserRole           `json:"role" bson:"role"`
	DateJoined time.Time          `json:"date_joined" bson:"date_joined"`
	IsActive   bool               `json:"is_active" bson:"is_active"`
}
