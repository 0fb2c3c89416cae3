// File: internal/model/user.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleStudent = "student"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GoogleID       string             `bson:"google_id" json:"google_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	ProfilePicture string             `bson:"profile_picture" json:"profile_picture"`
	Role           string             `bson:"role" json:"role"`
	LastLogin      time.Time          `bson:"last_login" json:"last_login"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
