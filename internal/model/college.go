// File: internal/model/college.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
}

type Contact struct {
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Review 只存在於 College.Reviews 之內，寫入後不再修改
type Review struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	UserEmail string    `bson:"user_email" json:"user_email"`
	Rating    float64   `bson:"rating" json:"rating"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type College struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Location    Location           `bson:"location" json:"location"`
	Website     string             `bson:"website" json:"website"`
	Contact     Contact            `bson:"contact" json:"contact"`
	Facilities  []string           `bson:"facilities" json:"facilities"`
	Departments []string           `bson:"departments" json:"departments"`
	Courses     []string           `bson:"courses" json:"courses"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	Branches    []string           `bson:"branches" json:"branches"`
	Reviews     []Review           `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
