package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account owning exercises, workouts, food items and at most one nutrition plan.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Weight       float64            `bson:"weight" json:"weight"`  // kg
	Goal         Goal               `bson:"goal" json:"goal"`
	Age          int                `bson:"age" json:"age"`
	Verified     bool               `bson:"verified" json:"verified"` // Set once the email link is followed
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
