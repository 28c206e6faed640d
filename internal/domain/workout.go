package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout groups exercises of the same owner. Intensity is computed by the
// server from the referenced exercises when the workout is written.
type Workout struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID   `bson:"userId" json:"userId"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Exercises   []primitive.ObjectID `bson:"exercises" json:"exercises"`
	Image       string               `bson:"image,omitempty" json:"image,omitempty"`
	Duration    float64              `bson:"duration" json:"duration"`
	Intensity   WorkoutIntensity     `bson:"intensity" json:"intensity"` // Derived, stored
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutFilter narrows a workout listing. Zero value means "any".
type WorkoutFilter struct {
	Intensity WorkoutIntensity
}
