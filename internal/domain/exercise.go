// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single movement definition owned by one user.
// Titles are unique per owner, not globally.
type Exercise struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"` // Owner
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Category        Category           `bson:"category" json:"category"`
	Duration        float64            `bson:"duration" json:"duration"` // minutes
	Intensity       ExerciseIntensity  `bson:"intensity" json:"intensity"`
	Sets            int                `bson:"sets" json:"sets"`
	Reps            int                `bson:"reps" json:"reps"`
	Rest            float64            `bson:"rest" json:"rest"` // seconds between sets
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	YoutubeVideo    string             `bson:"youtubeVideo,omitempty" json:"youtubeVideo,omitempty"`
	TargetedMuscles []string           `bson:"targetedMuscles" json:"targetedMuscles"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExerciseFilter narrows a listing to exact enum matches. Zero values mean "any".
type ExerciseFilter struct {
	Category  Category
	Intensity ExerciseIntensity
}
