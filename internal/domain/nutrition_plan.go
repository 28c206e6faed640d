// internal/domain/nutrition_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionPlan is the single diet plan of a user. The macro totals and
// calories are sums over the referenced food items.
type NutritionPlan struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID   `bson:"userId" json:"userId"` // Unique: one plan per user
	Title           string               `bson:"title" json:"title"`
	Description     string               `bson:"description" json:"description"`
	Image           string               `bson:"image,omitempty" json:"image,omitempty"`
	FoodItems       []primitive.ObjectID `bson:"foodItems" json:"foodItems"`
	Protein         float64              `bson:"protein" json:"protein"`
	Carbs           float64              `bson:"carbs" json:"carbs"`
	Fats            float64              `bson:"fats" json:"fats"`
	Calories        float64              `bson:"calories" json:"calories"`
	MaximumCalories *float64             `bson:"maximumCalories,omitempty" json:"maximumCalories,omitempty"` // Optional ceiling
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}
