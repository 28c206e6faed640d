package service

import (
	"io"
	"testing"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository/memory"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	store     *memory.Store
	exercises ExerciseService
	workouts  WorkoutService
	foodItems FoodItemService
	plans     NutritionPlanService
}

func newFixture() *fixture {
	store := memory.New()
	return &fixture{
		store:     store,
		exercises: NewExerciseService(store.Exercises()),
		workouts:  NewWorkoutService(store.Workouts(), store.Exercises()),
		foodItems: NewFoodItemService(store.FoodItems()),
		plans:     NewNutritionPlanService(store.NutritionPlans(), store.FoodItems()),
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func exerciseInput(title string, intensity domain.ExerciseIntensity) ExerciseInput {
	return ExerciseInput{
		Title:     title,
		Category:  domain.CategoryStrength,
		Intensity: intensity,
		Duration:  10,
		Sets:      3,
		Reps:      10,
	}
}

func hexIDs(ids ...primitive.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}

func assertKind(t *testing.T, err error, kind error) {
	t.Helper()
	if assert.Error(t, err) {
		assert.ErrorIs(t, err, kind)
		var svcErr *Error
		assert.ErrorAs(t, err, &svcErr)
		assert.NotEmpty(t, svcErr.Message)
	}
}
