package memory

import (
	"context"
	"testing"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExercisesAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	store := New()
	repo := store.Exercises()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	id, err := repo.Create(ctx, &domain.Exercise{UserID: alice, Title: "Squat", Category: domain.CategoryStrength})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, bob, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, bob, id), repository.ErrNotFound)

	got, err := repo.GetByID(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, "Squat", got.Title)
	assert.False(t, got.CreatedAt.IsZero())

	list, err := repo.List(ctx, bob, domain.ExerciseFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestExerciseTitleUniquePerOwner(t *testing.T) {
	ctx := context.Background()
	repo := New().Exercises()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	_, err := repo.Create(ctx, &domain.Exercise{UserID: alice, Title: "Row"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Exercise{UserID: alice, Title: "Row"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	_, err = repo.Create(ctx, &domain.Exercise{UserID: bob, Title: "Row"})
	assert.NoError(t, err)

	otherID, err := repo.Create(ctx, &domain.Exercise{UserID: alice, Title: "Plank"})
	require.NoError(t, err)
	err = repo.Update(ctx, &domain.Exercise{ID: otherID, UserID: alice, Title: "Row"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	err = repo.Update(ctx, &domain.Exercise{ID: otherID, UserID: alice, Title: "Plank"})
	assert.NoError(t, err)
}

func TestExerciseListFilters(t *testing.T) {
	ctx := context.Background()
	repo := New().Exercises()
	owner := primitive.NewObjectID()

	seed := []domain.Exercise{
		{UserID: owner, Title: "Run", Category: domain.CategoryCardio, Intensity: domain.ExerciseIntensityHigh},
		{UserID: owner, Title: "Walk", Category: domain.CategoryCardio, Intensity: domain.ExerciseIntensityLow},
		{UserID: owner, Title: "Yoga", Category: domain.CategoryFlexibility, Intensity: domain.ExerciseIntensityLow},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	cardio, err := repo.List(ctx, owner, domain.ExerciseFilter{Category: domain.CategoryCardio})
	require.NoError(t, err)
	assert.Len(t, cardio, 2)

	lowCardio, err := repo.List(ctx, owner, domain.ExerciseFilter{Category: domain.CategoryCardio, Intensity: domain.ExerciseIntensityLow})
	require.NoError(t, err)
	require.Len(t, lowCardio, 1)
	assert.Equal(t, "Walk", lowCardio[0].Title)
}

func TestGetByIDsSkipsForeignAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := New().FoodItems()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	mine, err := repo.Create(ctx, &domain.FoodItem{UserID: alice, Name: "Oats"})
	require.NoError(t, err)
	theirs, err := repo.Create(ctx, &domain.FoodItem{UserID: bob, Name: "Rice"})
	require.NoError(t, err)

	items, err := repo.GetByIDs(ctx, alice, []primitive.ObjectID{mine, mine, theirs, primitive.NewObjectID()})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine, items[0].ID)
}

func TestOnePlanPerOwner(t *testing.T) {
	ctx := context.Background()
	repo := New().NutritionPlans()
	owner := primitive.NewObjectID()
	limit := 2000.0

	id, err := repo.Create(ctx, &domain.NutritionPlan{UserID: owner, Title: "Cut", MaximumCalories: &limit})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.NutritionPlan{UserID: owner, Title: "Bulk"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := repo.GetByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	// mutating the returned copy must not leak into the store
	*got.MaximumCalories = 1
	again, err := repo.GetByID(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, *again.MaximumCalories)

	require.NoError(t, repo.Delete(ctx, owner, id))
	list, err := repo.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserEmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	id, err := repo.Create(ctx, &domain.User{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, repo.SetVerified(ctx, id))
	u, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, u.Verified)
}

func TestWorkoutUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := New().Workouts()
	owner := primitive.NewObjectID()

	w := &domain.Workout{UserID: owner, Title: "Legs", Intensity: domain.WorkoutIntensityMedium}
	id, err := repo.Create(ctx, w)
	require.NoError(t, err)
	created := w.CreatedAt

	err = repo.Update(ctx, &domain.Workout{ID: id, UserID: owner, Title: "Legs day", Intensity: domain.WorkoutIntensityHigh})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, domain.WorkoutIntensityHigh, got.Intensity)

	err = repo.Update(ctx, &domain.Workout{ID: id, UserID: primitive.NewObjectID(), Title: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
