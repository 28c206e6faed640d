package service

import (
	"context"
	"testing"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseTitleUniquePerOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	_, err := f.exercises.Create(ctx, alice, exerciseInput("Deadlift", domain.ExerciseIntensityHigh))
	require.NoError(t, err)

	_, err = f.exercises.Create(ctx, alice, exerciseInput("Deadlift", domain.ExerciseIntensityLow))
	assertKind(t, err, ErrConflict)

	_, err = f.exercises.Create(ctx, bob, exerciseInput("Deadlift", domain.ExerciseIntensityLow))
	assert.NoError(t, err)
}

func TestExerciseUpdateTitleCollision(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	_, err := f.exercises.Create(ctx, owner, exerciseInput("Squat", domain.ExerciseIntensityHigh))
	require.NoError(t, err)
	lunge, err := f.exercises.Create(ctx, owner, exerciseInput("Lunge", domain.ExerciseIntensityLow))
	require.NoError(t, err)

	_, err = f.exercises.Update(ctx, owner, lunge.ID.Hex(), exerciseInput("Squat", domain.ExerciseIntensityLow))
	assertKind(t, err, ErrConflict)

	// keeping its own title is not a collision
	updated, err := f.exercises.Update(ctx, owner, lunge.ID.Hex(), exerciseInput("Lunge", domain.ExerciseIntensityModerate))
	require.NoError(t, err)
	assert.Equal(t, domain.ExerciseIntensityModerate, updated.Intensity)
}

func TestExerciseRejectsUnknownEnums(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	in := exerciseInput("Swim", domain.ExerciseIntensityHigh)
	in.Category = "Aquatic"
	_, err := f.exercises.Create(ctx, owner, in)
	assertKind(t, err, ErrInvalidArgument)

	in = exerciseInput("Swim", "Medium")
	_, err = f.exercises.Create(ctx, owner, in)
	assertKind(t, err, ErrInvalidArgument)
}

func TestExerciseListFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	run := exerciseInput("Run", domain.ExerciseIntensityHigh)
	run.Category = domain.CategoryCardio
	_, err := f.exercises.Create(ctx, owner, run)
	require.NoError(t, err)
	_, err = f.exercises.Create(ctx, owner, exerciseInput("Curl", domain.ExerciseIntensityLow))
	require.NoError(t, err)

	all, err := f.exercises.List(ctx, owner, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cardio, err := f.exercises.List(ctx, owner, "Cardio", "")
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "Run", cardio[0].Title)

	_, err = f.exercises.List(ctx, owner, "Yoga", "")
	assertKind(t, err, ErrInvalidFilter)
	_, err = f.exercises.List(ctx, owner, "", "Medium")
	assertKind(t, err, ErrInvalidFilter)

	none, err := f.exercises.List(ctx, primitive.NewObjectID(), "", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestForeignExerciseIndistinguishableFromMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	ex, err := f.exercises.Create(ctx, alice, exerciseInput("Plank", domain.ExerciseIntensityLow))
	require.NoError(t, err)

	_, foreignErr := f.exercises.GetByID(ctx, bob, ex.ID.Hex())
	_, missingErr := f.exercises.GetByID(ctx, bob, primitive.NewObjectID().Hex())
	assertKind(t, foreignErr, ErrNotFound)
	assertKind(t, missingErr, ErrNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())

	_, err = f.exercises.Update(ctx, bob, ex.ID.Hex(), exerciseInput("Mine now", domain.ExerciseIntensityLow))
	assertKind(t, err, ErrNotFound)
	assertKind(t, f.exercises.Delete(ctx, bob, ex.ID.Hex()), ErrNotFound)

	got, err := f.exercises.GetByID(ctx, alice, ex.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Plank", got.Title)
}

func TestExerciseMalformedIdentifier(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	_, err := f.exercises.GetByID(ctx, owner, "not-an-id")
	assertKind(t, err, ErrInvalidIdentifier)
	_, err = f.exercises.Update(ctx, owner, "123", exerciseInput("x", domain.ExerciseIntensityLow))
	assertKind(t, err, ErrInvalidIdentifier)
	assertKind(t, f.exercises.Delete(ctx, owner, ""), ErrInvalidIdentifier)
}

func TestExerciseDeleteTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	ex, err := f.exercises.Create(ctx, owner, exerciseInput("Burpee", domain.ExerciseIntensityHigh))
	require.NoError(t, err)

	require.NoError(t, f.exercises.Delete(ctx, owner, ex.ID.Hex()))
	assertKind(t, f.exercises.Delete(ctx, owner, ex.ID.Hex()), ErrNotFound)
	assertKind(t, f.exercises.Delete(ctx, owner, primitive.NewObjectID().Hex()), ErrNotFound)
}
