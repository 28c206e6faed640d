package service

import (
	"context"
	"testing"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedExercises(t *testing.T, f *fixture, owner primitive.ObjectID, levels ...domain.ExerciseIntensity) []primitive.ObjectID {
	t.Helper()
	ids := make([]primitive.ObjectID, len(levels))
	for i, level := range levels {
		ex, err := f.exercises.Create(context.Background(), owner, exerciseInput(primitive.NewObjectID().Hex(), level))
		require.NoError(t, err)
		ids[i] = ex.ID
	}
	return ids
}

func TestWorkoutIntensityDerivedFromExercises(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	ids := seedExercises(t, f, owner, domain.ExerciseIntensityLow, domain.ExerciseIntensityLow, domain.ExerciseIntensityHigh)

	w, err := f.workouts.Create(ctx, owner, WorkoutInput{Title: "Mixed", Exercises: hexIDs(ids...), Duration: 45})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutIntensityMedium, w.Intensity)

	stored, err := f.workouts.GetByID(ctx, owner, w.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutIntensityMedium, stored.Intensity)
	assert.Len(t, stored.Exercises, 3)
}

func TestWorkoutRepeatedExerciseCountsPerMention(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	ids := seedExercises(t, f, owner, domain.ExerciseIntensityHigh, domain.ExerciseIntensityLow)
	high, low := ids[0], ids[1]

	// 3+3+3+1 = 10/4 = 2.5 rounds up to High. Counting distinct ids would give Medium.
	w, err := f.workouts.Create(ctx, owner, WorkoutInput{Title: "Heavy", Exercises: hexIDs(high, high, high, low)})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutIntensityHigh, w.Intensity)
	assert.Len(t, w.Exercises, 4)
}

func TestWorkoutRejectsForeignAndUnknownExercises(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	mine := seedExercises(t, f, alice, domain.ExerciseIntensityLow)
	theirs := seedExercises(t, f, bob, domain.ExerciseIntensityHigh)

	_, err := f.workouts.Create(ctx, alice, WorkoutInput{Title: "Sneaky", Exercises: hexIDs(mine[0], theirs[0])})
	assertKind(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), theirs[0].Hex())

	_, err = f.workouts.Create(ctx, alice, WorkoutInput{Title: "Bad", Exercises: []string{"zzz"}})
	assertKind(t, err, ErrInvalidReference)

	list, err := f.workouts.List(ctx, alice, "")
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is created on a rejected reference")
}

func TestWorkoutRequiresExercises(t *testing.T) {
	_, err := newFixture().workouts.Create(context.Background(), primitive.NewObjectID(), WorkoutInput{Title: "Empty"})
	assertKind(t, err, ErrInvalidArgument)
}

func TestWorkoutUpdateRecomputesIntensity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	ids := seedExercises(t, f, owner, domain.ExerciseIntensityLow, domain.ExerciseIntensityHigh)

	w, err := f.workouts.Create(ctx, owner, WorkoutInput{Title: "Easy", Exercises: hexIDs(ids[0])})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutIntensityLow, w.Intensity)

	w, err = f.workouts.Update(ctx, owner, w.ID.Hex(), WorkoutInput{Title: "Hard", Exercises: hexIDs(ids[1])})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutIntensityHigh, w.Intensity)
	assert.Equal(t, "Hard", w.Title)

	high, err := f.workouts.List(ctx, owner, "High")
	require.NoError(t, err)
	assert.Len(t, high, 1)

	_, err = f.workouts.List(ctx, owner, "Moderate")
	assertKind(t, err, ErrInvalidFilter)
}

func TestWorkoutOwnershipIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	ids := seedExercises(t, f, alice, domain.ExerciseIntensityModerate)
	bobIDs := seedExercises(t, f, bob, domain.ExerciseIntensityModerate)

	w, err := f.workouts.Create(ctx, alice, WorkoutInput{Title: "Alice", Exercises: hexIDs(ids...)})
	require.NoError(t, err)

	_, err = f.workouts.GetByID(ctx, bob, w.ID.Hex())
	assertKind(t, err, ErrNotFound)
	_, err = f.workouts.Update(ctx, bob, w.ID.Hex(), WorkoutInput{Title: "Bob", Exercises: hexIDs(bobIDs...)})
	assertKind(t, err, ErrNotFound)
	assertKind(t, f.workouts.Delete(ctx, bob, w.ID.Hex()), ErrNotFound)

	require.NoError(t, f.workouts.Delete(ctx, alice, w.ID.Hex()))
	assertKind(t, f.workouts.Delete(ctx, alice, w.ID.Hex()), ErrNotFound)
}

func TestWorkoutDetailsSkipDeletedExercises(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	ids := seedExercises(t, f, owner, domain.ExerciseIntensityLow, domain.ExerciseIntensityHigh)

	w, err := f.workouts.Create(ctx, owner, WorkoutInput{Title: "Pair", Exercises: hexIDs(ids...)})
	require.NoError(t, err)
	require.NoError(t, f.exercises.Delete(ctx, owner, ids[0].Hex()))

	details, err := f.workouts.GetByID(ctx, owner, w.ID.Hex())
	require.NoError(t, err)
	require.Len(t, details.Exercises, 1)
	assert.Equal(t, ids[1], details.Exercises[0].ID)
	assert.Equal(t, domain.WorkoutIntensityMedium, details.Intensity, "stored intensity is not recomputed on read")
}
