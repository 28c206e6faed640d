package calc

import (
	"testing"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	low      = domain.ExerciseIntensityLow
	moderate = domain.ExerciseIntensityModerate
	high     = domain.ExerciseIntensityHigh
)

func TestWorkoutIntensity(t *testing.T) {
	tests := []struct {
		name   string
		levels []domain.ExerciseIntensity
		want   domain.WorkoutIntensity
	}{
		{"single low", []domain.ExerciseIntensity{low}, domain.WorkoutIntensityLow},
		{"single moderate", []domain.ExerciseIntensity{moderate}, domain.WorkoutIntensityMedium},
		{"single high", []domain.ExerciseIntensity{high}, domain.WorkoutIntensityHigh},
		// 1,1,3 -> 1.67 -> 2
		{"low low high", []domain.ExerciseIntensity{low, low, high}, domain.WorkoutIntensityMedium},
		// 1,2 -> 1.5 rounds half up to 2
		{"half rounds up", []domain.ExerciseIntensity{low, moderate}, domain.WorkoutIntensityMedium},
		// 1,1,2 -> 1.33 -> 1
		{"rounds down", []domain.ExerciseIntensity{low, low, moderate}, domain.WorkoutIntensityLow},
		// 2,3 -> 2.5 -> 3
		{"moderate high", []domain.ExerciseIntensity{moderate, high}, domain.WorkoutIntensityHigh},
		{"all high", []domain.ExerciseIntensity{high, high, high, high}, domain.WorkoutIntensityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkoutIntensity(tt.levels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkoutIntensity_Empty(t *testing.T) {
	_, err := WorkoutIntensity(nil)
	assert.ErrorIs(t, err, ErrNoExercises)
}

func TestWorkoutIntensity_UnknownLabel(t *testing.T) {
	// Lowercase labels are not aliases of the enum values.
	_, err := WorkoutIntensity([]domain.ExerciseIntensity{"low"})
	assert.Error(t, err)
}

func TestExerciseIntensities(t *testing.T) {
	exercises := []domain.Exercise{{Intensity: high}, {Intensity: low}}
	assert.Equal(t, []domain.ExerciseIntensity{high, low}, ExerciseIntensities(exercises))
}
