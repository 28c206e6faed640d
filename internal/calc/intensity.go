package calc

import (
	"errors"
	"fmt"
	"math"

	"fittrack/fitness-tracker/internal/domain"
)

// ErrNoExercises is returned when a workout intensity is requested for zero exercises.
var ErrNoExercises = errors.New("at least one exercise is required to compute intensity")

var intensityWeights = map[domain.ExerciseIntensity]float64{
	domain.ExerciseIntensityLow:      1,
	domain.ExerciseIntensityModerate: 2,
	domain.ExerciseIntensityHigh:     3,
}

// WorkoutIntensity averages the ordinal weights of the given exercise
// intensities, rounds half up and maps the result back to a workout level.
func WorkoutIntensity(levels []domain.ExerciseIntensity) (domain.WorkoutIntensity, error) {
	if len(levels) == 0 {
		return "", ErrNoExercises
	}

	var total float64
	for _, level := range levels {
		w, ok := intensityWeights[level]
		if !ok {
			return "", fmt.Errorf("unknown exercise intensity %q", level)
		}
		total += w
	}

	rounded := math.Floor(total/float64(len(levels)) + 0.5)
	switch {
	case rounded <= 1:
		return domain.WorkoutIntensityLow, nil
	case rounded == 2:
		return domain.WorkoutIntensityMedium, nil
	default:
		return domain.WorkoutIntensityHigh, nil
	}
}

// ExerciseIntensities extracts the intensity of each exercise, preserving order.
func ExerciseIntensities(exercises []domain.Exercise) []domain.ExerciseIntensity {
	levels := make([]domain.ExerciseIntensity, len(exercises))
	for i, ex := range exercises {
		levels[i] = ex.Intensity
	}
	return levels
}
