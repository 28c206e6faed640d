package domain

// Category classifies an exercise.
type Category string

const (
	CategoryCardio      Category = "Cardio"
	CategoryStrength    Category = "Strength"
	CategoryFlexibility Category = "Flexibility"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility:
		return true
	}
	return false
}

// ExerciseIntensity is the self-reported effort level of a single exercise.
type ExerciseIntensity string

const (
	ExerciseIntensityLow      ExerciseIntensity = "Low"
	ExerciseIntensityModerate ExerciseIntensity = "Moderate"
	ExerciseIntensityHigh     ExerciseIntensity = "High"
)

func (i ExerciseIntensity) Valid() bool {
	switch i {
	case ExerciseIntensityLow, ExerciseIntensityModerate, ExerciseIntensityHigh:
		return true
	}
	return false
}

// WorkoutIntensity is derived from the exercises of a workout, never supplied by clients.
type WorkoutIntensity string

const (
	WorkoutIntensityLow    WorkoutIntensity = "Low"
	WorkoutIntensityMedium WorkoutIntensity = "Medium"
	WorkoutIntensityHigh   WorkoutIntensity = "High"
)

func (i WorkoutIntensity) Valid() bool {
	switch i {
	case WorkoutIntensityLow, WorkoutIntensityMedium, WorkoutIntensityHigh:
		return true
	}
	return false
}

// Goal is the user's body-weight objective.
type Goal string

const (
	GoalLoseWeight     Goal = "Lose Weight"
	GoalGainWeight     Goal = "Gain Weight"
	GoalMaintainWeight Goal = "Maintain Weight"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainWeight, GoalMaintainWeight:
		return true
	}
	return false
}

// Enum is implemented by every closed enumeration in this package.
// The API layer uses it to validate bound request fields in one place.
type Enum interface {
	Valid() bool
}
