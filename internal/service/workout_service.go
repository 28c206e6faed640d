package service

import (
	"context"
	"strings"

	"fittrack/fitness-tracker/internal/calc"
	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutInput is the client controlled part of a workout. Intensity is
// never accepted here; it is derived from the referenced exercises.
type WorkoutInput struct {
	Title       string
	Description string
	Exercises   []string
	Image       string
	Duration    float64
}

// WorkoutDetails is a workout with its exercises expanded, in listing order.
type WorkoutDetails struct {
	domain.Workout
	Exercises []domain.Exercise `json:"exercises"`
}

type WorkoutService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in WorkoutInput) (*domain.Workout, error)
	List(ctx context.Context, ownerID primitive.ObjectID, intensity string) ([]domain.Workout, error)
	GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*WorkoutDetails, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, id string, in WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

// derive validates the input and computes the intensity of the referenced exercises.
// Each mention of an exercise counts once toward the average.
func (s *workoutService) derive(ctx context.Context, ownerID primitive.ObjectID, in WorkoutInput) ([]primitive.ObjectID, domain.WorkoutIntensity, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, "", newError(ErrInvalidArgument, "workout title is required")
	}
	if in.Duration < 0 {
		return nil, "", newError(ErrInvalidArgument, "duration must not be negative")
	}

	ids, err := parseRefs(in.Exercises, "exercise")
	if err != nil {
		return nil, "", err
	}
	if len(ids) == 0 {
		return nil, "", newError(ErrInvalidArgument, "%s", calc.ErrNoExercises)
	}

	found, err := s.exerciseRepo.GetByIDs(ctx, ownerID, distinct(ids))
	if err != nil {
		return nil, "", err
	}
	byID, err := resolveRefs(ids, found, func(e domain.Exercise) primitive.ObjectID { return e.ID }, "exercise")
	if err != nil {
		return nil, "", err
	}

	intensity, err := calc.WorkoutIntensity(calc.ExerciseIntensities(expand(ids, byID)))
	if err != nil {
		return nil, "", newError(ErrInvalidArgument, "%s", err)
	}
	return ids, intensity, nil
}

func (in WorkoutInput) apply(w *domain.Workout, ids []primitive.ObjectID, intensity domain.WorkoutIntensity) {
	w.Title = in.Title
	w.Description = in.Description
	w.Exercises = ids
	w.Image = in.Image
	w.Duration = in.Duration
	w.Intensity = intensity
}

// Create stores a workout whose exercises all belong to the owner.
func (s *workoutService) Create(ctx context.Context, ownerID primitive.ObjectID, in WorkoutInput) (*domain.Workout, error) {
	ids, intensity, err := s.derive(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{UserID: ownerID}
	in.apply(workout, ids, intensity)
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, repoError(err, "workout")
	}
	return workout, nil
}

func (s *workoutService) List(ctx context.Context, ownerID primitive.ObjectID, intensity string) ([]domain.Workout, error) {
	filter := domain.WorkoutFilter{Intensity: domain.WorkoutIntensity(intensity)}
	if intensity != "" && !filter.Intensity.Valid() {
		return nil, newError(ErrInvalidFilter, "invalid intensity filter %q", intensity)
	}
	return s.workoutRepo.List(ctx, ownerID, filter)
}

func (s *workoutService) get(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.Workout, error) {
	workoutID, err := parseID(id, "workout")
	if err != nil {
		return nil, err
	}
	workout, err := s.workoutRepo.GetByID(ctx, ownerID, workoutID)
	if err != nil {
		return nil, repoError(err, "workout")
	}
	return workout, nil
}

// GetByID returns the workout with its exercises. Exercises deleted after the
// workout was written are omitted.
func (s *workoutService) GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*WorkoutDetails, error) {
	workout, err := s.get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	found, err := s.exerciseRepo.GetByIDs(ctx, ownerID, distinct(workout.Exercises))
	if err != nil {
		return nil, err
	}
	byID := indexByID(found, func(e domain.Exercise) primitive.ObjectID { return e.ID })
	return &WorkoutDetails{Workout: *workout, Exercises: expand(workout.Exercises, byID)}, nil
}

// Update re-validates the exercise references and recomputes intensity.
func (s *workoutService) Update(ctx context.Context, ownerID primitive.ObjectID, id string, in WorkoutInput) (*domain.Workout, error) {
	workout, err := s.get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	ids, intensity, err := s.derive(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	in.apply(workout, ids, intensity)
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, repoError(err, "workout")
	}
	return workout, nil
}

func (s *workoutService) Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error {
	workoutID, err := parseID(id, "workout")
	if err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, ownerID, workoutID); err != nil {
		return repoError(err, "workout")
	}
	return nil
}
