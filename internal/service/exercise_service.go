package service

import (
	"context"
	"errors"
	"strings"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseInput is the client controlled part of an exercise.
type ExerciseInput struct {
	Title           string
	Description     string
	Category        domain.Category
	Duration        float64
	Intensity       domain.ExerciseIntensity
	Sets            int
	Reps            int
	Rest            float64
	Image           string
	YoutubeVideo    string
	TargetedMuscles []string
}

func (in ExerciseInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return newError(ErrInvalidArgument, "exercise title is required")
	}
	if !in.Category.Valid() {
		return newError(ErrInvalidArgument, "invalid category %q", in.Category)
	}
	if !in.Intensity.Valid() {
		return newError(ErrInvalidArgument, "invalid intensity %q", in.Intensity)
	}
	if in.Duration < 0 || in.Sets < 0 || in.Reps < 0 || in.Rest < 0 {
		return newError(ErrInvalidArgument, "duration, sets, reps and rest must not be negative")
	}
	return nil
}

func (in ExerciseInput) apply(e *domain.Exercise) {
	e.Title = in.Title
	e.Description = in.Description
	e.Category = in.Category
	e.Duration = in.Duration
	e.Intensity = in.Intensity
	e.Sets = in.Sets
	e.Reps = in.Reps
	e.Rest = in.Rest
	e.Image = in.Image
	e.YoutubeVideo = in.YoutubeVideo
	e.TargetedMuscles = in.TargetedMuscles
	if e.TargetedMuscles == nil {
		e.TargetedMuscles = []string{}
	}
}

// --- Service Interface ---
type ExerciseService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error)
	List(ctx context.Context, ownerID primitive.ObjectID, category, intensity string) ([]domain.Exercise, error)
	GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.Exercise, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, id string, in ExerciseInput) (*domain.Exercise, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error
}

// --- Service Implementation ---

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// titleTaken reports whether the owner has an exercise called title other than self.
func (s *exerciseService) titleTaken(ctx context.Context, ownerID primitive.ObjectID, title string, self primitive.ObjectID) (bool, error) {
	existing, err := s.exerciseRepo.GetByTitle(ctx, ownerID, title)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != self, nil
}

// Create adds an exercise for the owner. Titles are unique per owner.
func (s *exerciseService) Create(ctx context.Context, ownerID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error) {
	taken, err := s.titleTaken(ctx, ownerID, in.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrConflict, "exercise %q already exists", in.Title)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{UserID: ownerID}
	in.apply(exercise)
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		// Lost a race against a concurrent create with the same title.
		return nil, repoError(err, "exercise")
	}
	return exercise, nil
}

// List returns the owner's exercises, optionally narrowed by category and intensity.
func (s *exerciseService) List(ctx context.Context, ownerID primitive.ObjectID, category, intensity string) ([]domain.Exercise, error) {
	filter := domain.ExerciseFilter{
		Category:  domain.Category(category),
		Intensity: domain.ExerciseIntensity(intensity),
	}
	if category != "" && !filter.Category.Valid() {
		return nil, newError(ErrInvalidFilter, "invalid category filter %q", category)
	}
	if intensity != "" && !filter.Intensity.Valid() {
		return nil, newError(ErrInvalidFilter, "invalid intensity filter %q", intensity)
	}
	return s.exerciseRepo.List(ctx, ownerID, filter)
}

func (s *exerciseService) GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.Exercise, error) {
	exerciseID, err := parseID(id, "exercise")
	if err != nil {
		return nil, err
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, ownerID, exerciseID)
	if err != nil {
		return nil, repoError(err, "exercise")
	}
	return exercise, nil
}

// Update replaces the client controlled fields after re-running every create check.
func (s *exerciseService) Update(ctx context.Context, ownerID primitive.ObjectID, id string, in ExerciseInput) (*domain.Exercise, error) {
	exercise, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.titleTaken(ctx, ownerID, in.Title, exercise.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrConflict, "exercise %q already exists", in.Title)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	in.apply(exercise)
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, repoError(err, "exercise")
	}
	return exercise, nil
}

// Delete removes the exercise. Workouts referencing it are left as they are.
func (s *exerciseService) Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error {
	exerciseID, err := parseID(id, "exercise")
	if err != nil {
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, ownerID, exerciseID); err != nil {
		return repoError(err, "exercise")
	}
	return nil
}
