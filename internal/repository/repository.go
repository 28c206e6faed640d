package repository

import (
	"context"

	"fittrack/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Every owned-entity lookup below takes the owner ID alongside the entity ID.
// An entity belonging to someone else is reported as ErrNotFound.

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) // ErrDuplicate on email clash
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetVerified(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) // ErrDuplicate on (owner, title) clash
	GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Exercise, error)
	GetByTitle(ctx context.Context, ownerID primitive.ObjectID, title string) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context, ownerID primitive.ObjectID, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error // ErrDuplicate on (owner, title) clash
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}

// FoodItemRepository defines the interface for interacting with food item data.
type FoodItemRepository interface {
	Create(ctx context.Context, item *domain.FoodItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.FoodItem, error)
	GetByIDs(ctx context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.FoodItem, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.FoodItem, error)
	Update(ctx context.Context, item *domain.FoodItem) error
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}

// NutritionPlanRepository defines the interface for interacting with nutrition plan data.
type NutritionPlanRepository interface {
	Create(ctx context.Context, plan *domain.NutritionPlan) (primitive.ObjectID, error) // ErrDuplicate if owner already has a plan
	GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.NutritionPlan, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.NutritionPlan, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.NutritionPlan, error)
	Update(ctx context.Context, plan *domain.NutritionPlan) error
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}

// EmailVerificationRepository stores pending email confirmation tokens.
type EmailVerificationRepository interface {
	Create(ctx context.Context, v *domain.EmailVerification) (primitive.ObjectID, error)
	GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UploadRepository defines the interface for interacting with upload metadata.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Upload, error)
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error
}
