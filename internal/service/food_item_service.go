package service

import (
	"context"
	"strings"

	"fittrack/fitness-tracker/internal/calc"
	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodItemInput holds macronutrients in grams. Calories are always computed.
type FoodItemInput struct {
	Name    string
	Protein float64
	Carbs   float64
	Fats    float64
	Image   string
}

func (in FoodItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return newError(ErrInvalidArgument, "food item name is required")
	}
	if in.Protein < 0 || in.Carbs < 0 || in.Fats < 0 {
		return newError(ErrInvalidArgument, "protein, carbs and fats must not be negative")
	}
	return nil
}

func (in FoodItemInput) apply(f *domain.FoodItem) {
	f.Name = in.Name
	f.Protein = in.Protein
	f.Carbs = in.Carbs
	f.Fats = in.Fats
	f.Image = in.Image
	f.Calories = calc.Calories(in.Protein, in.Carbs, in.Fats)
}

type FoodItemService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in FoodItemInput) (*domain.FoodItem, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.FoodItem, error)
	GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.FoodItem, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, id string, in FoodItemInput) (*domain.FoodItem, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error
}

type foodItemService struct {
	foodItemRepo repository.FoodItemRepository
}

// NewFoodItemService creates a new instance of foodItemService.
func NewFoodItemService(foodItemRepo repository.FoodItemRepository) FoodItemService {
	return &foodItemService{foodItemRepo: foodItemRepo}
}

func (s *foodItemService) Create(ctx context.Context, ownerID primitive.ObjectID, in FoodItemInput) (*domain.FoodItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &domain.FoodItem{UserID: ownerID}
	in.apply(item)
	if _, err := s.foodItemRepo.Create(ctx, item); err != nil {
		return nil, repoError(err, "food item")
	}
	return item, nil
}

func (s *foodItemService) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.FoodItem, error) {
	return s.foodItemRepo.List(ctx, ownerID)
}

func (s *foodItemService) GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.FoodItem, error) {
	itemID, err := parseID(id, "food item")
	if err != nil {
		return nil, err
	}
	item, err := s.foodItemRepo.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return nil, repoError(err, "food item")
	}
	return item, nil
}

// Update recomputes calories. Plans that reference the item keep their
// stored totals until they are written again.
func (s *foodItemService) Update(ctx context.Context, ownerID primitive.ObjectID, id string, in FoodItemInput) (*domain.FoodItem, error) {
	item, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	in.apply(item)
	if err := s.foodItemRepo.Update(ctx, item); err != nil {
		return nil, repoError(err, "food item")
	}
	return item, nil
}

func (s *foodItemService) Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error {
	itemID, err := parseID(id, "food item")
	if err != nil {
		return err
	}
	if err := s.foodItemRepo.Delete(ctx, ownerID, itemID); err != nil {
		return repoError(err, "food item")
	}
	return nil
}
