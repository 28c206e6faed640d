package service

import (
	"context"
	"errors"
	"strings"

	"fittrack/fitness-tracker/internal/calc"
	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionPlanInput is the client controlled part of a plan. The macro
// totals and calories are derived from FoodItems.
type NutritionPlanInput struct {
	Title           string
	Description     string
	Image           string
	FoodItems       []string
	MaximumCalories *float64
}

// NutritionPlanDetails is a plan with its food items expanded.
type NutritionPlanDetails struct {
	domain.NutritionPlan
	FoodItems []domain.FoodItem `json:"foodItems"`
}

type NutritionPlanService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, in NutritionPlanInput) (*domain.NutritionPlan, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.NutritionPlan, error)
	GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*NutritionPlanDetails, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, id string, in NutritionPlanInput) (*domain.NutritionPlan, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error
}

type nutritionPlanService struct {
	planRepo     repository.NutritionPlanRepository
	foodItemRepo repository.FoodItemRepository
}

// NewNutritionPlanService creates a new instance of nutritionPlanService.
func NewNutritionPlanService(planRepo repository.NutritionPlanRepository, foodItemRepo repository.FoodItemRepository) NutritionPlanService {
	return &nutritionPlanService{
		planRepo:     planRepo,
		foodItemRepo: foodItemRepo,
	}
}

// derive resolves the food items and totals them. A food item listed twice
// counts twice. The optional cap is checked last.
func (s *nutritionPlanService) derive(ctx context.Context, ownerID primitive.ObjectID, in NutritionPlanInput) ([]primitive.ObjectID, calc.Macros, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, calc.Macros{}, newError(ErrInvalidArgument, "nutrition plan title is required")
	}
	if in.MaximumCalories != nil && *in.MaximumCalories < 0 {
		return nil, calc.Macros{}, newError(ErrInvalidArgument, "maximumCalories must not be negative")
	}

	ids, err := parseRefs(in.FoodItems, "food item")
	if err != nil {
		return nil, calc.Macros{}, err
	}

	var items []domain.FoodItem
	if len(ids) > 0 {
		found, err := s.foodItemRepo.GetByIDs(ctx, ownerID, distinct(ids))
		if err != nil {
			return nil, calc.Macros{}, err
		}
		byID, err := resolveRefs(ids, found, func(f domain.FoodItem) primitive.ObjectID { return f.ID }, "food item")
		if err != nil {
			return nil, calc.Macros{}, err
		}
		items = expand(ids, byID)
	}

	totals := calc.TotalMacros(items)
	if in.MaximumCalories != nil && totals.Calories > *in.MaximumCalories {
		return nil, calc.Macros{}, newError(ErrCapExceeded,
			"total calories %.2f exceed the maximum of %.2f", totals.Calories, *in.MaximumCalories)
	}
	return ids, totals, nil
}

func (in NutritionPlanInput) apply(p *domain.NutritionPlan, ids []primitive.ObjectID, totals calc.Macros) {
	p.Title = in.Title
	p.Description = in.Description
	p.Image = in.Image
	p.FoodItems = ids
	p.Protein = totals.Protein
	p.Carbs = totals.Carbs
	p.Fats = totals.Fats
	p.Calories = totals.Calories
	p.MaximumCalories = in.MaximumCalories
}

// Create stores the owner's only plan.
func (s *nutritionPlanService) Create(ctx context.Context, ownerID primitive.ObjectID, in NutritionPlanInput) (*domain.NutritionPlan, error) {
	_, err := s.planRepo.GetByOwner(ctx, ownerID)
	if err == nil {
		return nil, newError(ErrConflict, "a nutrition plan already exists for this user")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	ids, totals, err := s.derive(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	plan := &domain.NutritionPlan{UserID: ownerID}
	in.apply(plan, ids, totals)
	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, repoError(err, "nutrition plan")
	}
	return plan, nil
}

func (s *nutritionPlanService) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.NutritionPlan, error) {
	return s.planRepo.List(ctx, ownerID)
}

func (s *nutritionPlanService) get(ctx context.Context, ownerID primitive.ObjectID, id string) (*domain.NutritionPlan, error) {
	planID, err := parseID(id, "nutrition plan")
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, ownerID, planID)
	if err != nil {
		return nil, repoError(err, "nutrition plan")
	}
	return plan, nil
}

func (s *nutritionPlanService) GetByID(ctx context.Context, ownerID primitive.ObjectID, id string) (*NutritionPlanDetails, error) {
	plan, err := s.get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	details := &NutritionPlanDetails{NutritionPlan: *plan, FoodItems: []domain.FoodItem{}}
	if len(plan.FoodItems) == 0 {
		return details, nil
	}
	found, err := s.foodItemRepo.GetByIDs(ctx, ownerID, distinct(plan.FoodItems))
	if err != nil {
		return nil, err
	}
	details.FoodItems = expand(plan.FoodItems, indexByID(found, func(f domain.FoodItem) primitive.ObjectID { return f.ID }))
	return details, nil
}

// Update recomputes the totals. When the cap is exceeded nothing is written.
func (s *nutritionPlanService) Update(ctx context.Context, ownerID primitive.ObjectID, id string, in NutritionPlanInput) (*domain.NutritionPlan, error) {
	plan, err := s.get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	ids, totals, err := s.derive(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	in.apply(plan, ids, totals)
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, repoError(err, "nutrition plan")
	}
	return plan, nil
}

func (s *nutritionPlanService) Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error {
	planID, err := parseID(id, "nutrition plan")
	if err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, ownerID, planID); err != nil {
		return repoError(err, "nutrition plan")
	}
	return nil
}
