// internal/repository/mongo/nutrition_plan_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const nutritionPlanCollectionName = "nutrition_plans"

// mongoNutritionPlanRepository implements repository.NutritionPlanRepository
type mongoNutritionPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionPlanRepository creates a new NutritionPlan repository.
func NewMongoNutritionPlanRepository(db *mongo.Database) repository.NutritionPlanRepository {
	return &mongoNutritionPlanRepository{
		collection: db.Collection(nutritionPlanCollectionName),
	}
}

// Create inserts a new nutrition plan. The unique index on userId turns a
// second plan for the same owner into repository.ErrDuplicate.
func (r *mongoNutritionPlanRepository) Create(ctx context.Context, plan *domain.NutritionPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID || plan.Title == "" {
		return primitive.NilObjectID, errors.New("plan requires userId and title")
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return insertedObjectID(result)
}

// GetByID retrieves a single nutrition plan by its ID, scoped to its owner.
func (r *mongoNutritionPlanRepository) GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.NutritionPlan, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": ownerID})
}

// GetByOwner retrieves the owner's plan, if any.
func (r *mongoNutritionPlanRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.NutritionPlan, error) {
	return r.findOne(ctx, bson.M{"userId": ownerID})
}

func (r *mongoNutritionPlanRepository) findOne(ctx context.Context, filter bson.M) (*domain.NutritionPlan, error) {
	var plan domain.NutritionPlan
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// List returns the owner's plans. With the unique index this is zero or one element.
func (r *mongoNutritionPlanRepository) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.NutritionPlan, error) {
	plans := make([]domain.NutritionPlan, 0)
	cursor, err := r.collection.Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update rewrites the plan including its recomputed totals.
func (r *mongoNutritionPlanRepository) Update(ctx context.Context, plan *domain.NutritionPlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("plan ID is required for update")
	}
	plan.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"title":       plan.Title,
		"description": plan.Description,
		"image":       plan.Image,
		"foodItems":   plan.FoodItems,
		"protein":     plan.Protein,
		"carbs":       plan.Carbs,
		"fats":        plan.Fats,
		"calories":    plan.Calories,
		"updatedAt":   plan.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if plan.MaximumCalories != nil {
		set["maximumCalories"] = *plan.MaximumCalories
	} else {
		update["$unset"] = bson.M{"maximumCalories": ""}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": plan.ID, "userId": plan.UserID}, update)
	if err != nil {
		return translateWriteError(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoNutritionPlanRepository) Delete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureNutritionPlanIndexes creates the one-plan-per-user index.
func EnsureNutritionPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("nutrition_plan_owner"),
	})
	return err
}
