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

const foodItemCollectionName = "food_items"

// mongoFoodItemRepository implements repository.FoodItemRepository
type mongoFoodItemRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodItemRepository creates a new FoodItem repository backed by MongoDB.
func NewMongoFoodItemRepository(db *mongo.Database) repository.FoodItemRepository {
	return &mongoFoodItemRepository{
		collection: db.Collection(foodItemCollectionName),
	}
}

func (r *mongoFoodItemRepository) Create(ctx context.Context, item *domain.FoodItem) (primitive.ObjectID, error) {
	if item.Name == "" || item.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("food item name and user ID are required")
	}
	item.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return insertedObjectID(result)
}

func (r *mongoFoodItemRepository) GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": ownerID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDs returns the subset of ids that exist and belong to ownerID.
func (r *mongoFoodItemRepository) GetByIDs(ctx context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.FoodItem, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}, "userId": ownerID}, nil)
}

func (r *mongoFoodItemRepository) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.FoodItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, bson.M{"userId": ownerID}, findOptions)
}

func (r *mongoFoodItemRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.FoodItem, error) {
	items := make([]domain.FoodItem, 0)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoFoodItemRepository) Update(ctx context.Context, item *domain.FoodItem) error {
	if item.ID == primitive.NilObjectID {
		return errors.New("food item ID is required for update")
	}
	item.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":      item.Name,
			"protein":   item.Protein,
			"carbs":     item.Carbs,
			"fats":      item.Fats,
			"calories":  item.Calories,
			"image":     item.Image,
			"updatedAt": item.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": item.ID, "userId": item.UserID}, update)
	if err != nil {
		return translateWriteError(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoFoodItemRepository) Delete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodItemIndexes creates necessary indexes for the food_items collection.
func EnsureFoodItemIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index(),
	})
	return err
}
