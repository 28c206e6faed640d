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

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Title == "" || exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise title and user ID are required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return insertedObjectID(result)
}

// GetByID retrieves an exercise by its ID, scoped to its owner.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*domain.Exercise, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": ownerID})
}

// GetByTitle retrieves the owner's exercise with the given title.
func (r *mongoExerciseRepository) GetByTitle(ctx context.Context, ownerID primitive.ObjectID, title string) (*domain.Exercise, error) {
	return r.findOne(ctx, bson.M{"title": title, "userId": ownerID})
}

func (r *mongoExerciseRepository) findOne(ctx context.Context, filter bson.M) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByIDs returns the subset of ids that exist and belong to ownerID.
func (r *mongoExerciseRepository) GetByIDs(ctx context.Context, ownerID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}, "userId": ownerID}
	return r.find(ctx, filter, nil)
}

// List retrieves the owner's exercises matching filter, newest first.
func (r *mongoExerciseRepository) List(ctx context.Context, ownerID primitive.ObjectID, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	query := bson.M{"userId": ownerID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Intensity != "" {
		query["intensity"] = filter.Intensity
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, query, findOptions)
}

func (r *mongoExerciseRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Update replaces the mutable fields of an exercise. The owner is part of
// the filter and never changes.
func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == primitive.NilObjectID {
		return errors.New("exercise ID is required for update")
	}

	filter := bson.M{"_id": exercise.ID, "userId": exercise.UserID}
	exercise.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":           exercise.Title,
			"description":     exercise.Description,
			"category":        exercise.Category,
			"duration":        exercise.Duration,
			"intensity":       exercise.Intensity,
			"sets":            exercise.Sets,
			"reps":            exercise.Reps,
			"rest":            exercise.Rest,
			"image":           exercise.Image,
			"youtubeVideo":    exercise.YoutubeVideo,
			"targetedMuscles": exercise.TargetedMuscles,
			"updatedAt":       exercise.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateWriteError(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an exercise, ensuring it belongs to the specified owner.
func (r *mongoExerciseRepository) Delete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Not found or owned by someone else; callers cannot tell which.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Title is unique per owner
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("exercise_owner_title"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "category", Value: 1}, {Key: "intensity", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
