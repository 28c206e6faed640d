package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection; Connect alone does not dial.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection used by the API.
// The unique indexes back the per-owner uniqueness rules, so the first error
// is returned instead of being swallowed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	steps := []func(context.Context, *mongo.Collection) error{
		EnsureUserIndexes,
		EnsureExerciseIndexes,
		EnsureWorkoutIndexes,
		EnsureFoodItemIndexes,
		EnsureNutritionPlanIndexes,
		EnsureEmailVerificationIndexes,
		EnsureUploadIndexes,
	}
	names := []string{
		userCollectionName,
		exerciseCollectionName,
		workoutCollectionName,
		foodItemCollectionName,
		nutritionPlanCollectionName,
		emailVerificationCollectionName,
		uploadCollectionName,
	}
	for i, ensure := range steps {
		if err := ensure(ctx, db.Collection(names[i])); err != nil {
			return err
		}
	}
	return nil
}

// insertedObjectID asserts the type of an InsertOne result ID.
func insertedObjectID(result *mongo.InsertOneResult) (primitive.ObjectID, error) {
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// translateWriteError maps driver errors onto repository errors.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}
