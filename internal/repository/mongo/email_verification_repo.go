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

const emailVerificationCollectionName = "email_verifications"

type mongoEmailVerificationRepository struct {
	collection *mongo.Collection
}

// NewMongoEmailVerificationRepository creates a repository for pending email confirmations.
func NewMongoEmailVerificationRepository(db *mongo.Database) repository.EmailVerificationRepository {
	return &mongoEmailVerificationRepository{
		collection: db.Collection(emailVerificationCollectionName),
	}
}

func (r *mongoEmailVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) (primitive.ObjectID, error) {
	if v.UserID == primitive.NilObjectID || v.Token == "" {
		return primitive.NilObjectID, errors.New("verification requires userId and token")
	}
	v.ID = primitive.NewObjectID()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, v)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return insertedObjectID(result)
}

func (r *mongoEmailVerificationRepository) GetByToken(ctx context.Context, token string) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *mongoEmailVerificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureEmailVerificationIndexes creates the token lookup index and the TTL
// index that lets MongoDB purge stale tokens on its own.
func EnsureEmailVerificationIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(domain.EmailVerificationTTL.Seconds())),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
