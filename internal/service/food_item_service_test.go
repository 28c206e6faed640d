package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFoodItemCaloriesDerived(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	item, err := f.foodItems.Create(ctx, owner, FoodItemInput{Name: "Egg", Protein: 6, Carbs: 1, Fats: 5})
	require.NoError(t, err)
	assert.Equal(t, 48.0, item.Calories)

	item, err = f.foodItems.Update(ctx, owner, item.ID.Hex(), FoodItemInput{Name: "Egg", Protein: 10})
	require.NoError(t, err)
	assert.Equal(t, 40.0, item.Calories)

	got, err := f.foodItems.GetByID(ctx, owner, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.Calories)
}

func TestFoodItemValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()

	_, err := f.foodItems.Create(ctx, owner, FoodItemInput{Name: " "})
	assertKind(t, err, ErrInvalidArgument)
	_, err = f.foodItems.Create(ctx, owner, FoodItemInput{Name: "Bad", Fats: -1})
	assertKind(t, err, ErrInvalidArgument)
}

func TestFoodItemOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	item, err := f.foodItems.Create(ctx, alice, FoodItemInput{Name: "Rice", Carbs: 28})
	require.NoError(t, err)

	_, err = f.foodItems.GetByID(ctx, bob, item.ID.Hex())
	assertKind(t, err, ErrNotFound)
	_, err = f.foodItems.Update(ctx, bob, item.ID.Hex(), FoodItemInput{Name: "Mine"})
	assertKind(t, err, ErrNotFound)
	assertKind(t, f.foodItems.Delete(ctx, bob, item.ID.Hex()), ErrNotFound)

	bobs, err := f.foodItems.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	alices, err := f.foodItems.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, alices, 1)
}
