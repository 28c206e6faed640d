package service

import (
	"context"
	"testing"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedFood(t *testing.T, f *fixture, owner primitive.ObjectID, in FoodItemInput) *domain.FoodItem {
	t.Helper()
	item, err := f.foodItems.Create(context.Background(), owner, in)
	require.NoError(t, err)
	return item
}

func ptr(v float64) *float64 { return &v }

func TestPlanTotalsDerived(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	oats := seedFood(t, f, owner, FoodItemInput{Name: "Oats", Protein: 10, Carbs: 60, Fats: 5})
	milk := seedFood(t, f, owner, FoodItemInput{Name: "Milk", Protein: 8, Carbs: 12, Fats: 8})

	plan, err := f.plans.Create(ctx, owner, NutritionPlanInput{Title: "Bulk", FoodItems: hexIDs(oats.ID, milk.ID)})
	require.NoError(t, err)
	assert.Equal(t, 18.0, plan.Protein)
	assert.Equal(t, 72.0, plan.Carbs)
	assert.Equal(t, 13.0, plan.Fats)
	assert.Equal(t, 412.0, plan.Calories)

	details, err := f.plans.GetByID(ctx, owner, plan.ID.Hex())
	require.NoError(t, err)
	require.Len(t, details.FoodItems, 2)
	assert.Equal(t, "Oats", details.FoodItems[0].Name)
}

func TestPlanUniquePerOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	_, err := f.plans.Create(ctx, alice, NutritionPlanInput{Title: "First"})
	require.NoError(t, err)
	_, err = f.plans.Create(ctx, alice, NutritionPlanInput{Title: "Second"})
	assertKind(t, err, ErrConflict)

	_, err = f.plans.Create(ctx, bob, NutritionPlanInput{Title: "Bob's"})
	assert.NoError(t, err)
}

func TestPlanForeignFoodItemCreatesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	foreign := seedFood(t, f, bob, FoodItemInput{Name: "Bob's steak", Protein: 50})

	_, err := f.plans.Create(ctx, alice, NutritionPlanInput{Title: "Stolen", FoodItems: hexIDs(foreign.ID)})
	assertKind(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), foreign.ID.Hex())

	plans, err := f.plans.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanCapExceeded(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	owner := primitive.NewObjectID()
	light := seedFood(t, f, owner, FoodItemInput{Name: "Apple", Carbs: 25})
	heavy := seedFood(t, f, owner, FoodItemInput{Name: "Pizza", Protein: 40, Carbs: 120, Fats: 40})

	_, err := f.plans.Create(ctx, owner, NutritionPlanInput{Title: "Cut", FoodItems: hexIDs(heavy.ID), MaximumCalories: ptr(500)})
	assertKind(t, err, ErrCapExceeded)

	plan, err := f.plans.Create(ctx, owner, NutritionPlanInput{Title: "Cut", FoodItems: hexIDs(light.ID), MaximumCalories: ptr(500)})
	require.NoError(t, err)
	assert.Equal(t, 100.0, plan.Calories)

	_, err = f.plans.Update(ctx, owner, plan.ID.Hex(), NutritionPlanInput{
		Title:           "Cheat",
		FoodItems:       hexIDs(light.ID, heavy.ID),
		MaximumCalories: ptr(500),
	})
	assertKind(t, err, ErrCapExceeded)

	stored, err := f.plans.GetByID(ctx, owner, plan.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Cut", stored.Title, "stored plan is unchanged")
	assert.Equal(t, 100.0, stored.Calories)
	assert.Equal(t, []primitive.ObjectID{light.ID}, stored.NutritionPlan.FoodItems)

	// exactly at the cap is allowed
	_, err = f.plans.Update(ctx, owner, plan.ID.Hex(), NutritionPlanInput{Title: "Edge", FoodItems: hexIDs(light.ID), MaximumCalories: ptr(100)})
	assert.NoError(t, err)
}

func TestPlanOwnershipAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	plan, err := f.plans.Create(ctx, alice, NutritionPlanInput{Title: "Alice"})
	require.NoError(t, err)

	_, foreignErr := f.plans.GetByID(ctx, bob, plan.ID.Hex())
	_, missingErr := f.plans.GetByID(ctx, bob, primitive.NewObjectID().Hex())
	assertKind(t, foreignErr, ErrNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())

	_, err = f.plans.GetByID(ctx, alice, "xyz")
	assertKind(t, err, ErrInvalidIdentifier)

	require.NoError(t, f.plans.Delete(ctx, alice, plan.ID.Hex()))
	assertKind(t, f.plans.Delete(ctx, alice, plan.ID.Hex()), ErrNotFound)

	// the slot is free again
	_, err = f.plans.Create(ctx, alice, NutritionPlanInput{Title: "Again"})
	assert.NoError(t, err)
}
