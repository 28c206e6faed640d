package calc

import (
	"testing"

	"fittrack/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCalories(t *testing.T) {
	assert.Equal(t, 0.0, Calories(0, 0, 0))
	assert.Equal(t, 4.0*(10+20+5), Calories(10, 20, 5))
	assert.Equal(t, 4.0*(1.5+2.25+0.25), Calories(1.5, 2.25, 0.25))
}

func TestCalories_FatUsesSameWeight(t *testing.T) {
	// One gram of fat counts the same as one gram of protein.
	assert.Equal(t, Calories(1, 0, 0), Calories(0, 0, 1))
}

func TestSumField_Empty(t *testing.T) {
	var items []domain.FoodItem
	assert.Equal(t, 0.0, SumField(items, func(f domain.FoodItem) float64 { return f.Protein }))
}

func TestSumField_OrderIndependent(t *testing.T) {
	items := []domain.FoodItem{{Carbs: 3}, {Carbs: 11.5}, {Carbs: 0.5}}
	reversed := []domain.FoodItem{items[2], items[1], items[0]}
	carbs := func(f domain.FoodItem) float64 { return f.Carbs }

	assert.Equal(t, 15.0, SumField(items, carbs))
	assert.Equal(t, SumField(items, carbs), SumField(reversed, carbs))
}

func TestTotalMacros(t *testing.T) {
	items := []domain.FoodItem{
		{Protein: 20, Carbs: 30, Fats: 10},
		{Protein: 5, Carbs: 0, Fats: 15},
	}
	m := TotalMacros(items)

	assert.Equal(t, 25.0, m.Protein)
	assert.Equal(t, 30.0, m.Carbs)
	assert.Equal(t, 25.0, m.Fats)
	assert.Equal(t, Calories(25, 30, 25), m.Calories)
	assert.Equal(t, 320.0, m.Calories)
}

func TestTotalMacros_Empty(t *testing.T) {
	assert.Equal(t, Macros{}, TotalMacros(nil))
}
