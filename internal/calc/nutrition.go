// Package calc holds the pure computations behind derived entity fields.
package calc

import "fittrack/fitness-tracker/internal/domain"

// KcalPerGram is applied to protein, carbs and fats alike. Fat is not
// weighted at 9 kcal/g; stored plans and items depend on this model.
const KcalPerGram = 4

// Calories converts macronutrient grams into kilocalories.
func Calories(protein, carbs, fats float64) float64 {
	return protein*KcalPerGram + carbs*KcalPerGram + fats*KcalPerGram
}

// SumField adds up field(item) across items. An empty slice sums to 0.
func SumField[T any](items []T, field func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += field(item)
	}
	return total
}

// Macros are the aggregated nutrition values of a set of food items.
type Macros struct {
	Protein  float64
	Carbs    float64
	Fats     float64
	Calories float64
}

// TotalMacros sums the macronutrients of items and derives calories from the sums.
func TotalMacros(items []domain.FoodItem) Macros {
	m := Macros{
		Protein: SumField(items, func(f domain.FoodItem) float64 { return f.Protein }),
		Carbs:   SumField(items, func(f domain.FoodItem) float64 { return f.Carbs }),
		Fats:    SumField(items, func(f domain.FoodItem) float64 { return f.Fats }),
	}
	m.Calories = Calories(m.Protein, m.Carbs, m.Fats)
	return m
}
