package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseEstimate() NutritionEstimate {
	return NutritionEstimate{
		FoodName:    "Kana-riisiannos",
		Calories:    650,
		Protein:     40,
		Carbs:       60,
		Fat:         20,
		HealthClass: HealthGood,
	}
}

func TestAdjustPortionScaling(t *testing.T) {
	got := Adjust(baseEstimate(), 0.5, false, false)
	assert.Equal(t, 325.0, got.Calories)
	assert.Equal(t, 20.0, got.Protein)
	assert.Equal(t, 30.0, got.Carbs)
	assert.Equal(t, 10.0, got.Fat)

	// unchanged fields pass through
	assert.Equal(t, "Kana-riisiannos", got.FoodName)
	assert.Equal(t, HealthGood, got.HealthClass)
}

func TestAdjustUnrecognizedFactorMeansNormalPortion(t *testing.T) {
	for _, size := range []float64{0, 1, 2, 0.75, -1} {
		got := Adjust(baseEstimate(), size, false, false)
		assert.Equal(t, baseEstimate(), got, "portionSize %v", size)
	}
}

func TestAdjustAddedOil(t *testing.T) {
	// a tablespoon of oil is a fixed delta regardless of portion factor
	normal := Adjust(baseEstimate(), 1, true, false)
	assert.Equal(t, 750.0, normal.Calories)
	assert.Equal(t, 31.0, normal.Fat)

	half := Adjust(baseEstimate(), 0.5, true, false)
	assert.Equal(t, 425.0, half.Calories)
	assert.Equal(t, 21.0, half.Fat)
}

func TestAdjustRestaurant(t *testing.T) {
	base := NutritionEstimate{Calories: 100, Protein: 10, Carbs: 10, Fat: 10}
	got := Adjust(base, 1, false, true)
	assert.Equal(t, 120.0, got.Calories)
	assert.Equal(t, 11.0, got.Protein)
	assert.Equal(t, 11.0, got.Carbs)
	assert.Equal(t, 12.0, got.Fat)
}

func TestAdjustOrderIsScaleThenOilThenRestaurant(t *testing.T) {
	// 105 kcal: scale first rounds 52.5 up to 53, then 53*1.2 rounds to 64.
	// Inflating first would give round(126*0.5) = 63, so the step order is
	// observable through rounding.
	base := NutritionEstimate{Calories: 105}
	got := Adjust(base, 0.5, false, true)
	assert.Equal(t, 64.0, got.Calories)

	// oil is added after scaling but inflated by the restaurant factor
	withOil := Adjust(NutritionEstimate{Calories: 100, Fat: 0}, 0.5, true, true)
	assert.Equal(t, 180.0, withOil.Calories)
	assert.Equal(t, 13.0, withOil.Fat)
}
