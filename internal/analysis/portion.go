package analysis

import "math"

// Calorie and fat contribution of roughly one tablespoon of cooking oil.
const (
	addedOilCalories = 100
	addedOilFatGrams = 11
)

// Restaurant portions run systematically heavier than home-cooked ones.
const (
	restaurantEnergyFactor = 1.2
	restaurantMacroFactor  = 1.1
)

// portionFactor maps the requested portion size to a recognized multiplier.
// Anything other than 0.5 or 1.5 means a normal portion.
func portionFactor(portionSize float64) float64 {
	switch portionSize {
	case 0.5, 1.5:
		return portionSize
	default:
		return 1.0
	}
}

// Adjust scales a base estimate by portion size, added cooking oil and
// restaurant inflation, in that exact order. Every multiplication is rounded
// to whole units before the next step compounds on it, so the order is part
// of the contract.
func Adjust(base NutritionEstimate, portionSize float64, addedOil, isRestaurant bool) NutritionEstimate {
	adjusted := base

	factor := portionFactor(portionSize)
	adjusted.Calories = math.Round(adjusted.Calories * factor)
	adjusted.Protein = math.Round(adjusted.Protein * factor)
	adjusted.Carbs = math.Round(adjusted.Carbs * factor)
	adjusted.Fat = math.Round(adjusted.Fat * factor)

	if addedOil {
		adjusted.Calories += addedOilCalories
		adjusted.Fat += addedOilFatGrams
	}

	if isRestaurant {
		adjusted.Calories = math.Round(adjusted.Calories * restaurantEnergyFactor)
		adjusted.Protein = math.Round(adjusted.Protein * restaurantMacroFactor)
		adjusted.Carbs = math.Round(adjusted.Carbs * restaurantMacroFactor)
		adjusted.Fat = math.Round(adjusted.Fat * restaurantEnergyFactor)
	}

	return adjusted
}
