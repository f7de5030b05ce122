package analysis

import (
	"fmt"
	"math"
)

// GenericText renders the image-path user text when no usable profile is
// present: the estimate's macros plus a comment keyed on the health tier.
func GenericText(est NutritionEstimate) string {
	var healthComment string
	switch est.HealthClass {
	case HealthGood:
		healthComment = "Pääosin terveellinen annos – paljon proteiinia ja/tai kuitua."
	case HealthPoor:
		healthComment = "Raskas annos – paras satunnaiseen herkutteluun runsaamman energiamäärän vuoksi."
	default:
		healthComment = "Kohtuullisen terveellinen arkiruoka – sisältää proteiinia, mutta myös jonkin verran rasvaa tai sokeria."
	}

	return fmt.Sprintf("%s (arvio n. %.0f kcal, %.0f g proteiinia, %.0f g hiilihydraatteja, %.0f g rasvaa).\n\n%s %s",
		est.FoodName, est.Calories, est.Protein, est.Carbs, est.Fat, est.HealthClass, healthComment)
}

// ProfileAwareText renders the image-path user text against the user's
// computed daily energy need and goal. Falls back to the generic text when
// the profile cannot yield a daily need.
func ProfileAwareText(est NutritionEstimate, profile *Profile) string {
	dailyCalories, ok := DailyEnergyNeed(profile)
	if !ok {
		return GenericText(est)
	}

	ratio := est.Calories / float64(dailyCalories)
	percentage := int(math.Round(ratio * 100))

	var comment string
	switch profile.Goal {
	case "lose":
		if ratio > 0.5 {
			comment = "Iso pala päivän kaloreista, syö varoen tai jaa pienempiin annoksiin."
		} else if ratio >= 0.2 && ratio <= 0.3 {
			comment = "Hyvä osuuspala päivän kaloreista, sopii hyvin pääateriaksi."
		} else {
			comment = "Kohtuullinen annos laihdutukseen."
		}
	case "gain":
		comment = fmt.Sprintf("Hyvä proteiinimäärä (%.0f g) lihasmassan kasvuun – huolehdi myös riittävästä kokonaisenergiasta.", est.Protein)
	default:
		comment = "Sopii osaksi tasapainoista ylläpitoruokavaliota."
	}

	return fmt.Sprintf("%s (arvio n. %.0f kcal, %.0f g proteiinia, %.0f g hiilihydraatteja, %.0f g rasvaa).\n\nTämä on noin %d%% päivän %stavoitteesi kaloreista.\n\n%s %s",
		est.FoodName, est.Calories, est.Protein, est.Carbs, est.Fat, percentage, profile.GoalLabel(), comment, est.HealthClass)
}
