package analysis

import "math"

// Profile is optional user context for personalizing the analysis. A profile
// missing weight or height is treated identically to no profile at all.
type Profile struct {
	WeightKg        float64
	HeightCm        float64
	AgeYears        float64
	Gender          string
	ActivityLevel   string
	Goal            string
	TargetWeightKg  float64
	TargetMuscleKg  float64
	TimeframeMonths float64
	StartDate       string
	EndDate         string
}

const defaultAgeYears = 30

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

const defaultActivityMultiplier = 1.5

// Present reports whether the profile carries enough data for
// personalization: both weight and height supplied and positive.
func (p *Profile) Present() bool {
	return p != nil && p.WeightKg > 0 && p.HeightCm > 0
}

// DailyEnergyNeed computes the user's maintenance calories from the
// Mifflin-St Jeor BMR formula and an activity multiplier, rounded to the
// nearest whole calorie. The second return value is false when the profile
// is absent or incomplete.
func DailyEnergyNeed(p *Profile) (int, bool) {
	if !p.Present() {
		return 0, false
	}

	age := p.AgeYears
	if age == 0 {
		age = defaultAgeYears
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*age
	switch p.Gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}

	return int(math.Round(bmr * multiplier)), true
}

// GoalLabel returns the Finnish label for the profile's dietary goal, used
// in both prompts and narratives.
func (p *Profile) GoalLabel() string {
	switch p.Goal {
	case "lose":
		return "laihdutus"
	case "gain":
		return "lihasmassan kasvu"
	default:
		return "ylläpito"
	}
}
