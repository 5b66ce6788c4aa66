package nutrition

import "math"

// Activity multipliers for the TDEE model. Unrecognized levels fall back to
// light activity.
var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

const defaultActivityMultiplier = 1.375

// BMI returns weight / height² (metric), rounded to one decimal place.
// Missing or non-positive inputs degrade to 0; the caller decides whether 0
// is meaningful or should be hidden.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMR estimates the basal metabolic rate (kcal/day) with the Mifflin-St Jeor
// formula. Any gender value other than "male" takes the female constant.
func BMR(weightKg, heightCm float64, ageYears int, gender string) int {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		return int(math.Round(base + 5))
	}
	return int(math.Round(base - 161))
}

// TDEE scales the basal rate by the activity multiplier.
func TDEE(bmr int, activityLevel string) int {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	return int(math.Round(float64(bmr) * multiplier))
}
