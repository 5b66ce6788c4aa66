// Package nutrition holds the client-side numeric core: meal aggregation
// against daily reference intake, and the BMI/BMR/TDEE calculators.
package nutrition

import (
	"math"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

// DailyReference is the adult daily reference intake used for percentage bars.
var DailyReference = models.Nutrition{
	Protein:  65,   // g
	Carbs:    300,  // g
	Fat:      60,   // g
	Calories: 2000, // kcal
}

// Percentages are display values: round(100*total/reference) clamped to
// [0,100]. The underlying totals are never clamped.
type Percentages struct {
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Calories int `json:"calories"`
}

// Summary pairs the raw totals with their reference percentages.
type Summary struct {
	Totals      models.Nutrition `json:"totals"`
	Percentages Percentages      `json:"percentages"`
}

// Aggregate sums the given nutrition records and derives reference
// percentages. Nil entries (records the model returned without nutrition)
// are skipped. The sum is commutative, so the result is independent of input
// order and stable under re-aggregation.
func Aggregate(records []*models.Nutrition) Summary {
	var totals models.Nutrition
	for _, r := range records {
		if r == nil {
			continue
		}
		totals.Protein += r.Protein
		totals.Carbs += r.Carbs
		totals.Fat += r.Fat
		totals.Calories += r.Calories
	}

	return Summary{
		Totals: totals,
		Percentages: Percentages{
			Protein:  percentOf(totals.Protein, DailyReference.Protein),
			Carbs:    percentOf(totals.Carbs, DailyReference.Carbs),
			Fat:      percentOf(totals.Fat, DailyReference.Fat),
			Calories: percentOf(totals.Calories, DailyReference.Calories),
		},
	}
}

func percentOf(total, reference float64) int {
	pct := int(math.Round(total / reference * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
