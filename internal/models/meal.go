package models

import "time"

// MealRecord is one logged meal inside a calendar-date bucket. ID is derived
// from the creation timestamp by storage; records are never updated in place.
type MealRecord struct {
	ID          string    `json:"id"`
	MealType    string    `json:"mealType"` // breakfast / lunch / dinner / snack
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Weight      float64   `json:"weight"`   // g
	Calories    float64   `json:"calories"` // kcal
	Protein     float64   `json:"protein"`  // g
	Carbs       float64   `json:"carbs"`    // g
	Fat         float64   `json:"fat"`      // g
	HealthLevel string    `json:"healthLevel"` // green / yellow / red
	Advice      string    `json:"advice"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Nutrition collects the record's macro fields for aggregation.
func (m MealRecord) Nutrition() Nutrition {
	return Nutrition{
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Calories: m.Calories,
	}
}
