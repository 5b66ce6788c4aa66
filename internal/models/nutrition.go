package models

// Nutrition is the macro breakdown the model attaches to a recipe or meal.
// Fields the model omits unmarshal to 0, so sums never see missing values.
type Nutrition struct {
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Calories float64 `json:"calories"` // kcal
}
