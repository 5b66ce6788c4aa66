package models

// Model-derived records. These only live inside one analysis response and are
// never persisted, so their shape follows the prompt templates exactly.

type Ingredient struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Confidence string `json:"confidence"` // 高 / 中 / 低
	Proportion string `json:"proportion"` // 大 / 中 / 小
}

type Recipe struct {
	Name           string     `json:"name"`
	Icon           string     `json:"icon"`
	Time           string     `json:"time"`
	Difficulty     string     `json:"difficulty"` // easy / medium / hard
	DifficultyText string     `json:"difficultyText"`
	Ingredients    []string   `json:"ingredients"`
	Steps          []string   `json:"steps"`
	Nutrition      *Nutrition `json:"nutrition"`
	HealthNote     string     `json:"healthNote,omitempty"`
}

type NutritionTips struct {
	Balance string `json:"balance"`
	Cooking string `json:"cooking"`
	Warning string `json:"warning"`
}

// IngredientAnalysis is the result of the ingredient-recognition task.
type IngredientAnalysis struct {
	Ingredients   []Ingredient  `json:"ingredients"`
	Recipes       []Recipe      `json:"recipes"`
	NutritionTips NutritionTips `json:"nutritionTips"`
}

// DishEstimate is the result of the prepared-dish estimation task.
type DishEstimate struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Weight      float64 `json:"weight"`   // g
	Calories    float64 `json:"calories"` // kcal
	Protein     float64 `json:"protein"`  // g
	Carbs       float64 `json:"carbs"`    // g
	Fat         float64 `json:"fat"`      // g
	HealthLevel string  `json:"healthLevel"` // green / yellow / red
	Advice      string  `json:"advice"`
}

// Scene describes the user's transient state for scenario recommendations.
// Desc is the caller-supplied fallback when ID is not a known scene.
type Scene struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
}

type SceneFood struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Reason string `json:"reason"`
}

// SceneRecommendation is the result of the scenario-recommendation task.
type SceneRecommendation struct {
	Recommended []SceneFood `json:"recommended"`
	Forbidden   []SceneFood `json:"forbidden"`
	Tips        string      `json:"tips"`
}
