package models

// UserProfile is the locally stored health profile. Every field is optional;
// zero values mean "not provided" and downstream calculators degrade to 0
// instead of erroring.
type UserProfile struct {
	Gender        string   `json:"gender"`        // male / female
	Age           int      `json:"age"`           // years
	Height        float64  `json:"height"`        // cm
	Weight        float64  `json:"weight"`        // kg
	HealthTags    []string `json:"healthTags"`    // hypertension, hyperlipidemia, diabetes, gout
	Allergens     []string `json:"allergens"`     // seafood, peanut, milk, egg, wheat, soy
	ActivityLevel string   `json:"activityLevel"` // sedentary / light / moderate / active / veryActive
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}
