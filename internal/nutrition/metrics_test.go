package nutrition

import "testing"

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"reference adult", 70, 175, 22.9},
		{"one decimal rounding", 80, 180, 24.7},
		{"missing weight", 0, 175, 0},
		{"missing height", 70, 0, 0},
		{"negative input", -70, 175, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BMI(tt.weightKg, tt.heightCm); got != tt.want {
				t.Errorf("BMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		gender   string
		want     int
	}{
		// base = 10*70 + 6.25*175 - 5*30 = 1643.75
		{"male", 70, 175, 30, "male", 1649},
		{"female", 60, 165, 25, "female", 1345},
		{"unknown gender uses female constant", 60, 165, 25, "", 1345},
		{"missing weight", 0, 175, 30, "male", 0},
		{"missing height", 70, 0, 30, "male", 0},
		{"missing age", 70, 175, 0, "male", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BMR(tt.weightKg, tt.heightCm, tt.age, tt.gender); got != tt.want {
				t.Errorf("BMR(%v, %v, %v, %q) = %v, want %v", tt.weightKg, tt.heightCm, tt.age, tt.gender, got, tt.want)
			}
		})
	}
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		name          string
		bmr           int
		activityLevel string
		want          int
	}{
		{"sedentary", 1644, "sedentary", 1973},
		{"light", 1644, "light", 2261},
		{"moderate", 1644, "moderate", 2548},
		{"active", 1644, "active", 2836},
		{"very active", 1644, "veryActive", 3124},
		{"unknown level defaults to light", 1644, "couch", 2261},
		{"empty level defaults to light", 1644, "", 2261},
		{"zero bmr", 0, "moderate", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TDEE(tt.bmr, tt.activityLevel); got != tt.want {
				t.Errorf("TDEE(%v, %q) = %v, want %v", tt.bmr, tt.activityLevel, got, tt.want)
			}
		})
	}
}
