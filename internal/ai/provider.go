package ai

import "context"

// DoshaBalance is the three-way constitutional split, in percent.
type DoshaBalance struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// PatientProfile is the slice of patient data embedded in generation
// prompts.
type PatientProfile struct {
	Name             string
	Age              int
	Gender           string
	Prakriti         string
	Dosha            DoshaBalance
	HeightCm         float64
	WeightKg         float64
	BMI              float64
	HealthConditions []string
}

// PlanRequest asks for a full 7-day plan. FoodNames carries the exact
// catalog names the model is constrained to.
type PlanRequest struct {
	Patient   PatientProfile
	FoodNames []string
}

// SuggestionRequest asks for 2-3 foods for a single meal slot.
type SuggestionRequest struct {
	Patient   PatientProfile
	MealLabel string
	Weekday   string
}

// Provider generates diet recommendations. Responses are opaque text,
// expected but not guaranteed to follow the requested JSON schema; the
// reconciler deals with the difference.
type Provider interface {
	GenerateWeeklyPlan(ctx context.Context, req PlanRequest) (string, error)
	SuggestMeals(ctx context.Context, req SuggestionRequest) (string, error)
}
