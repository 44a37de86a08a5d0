package ai

import (
	"context"
	"encoding/json"

	"github.com/ayursetu/ayur-hub/internal/dietplan"
)

// MockProvider returns deterministic, well-formed payloads without any
// network call. Used in local development and tests.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// mockMenu rotates a small set of known catalog names across the week so
// generated plans look varied while always resolving.
var mockMenu = map[string][]map[string]string{
	"earlyMorning": {
		{"foodName": "Warm Water with Lemon", "quantity": "1 glass", "notes": "cleansing"},
		{"foodName": "Coconut Water", "quantity": "1 glass", "notes": "electrolytes"},
	},
	"breakfast": {
		{"foodName": "Oatmeal", "quantity": "1 bowl", "notes": "with ghee"},
		{"foodName": "Idli", "quantity": "3 pieces", "notes": "steamed"},
	},
	"midMorning": {
		{"foodName": "Green Tea", "quantity": "1 cup", "notes": "antioxidants"},
		{"foodName": "Buttermilk", "quantity": "1 glass", "notes": "cooling"},
	},
	"lunch": {
		{"foodName": "Basmati Rice", "quantity": "1 cup", "notes": "with dal"},
		{"foodName": "Khichdi", "quantity": "1 bowl", "notes": "complete nutrition"},
	},
	"evening": {
		{"foodName": "Herbal Tea", "quantity": "1 cup", "notes": "digestion"},
		{"foodName": "Dates (Khajur)", "quantity": "2 pieces", "notes": "energy"},
	},
	"dinner": {
		{"foodName": "Vegetable Soup", "quantity": "1 bowl", "notes": "light"},
		{"foodName": "Chapati", "quantity": "2 pieces", "notes": "with vegetables"},
	},
	"bedtime": {
		{"foodName": "Warm Milk with Turmeric", "quantity": "1 glass", "notes": "golden milk"},
		{"foodName": "Almonds (Badam)", "quantity": "5 pieces", "notes": "soaked"},
	},
}

func (p *MockProvider) GenerateWeeklyPlan(ctx context.Context, req PlanRequest) (string, error) {
	_ = ctx

	plan := make(map[string]map[string][]map[string]string, len(dietplan.Weekdays))
	for i, day := range dietplan.Weekdays {
		slots := make(map[string][]map[string]string, len(dietplan.Slots))
		for _, slot := range dietplan.Slots {
			options := mockMenu[slot]
			slots[slot] = []map[string]string{options[i%len(options)]}
		}
		plan[day] = slots
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return "", err
	}
	// Wrapped in prose on purpose: downstream parsing must cope with it.
	return "Here is a balanced plan for " + req.Patient.Prakriti + ":\n```json\n" + string(raw) + "\n```", nil
}

func (p *MockProvider) SuggestMeals(ctx context.Context, req SuggestionRequest) (string, error) {
	_ = ctx

	suggestions := []map[string]string{
		{"foodName": "Basmati Rice", "quantity": "1 cup", "notes": "good for digestion"},
		{"foodName": "Dal (Lentils)", "quantity": "1 bowl", "notes": "protein"},
	}
	if req.Patient.Dosha.Pitta >= req.Patient.Dosha.Vata && req.Patient.Dosha.Pitta >= req.Patient.Dosha.Kapha {
		suggestions = []map[string]string{
			{"foodName": "Coconut Water", "quantity": "1 glass", "notes": "cooling"},
			{"foodName": "Cucumber (Kheera)", "quantity": "1 cup", "notes": "pacifies Pitta"},
		}
	}

	raw, err := json.Marshal(suggestions)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
