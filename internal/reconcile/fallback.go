package reconcile

import "github.com/ayursetu/ayur-hub/internal/dietplan"

// fallbackMeals is the fixed minimal menu applied to every day when
// reconciliation fails entirely. Names are resolved against the catalog at
// build time; anything that somehow fails to resolve substitutes the
// fallback record like any other unmatched reference.
var fallbackMeals = map[string][]foodRef{
	"earlyMorning": {{FoodName: "Warm Water with Lemon", Quantity: "1 glass"}},
	"breakfast":    {{FoodName: "Oatmeal", Quantity: "1 bowl"}},
	"midMorning":   {{FoodName: "Green Tea", Quantity: "1 cup"}},
	"lunch": {
		{FoodName: "Basmati Rice", Quantity: "1 cup"},
		{FoodName: "Dal (Lentils)", Quantity: "1 bowl"},
	},
	"evening": {{FoodName: "Herbal Tea", Quantity: "1 cup"}},
	"dinner":  {{FoodName: "Vegetable Soup", Quantity: "1 bowl"}},
	"bedtime": {{FoodName: "Warm Milk with Turmeric", Quantity: "1 glass"}},
}

// FallbackPlan produces the deterministic hand-authored plan used when the
// generation output is unusable. The result is always well-formed and
// generic rather than personalized, which is the only observable effect of
// the failure.
func (r *Reconciler) FallbackPlan() dietplan.WeeklyPlan {
	plan := dietplan.NewEmptyPlan()
	for _, day := range dietplan.Weekdays {
		for _, slot := range dietplan.Slots {
			refs := fallbackMeals[slot]
			entries := make([]dietplan.DietEntry, 0, len(refs))
			for _, ref := range refs {
				ref.Notes = "AI-suggested meal"
				entries = append(entries, r.resolve(ref))
			}
			plan[day][slot] = entries
		}
	}
	return plan
}
