// Package reconcile converts freeform generation output into well-formed
// weekly diet plans. The upstream service returns natural-language text with
// only a probabilistic tendency to follow the requested JSON schema, so
// nothing about the input's shape is trusted: the reconciler is a total
// function from any string to a structurally valid plan.
package reconcile

import (
	"encoding/json"
	"strings"

	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/dietplan"
)

// foodRef is one food reference as emitted by the generation service.
type foodRef struct {
	FoodName string `json:"foodName"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes"`
}

// planDraft is the recognized wire shape: weekday -> slot -> references.
type planDraft map[string]map[string][]foodRef

// Reconciler resolves generation output against an injected read-only
// catalog.
type Reconciler struct {
	catalog *catalog.Catalog
}

// New creates a reconciler over the given catalog.
func New(cat *catalog.Catalog) *Reconciler {
	return &Reconciler{catalog: cat}
}

// WeeklyPlan converts a payload into a complete weekly plan. Unmatched food
// references are never dropped silently: they are substituted with the
// catalog's fallback record and the original name is folded into the notes
// so the discrepancy stays visible. When the payload cannot be parsed, or
// parses to zero populated slots, the deterministic fallback plan is
// returned instead.
func (r *Reconciler) WeeklyPlan(payload string) dietplan.WeeklyPlan {
	draft, ok := parseDraft(payload)
	if !ok {
		return r.FallbackPlan()
	}

	plan := dietplan.NewEmptyPlan()
	populated := 0
	for _, day := range dietplan.Weekdays {
		slots, ok := draft[day]
		if !ok {
			continue
		}
		for _, slot := range dietplan.Slots {
			refs := slots[slot]
			if len(refs) == 0 {
				continue
			}
			entries := make([]dietplan.DietEntry, 0, len(refs))
			for _, ref := range refs {
				entries = append(entries, r.resolve(ref))
			}
			plan[day][slot] = entries
			populated++
		}
	}

	if populated == 0 {
		return r.FallbackPlan()
	}
	return plan
}

// MealSuggestions converts a payload expected to hold a JSON array of food
// references into diet entries for a single slot. Unlike the weekly path,
// unmatched references are skipped and any parse failure yields an empty
// list: a suggestion that cannot be resolved has nothing to attach to.
func (r *Reconciler) MealSuggestions(payload string) []dietplan.DietEntry {
	slice := extractJSON(payload, '[', ']')

	var refs []foodRef
	if err := json.Unmarshal([]byte(slice), &refs); err != nil {
		return nil
	}

	var entries []dietplan.DietEntry
	for _, ref := range refs {
		food, ok := r.catalog.Match(ref.FoodName)
		if !ok {
			continue
		}
		entries = append(entries, dietplan.DietEntry{
			ID:       dietplan.NewEntryID(),
			FoodID:   food.ID,
			Quantity: orDefault(ref.Quantity),
			Notes:    ref.Notes,
		})
	}
	return entries
}

// resolve turns one reference into an entry, substituting the fallback
// record when no catalog match exists.
func (r *Reconciler) resolve(ref foodRef) dietplan.DietEntry {
	food, ok := r.catalog.Match(ref.FoodName)
	if ok {
		return dietplan.DietEntry{
			ID:       dietplan.NewEntryID(),
			FoodID:   food.ID,
			Quantity: orDefault(ref.Quantity),
			Notes:    ref.Notes,
		}
	}

	notes := ref.FoodName
	if ref.Notes != "" {
		notes += " - " + ref.Notes
	}
	return dietplan.DietEntry{
		ID:       dietplan.NewEntryID(),
		FoodID:   r.catalog.Fallback().ID,
		Quantity: orDefault(ref.Quantity),
		Notes:    notes,
	}
}

// parseDraft attempts to recognize a weekly-plan JSON object in the
// payload. The second return is the Recognized/Unrecognized tag: callers
// must not touch the draft when it is false.
func parseDraft(payload string) (planDraft, bool) {
	slice := extractJSON(payload, '{', '}')

	var draft planDraft
	if err := json.Unmarshal([]byte(slice), &draft); err != nil {
		return nil, false
	}
	if len(draft) == 0 {
		return nil, false
	}
	return draft, true
}

// extractJSON strips the prose around an embedded JSON value. A fenced
// code block (optionally tagged "json") wins; otherwise the slice between
// the first opening and last closing delimiter is used.
func extractJSON(payload string, open, close byte) string {
	s := strings.TrimSpace(payload)

	if inner, ok := extractFenced(s); ok {
		s = inner
	}

	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// extractFenced returns the contents of the first triple-backtick block.
func extractFenced(s string) (string, bool) {
	const fence = "```"
	start := strings.Index(s, fence)
	if start == -1 {
		return "", false
	}
	rest := s[start+len(fence):]
	rest = strings.TrimPrefix(rest, "json")

	end := strings.Index(rest, fence)
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func orDefault(quantity string) string {
	if strings.TrimSpace(quantity) == "" {
		return dietplan.DefaultQuantity
	}
	return quantity
}
