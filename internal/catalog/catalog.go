package catalog

import "strings"

// AyurvedicProperties describe how a food acts on the constitution.
type AyurvedicProperties struct {
	Tastes  []string `json:"tastes"`
	Effect  string   `json:"effect"`  // Vata | Pitta | Kapha
	Potency string   `json:"potency"` // Heating | Cooling | Neutral
}

// Nutrition holds per-serving nutritional values.
type Nutrition struct {
	Calories     float64  `json:"calories"`
	ProteinG     float64  `json:"protein_g"`
	CarbsG       float64  `json:"carbs_g"`
	FiberG       float64  `json:"fiber_g"`
	KeyNutrients []string `json:"key_nutrients"`
}

// FoodRecord is one entry of the reference food database.
type FoodRecord struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Category       string              `json:"category"`
	Emoji          string              `json:"emoji"`
	Ayurvedic      AyurvedicProperties `json:"ayurvedic_properties"`
	Nutrition      Nutrition           `json:"nutrition"`
	HealthBenefits []string            `json:"health_benefits"`
	Description    string              `json:"description"`
}

// Catalog is an immutable, injectable view over the food database.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	records []FoodRecord
	byID    map[string]*FoodRecord
}

// New builds a catalog from the given records. Records with a duplicate
// or empty id are skipped: the catalog contract is unique non-empty ids.
func New(records []FoodRecord) *Catalog {
	c := &Catalog{
		records: make([]FoodRecord, 0, len(records)),
		byID:    make(map[string]*FoodRecord, len(records)),
	}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		c.records = append(c.records, r)
	}
	// Point into the slice only once it has stopped growing.
	for i := range c.records {
		c.byID[c.records[i].ID] = &c.records[i]
	}
	return c
}

// Default returns a catalog over the built-in reference database.
func Default() *Catalog {
	return New(builtinFoods)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every record in catalog order.
func (c *Catalog) All() []FoodRecord {
	out := make([]FoodRecord, len(c.records))
	copy(out, c.records)
	return out
}

// ByID returns the record with the given id.
func (c *Catalog) ByID(id string) (FoodRecord, bool) {
	r, ok := c.byID[id]
	if !ok {
		return FoodRecord{}, false
	}
	return *r, true
}

// Search filters the catalog by case-insensitive substring match against
// the record name OR category. An empty query returns all records.
func (c *Catalog) Search(query string) []FoodRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	var out []FoodRecord
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Category), q) {
			out = append(out, r)
		}
	}
	return out
}

// Match resolves a freeform food name against the catalog using a
// bidirectional case-insensitive substring match: the catalog name may
// contain the reference, or the reference may contain the catalog name.
// The first record in catalog order wins.
func (c *Catalog) Match(name string) (FoodRecord, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return FoodRecord{}, false
	}

	for _, r := range c.records {
		rn := strings.ToLower(r.Name)
		if strings.Contains(rn, n) || strings.Contains(n, rn) {
			return r, true
		}
	}
	return FoodRecord{}, false
}

// Fallback returns the designated substitute record used when an external
// food reference cannot be matched. By convention this is the first record.
func (c *Catalog) Fallback() FoodRecord {
	if len(c.records) == 0 {
		return FoodRecord{}
	}
	return c.records[0]
}

// Names returns the exact names of every record, used to constrain
// generation prompts to known foods.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.Name
	}
	return out
}
