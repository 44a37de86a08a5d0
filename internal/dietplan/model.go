package dietplan

import "github.com/google/uuid"

// The seven weekday keys of a weekly plan, in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// The seven fixed meal slots of a day, in serving order. The set is closed:
// there are no dynamic slots.
var Slots = []string{
	"earlyMorning", "breakfast", "midMorning", "lunch", "evening", "dinner", "bedtime",
}

// DietEntry is one food placed in a meal slot. An entry is owned by exactly
// one (day, slot) pair at a time; moving it transfers ownership.
type DietEntry struct {
	ID       string `json:"id"`
	FoodID   string `json:"food_id"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// DayPlan maps each of the seven slot keys to its ordered entry list.
// A well-formed day has all seven keys present, possibly empty.
type DayPlan map[string][]DietEntry

// WeeklyPlan maps each of the seven weekday keys to a DayPlan.
// Shape is fixed; only slot contents vary.
type WeeklyPlan map[string]DayPlan

// NewEntryID returns a fresh globally unique entry id.
func NewEntryID() string {
	return uuid.New().String()
}

// IsWeekday reports whether day is one of the seven fixed weekday keys.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// IsSlot reports whether slot is one of the seven fixed slot keys.
func IsSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// NewEmptyDay returns a DayPlan with all seven slots present and empty.
func NewEmptyDay() DayPlan {
	day := make(DayPlan, len(Slots))
	for _, s := range Slots {
		day[s] = []DietEntry{}
	}
	return day
}

// NewEmptyPlan returns a WeeklyPlan with the full 7x7 shape and no entries.
func NewEmptyPlan() WeeklyPlan {
	plan := make(WeeklyPlan, len(Weekdays))
	for _, d := range Weekdays {
		plan[d] = NewEmptyDay()
	}
	return plan
}

// Normalize repairs an externally supplied plan to the fixed 7x7 shape:
// missing days and slots are added empty, unknown keys are discarded, and
// entries without an id receive a fresh one. The input is not modified.
func Normalize(in WeeklyPlan) WeeklyPlan {
	out := NewEmptyPlan()
	if in == nil {
		return out
	}
	for _, day := range Weekdays {
		src, ok := in[day]
		if !ok {
			continue
		}
		for _, slot := range Slots {
			entries := src[slot]
			if len(entries) == 0 {
				continue
			}
			dst := make([]DietEntry, 0, len(entries))
			for _, e := range entries {
				if e.ID == "" {
					e.ID = NewEntryID()
				}
				dst = append(dst, e)
			}
			out[day][slot] = dst
		}
	}
	return out
}

// Clone returns a deep copy of the plan.
func Clone(in WeeklyPlan) WeeklyPlan {
	out := make(WeeklyPlan, len(in))
	for day, dayPlan := range in {
		cloned := make(DayPlan, len(dayPlan))
		for slot, entries := range dayPlan {
			copied := make([]DietEntry, len(entries))
			copy(copied, entries)
			cloned[slot] = copied
		}
		out[day] = cloned
	}
	return out
}

// EntryCount returns the total number of entries across the whole plan.
func EntryCount(plan WeeklyPlan) int {
	n := 0
	for _, dayPlan := range plan {
		for _, entries := range dayPlan {
			n += len(entries)
		}
	}
	return n
}

// IsWellFormed reports whether the plan has exactly the seven weekday keys,
// each with exactly the seven slot keys.
func IsWellFormed(plan WeeklyPlan) bool {
	if len(plan) != len(Weekdays) {
		return false
	}
	for _, day := range Weekdays {
		dayPlan, ok := plan[day]
		if !ok || len(dayPlan) != len(Slots) {
			return false
		}
		for _, slot := range Slots {
			if _, ok := dayPlan[slot]; !ok {
				return false
			}
		}
	}
	return true
}
