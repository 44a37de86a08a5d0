package dietplan

import (
	"fmt"

	"github.com/ayursetu/ayur-hub/internal/catalog"
)

// Store owns a WeeklyPlan for the lifetime of one editing session and
// exposes its mutations. All operations are synchronous and in-memory;
// durability is the caller's concern.
type Store struct {
	plan WeeklyPlan
}

// NewStore creates a store around an initial plan. A nil initial plan
// starts empty; any supplied plan is normalized to the fixed 7x7 shape.
func NewStore(initial WeeklyPlan) *Store {
	if initial == nil {
		return &Store{plan: NewEmptyPlan()}
	}
	return &Store{plan: Normalize(initial)}
}

// Plan returns the current plan. Callers must treat it as read-only;
// use Snapshot for a mutation-safe copy.
func (s *Store) Plan() WeeklyPlan {
	return s.plan
}

// Snapshot returns a deep copy of the current plan.
func (s *Store) Snapshot() WeeklyPlan {
	return Clone(s.plan)
}

// Replace swaps the whole plan, normalizing the replacement.
func (s *Store) Replace(plan WeeklyPlan) {
	s.plan = Normalize(plan)
}

// AddEntry constructs a new entry with a fresh id referencing the given
// food and appends it to the end of the named slot. The same food may
// appear any number of times in a slot or across slots.
func (s *Store) AddEntry(day, slot string, food catalog.FoodRecord, quantity string) (DietEntry, error) {
	if !IsWeekday(day) {
		return DietEntry{}, fmt.Errorf("unknown day %q", day)
	}
	if !IsSlot(slot) {
		return DietEntry{}, fmt.Errorf("unknown meal slot %q", slot)
	}
	if food.ID == "" {
		return DietEntry{}, fmt.Errorf("food is required")
	}

	entry := DietEntry{
		ID:       NewEntryID(),
		FoodID:   food.ID,
		Quantity: quantity,
	}
	s.plan[day][slot] = append(s.plan[day][slot], entry)
	return entry, nil
}

// EntryPatch carries the updatable fields of an entry. Nil fields are
// left untouched.
type EntryPatch struct {
	Quantity *string
	Notes    *string
}

// UpdateEntry applies a field-local patch to the entry with the given id
// in the named slot. If no such entry exists there, the call is a no-op.
func (s *Store) UpdateEntry(day, slot, entryID string, patch EntryPatch) {
	if !IsWeekday(day) || !IsSlot(slot) {
		return
	}
	entries := s.plan[day][slot]
	for i := range entries {
		if entries[i].ID != entryID {
			continue
		}
		if patch.Quantity != nil {
			entries[i].Quantity = *patch.Quantity
		}
		if patch.Notes != nil {
			entries[i].Notes = *patch.Notes
		}
		return
	}
}

// RemoveEntry removes the entry with the given id from the named slot.
// No-op if absent.
func (s *Store) RemoveEntry(day, slot, entryID string) {
	if !IsWeekday(day) || !IsSlot(slot) {
		return
	}
	entries := s.plan[day][slot]
	for i := range entries {
		if entries[i].ID == entryID {
			s.plan[day][slot] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// MoveEntry transfers the entry with the given id from whichever slot of
// the named day currently holds it to the end of the destination slot.
// Moving to the slot the entry already occupies is a no-op, as is moving
// an id that is not found in any slot of that day. After a successful
// move the entry exists in exactly one slot.
func (s *Store) MoveEntry(day, entryID, toSlot string) {
	if !IsWeekday(day) || !IsSlot(toSlot) {
		return
	}

	fromSlot := ""
	var moved DietEntry
	for _, slot := range Slots {
		for _, e := range s.plan[day][slot] {
			if e.ID == entryID {
				fromSlot = slot
				moved = e
				break
			}
		}
		if fromSlot != "" {
			break
		}
	}

	if fromSlot == "" || fromSlot == toSlot {
		return
	}

	s.RemoveEntry(day, fromSlot, entryID)
	s.plan[day][toSlot] = append(s.plan[day][toSlot], moved)
}

// FindEntry scans every day and slot for the first entry with the given
// id. Entry ids are globally unique by construction, so the first match
// is the only one.
func (s *Store) FindEntry(entryID string) (day, slot string, entry DietEntry, found bool) {
	for _, d := range Weekdays {
		for _, sl := range Slots {
			for _, e := range s.plan[d][sl] {
				if e.ID == entryID {
					return d, sl, e, true
				}
			}
		}
	}
	return "", "", DietEntry{}, false
}

// DayEntryCount returns the number of entries across all slots of one day.
func (s *Store) DayEntryCount(day string) int {
	n := 0
	for _, slot := range Slots {
		n += len(s.plan[day][slot])
	}
	return n
}
