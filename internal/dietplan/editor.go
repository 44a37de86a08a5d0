package dietplan

import (
	"context"
	"errors"

	"github.com/ayursetu/ayur-hub/internal/catalog"
)

// DefaultQuantity is used when an entry is added without an explicit amount.
const DefaultQuantity = "1 serving"

// ErrGenerationInFlight is returned when a plan generation is requested
// while a previous one has not resolved yet. Only one generation may be
// in flight per editing session.
var ErrGenerationInFlight = errors.New("plan generation already in flight")

// GenerateFunc produces a complete weekly plan, typically by calling an
// external generation service and reconciling its output.
type GenerateFunc func(ctx context.Context) (WeeklyPlan, error)

// SaveFunc receives the completed plan on explicit save. Durability is
// entirely the callback's concern.
type SaveFunc func(WeeklyPlan)

// Editor mediates between UI gestures and the plan store, and owns the
// transient per-session state that is never persisted: the selected day,
// the search query, the drag source and hover target, and the in-progress
// edit buffer.
//
// An editor belongs to a single editing session and is not safe for
// concurrent use; all mutations run to completion inside one event.
type Editor struct {
	store   *Store
	catalog *catalog.Catalog
	onSave  SaveFunc

	selectedDay    string
	searchQuery    string
	draggedEntryID string
	dragOverSlot   string
	editBuffer     *DietEntry

	generating bool
}

// NewEditor creates an editor over an initial plan (nil starts empty).
// The catalog is injected read-only; the save callback may be nil.
func NewEditor(initial WeeklyPlan, cat *catalog.Catalog, onSave SaveFunc) *Editor {
	return &Editor{
		store:       NewStore(initial),
		catalog:     cat,
		onSave:      onSave,
		selectedDay: Weekdays[0],
	}
}

// Store exposes the underlying plan store.
func (e *Editor) Store() *Store {
	return e.store
}

// SelectedDay returns the day the editor is focused on.
func (e *Editor) SelectedDay() string {
	return e.selectedDay
}

// SelectDay switches the active day. Unknown days are ignored.
func (e *Editor) SelectDay(day string) {
	if IsWeekday(day) {
		e.selectedDay = day
	}
}

// SetSearchQuery records the current query; results are recomputed
// synchronously on every call.
func (e *Editor) SetSearchQuery(q string) {
	e.searchQuery = q
}

// SearchResults filters the catalog by the current query.
func (e *Editor) SearchResults() []catalog.FoodRecord {
	return e.catalog.Search(e.searchQuery)
}

// AddFood appends a food to the given slot of the active day and resets
// the search query, mirroring the add-dialog closing.
func (e *Editor) AddFood(food catalog.FoodRecord, slot, quantity string) (DietEntry, error) {
	if quantity == "" {
		quantity = DefaultQuantity
	}
	entry, err := e.store.AddEntry(e.selectedDay, slot, food, quantity)
	if err != nil {
		return DietEntry{}, err
	}
	e.searchQuery = ""
	return entry, nil
}

// RemoveEntry deletes an entry from a slot of the active day.
func (e *Editor) RemoveEntry(slot, entryID string) {
	e.store.RemoveEntry(e.selectedDay, slot, entryID)
}

// BeginDrag records the dragged entry.
func (e *Editor) BeginDrag(entryID string) {
	e.draggedEntryID = entryID
}

// DragOver records the hover target. Highlighting only; no side effect
// on the plan.
func (e *Editor) DragOver(slot string) {
	e.dragOverSlot = slot
}

// DragLeave clears the hover target.
func (e *Editor) DragLeave() {
	e.dragOverSlot = ""
}

// DragOverSlot returns the current hover target, if any.
func (e *Editor) DragOverSlot() string {
	return e.dragOverSlot
}

// Drop moves the dragged entry into the target slot of the active day.
// Dropping onto the source slot is a no-op: same-slot reordering is
// unsupported. The drag state is cleared either way.
func (e *Editor) Drop(targetSlot string) {
	if e.draggedEntryID != "" {
		e.store.MoveEntry(e.selectedDay, e.draggedEntryID, targetSlot)
	}
	e.draggedEntryID = ""
	e.dragOverSlot = ""
}

// BeginEdit opens an edit buffer holding a copy of the target entry.
// Returns false when the id is not present anywhere in the plan.
func (e *Editor) BeginEdit(entryID string) bool {
	_, _, entry, found := e.store.FindEntry(entryID)
	if !found {
		return false
	}
	buf := entry
	e.editBuffer = &buf
	return true
}

// EditBuffer returns the pending edit copy, or nil when no edit is open.
func (e *Editor) EditBuffer() *DietEntry {
	return e.editBuffer
}

// SetBufferQuantity mutates the pending copy only.
func (e *Editor) SetBufferQuantity(q string) {
	if e.editBuffer != nil {
		e.editBuffer.Quantity = q
	}
}

// SetBufferNotes mutates the pending copy only.
func (e *Editor) SetBufferNotes(notes string) {
	if e.editBuffer != nil {
		e.editBuffer.Notes = notes
	}
}

// ConfirmEdit locates the buffered entry by id anywhere in the plan and
// applies the buffered quantity and notes there. Silently discards the
// buffer when the entry has been removed in the meantime.
func (e *Editor) ConfirmEdit() {
	if e.editBuffer == nil {
		return
	}
	buf := *e.editBuffer
	e.editBuffer = nil

	day, slot, _, found := e.store.FindEntry(buf.ID)
	if !found {
		return
	}
	e.store.UpdateEntry(day, slot, buf.ID, EntryPatch{
		Quantity: &buf.Quantity,
		Notes:    &buf.Notes,
	})
}

// CancelEdit discards the pending copy.
func (e *Editor) CancelEdit() {
	e.editBuffer = nil
}

// Generating reports whether a generation request is unresolved.
func (e *Editor) Generating() bool {
	return e.generating
}

// Generate runs a plan generation and replaces the whole plan on success.
// While a request is in flight further calls fail with
// ErrGenerationInFlight; a failure leaves the current plan untouched and
// clears the flag so the action may be retried. No automatic retry.
func (e *Editor) Generate(ctx context.Context, generate GenerateFunc) error {
	if e.generating {
		return ErrGenerationInFlight
	}
	e.generating = true
	defer func() { e.generating = false }()

	plan, err := generate(ctx)
	if err != nil {
		return err
	}
	e.store.Replace(plan)
	return nil
}

// Save hands a snapshot of the current plan to the save callback.
func (e *Editor) Save() {
	if e.onSave != nil {
		e.onSave(e.store.Snapshot())
	}
}
