package dietplan

import (
	"context"
	"errors"
	"testing"

	"github.com/ayursetu/ayur-hub/internal/catalog"
)

func editorCatalog() *catalog.Catalog {
	return catalog.New([]catalog.FoodRecord{
		{ID: "oatmeal", Name: "Oatmeal", Category: "grains"},
		{ID: "green_tea", Name: "Green Tea", Category: "beverages"},
	})
}

func TestEditor_AddFoodUsesSelectedDayAndDefaults(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	e.SelectDay("Wednesday")
	e.SetSearchQuery("oat")

	food := e.SearchResults()[0]
	entry, err := e.AddFood(food, "breakfast", "")
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	if entry.Quantity != DefaultQuantity {
		t.Errorf("quantity = %q, want %q", entry.Quantity, DefaultQuantity)
	}
	if len(e.Store().Plan()["Wednesday"]["breakfast"]) != 1 {
		t.Error("entry must land on the selected day")
	}
	if len(e.SearchResults()) != 2 {
		t.Error("search query must reset after adding")
	}
}

func TestEditor_SelectDayIgnoresUnknown(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	e.SelectDay("Caturday")
	if e.SelectedDay() != "Monday" {
		t.Errorf("selected day = %q, want Monday", e.SelectedDay())
	}
}

func TestEditor_DragDrop(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	food, _ := e.catalog.ByID("oatmeal")
	entry, _ := e.AddFood(food, "breakfast", "1 bowl")

	e.BeginDrag(entry.ID)
	e.DragOver("dinner")
	if e.DragOverSlot() != "dinner" {
		t.Error("drag-over must record the hover target")
	}
	// Hovering has no plan side effect.
	if len(e.Store().Plan()["Monday"]["dinner"]) != 0 {
		t.Error("drag-over must not move anything")
	}

	e.Drop("dinner")
	if len(e.Store().Plan()["Monday"]["dinner"]) != 1 {
		t.Error("drop must move the entry")
	}
	if e.DragOverSlot() != "" {
		t.Error("drop must clear drag state")
	}

	// Dropping with no drag in progress is a no-op.
	e.Drop("lunch")
	if len(e.Store().Plan()["Monday"]["dinner"]) != 1 {
		t.Error("stray drop must not move entries")
	}
}

func TestEditor_EditFlow(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	food, _ := e.catalog.ByID("oatmeal")
	entry, _ := e.AddFood(food, "breakfast", "1 bowl")

	if !e.BeginEdit(entry.ID) {
		t.Fatal("BeginEdit must find the entry")
	}
	e.SetBufferNotes("add honey")

	// The buffer is a copy: the plan stays untouched until confirm.
	if got := e.Store().Plan()["Monday"]["breakfast"][0].Notes; got != "" {
		t.Errorf("plan mutated before confirm: %q", got)
	}

	e.ConfirmEdit()
	got := e.Store().Plan()["Monday"]["breakfast"][0]
	if got.Notes != "add honey" || got.Quantity != "1 bowl" {
		t.Errorf("confirm result: %+v", got)
	}
	if e.EditBuffer() != nil {
		t.Error("buffer must be cleared after confirm")
	}
}

func TestEditor_ConfirmAfterRemoveIsSilent(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	food, _ := e.catalog.ByID("oatmeal")
	entry, _ := e.AddFood(food, "breakfast", "1 bowl")

	e.BeginEdit(entry.ID)
	e.RemoveEntry("breakfast", entry.ID)
	e.ConfirmEdit() // must not panic or resurrect the entry

	if EntryCount(e.Store().Plan()) != 0 {
		t.Error("confirm must not resurrect a removed entry")
	}
}

func TestEditor_GenerateReplacesPlan(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)

	generated := NewEmptyPlan()
	generated["Monday"]["breakfast"] = []DietEntry{{ID: NewEntryID(), FoodID: "oatmeal", Quantity: "1 bowl"}}

	err := e.Generate(context.Background(), func(ctx context.Context) (WeeklyPlan, error) {
		return generated, nil
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(e.Store().Plan()["Monday"]["breakfast"]) != 1 {
		t.Error("generated plan must replace the store contents")
	}
	if e.Generating() {
		t.Error("in-flight flag must clear after success")
	}
}

func TestEditor_GenerateRejectsOverlap(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)

	var inner error
	err := e.Generate(context.Background(), func(ctx context.Context) (WeeklyPlan, error) {
		inner = e.Generate(ctx, func(context.Context) (WeeklyPlan, error) {
			return NewEmptyPlan(), nil
		})
		return NewEmptyPlan(), nil
	})
	if err != nil {
		t.Fatalf("outer Generate: %v", err)
	}
	if !errors.Is(inner, ErrGenerationInFlight) {
		t.Errorf("overlapping Generate error = %v, want ErrGenerationInFlight", inner)
	}
}

func TestEditor_GenerateFailureKeepsPlan(t *testing.T) {
	e := NewEditor(nil, editorCatalog(), nil)
	food, _ := e.catalog.ByID("oatmeal")
	e.AddFood(food, "breakfast", "1 bowl")

	err := e.Generate(context.Background(), func(ctx context.Context) (WeeklyPlan, error) {
		return nil, errors.New("upstream down")
	})
	if err == nil {
		t.Fatal("expected the generation error to propagate")
	}
	if EntryCount(e.Store().Plan()) != 1 {
		t.Error("a failed generation must leave the plan untouched")
	}
	if e.Generating() {
		t.Error("in-flight flag must clear after failure so the action can be retried")
	}
}

func TestEditor_SaveHandsSnapshot(t *testing.T) {
	var saved WeeklyPlan
	e := NewEditor(nil, editorCatalog(), func(p WeeklyPlan) { saved = p })
	food, _ := e.catalog.ByID("oatmeal")
	e.AddFood(food, "breakfast", "1 bowl")

	e.Save()
	if saved == nil || EntryCount(saved) != 1 {
		t.Fatal("save callback must receive the current plan")
	}

	// The callback holds a snapshot, not the live structure.
	e.AddFood(food, "lunch", "1 bowl")
	if EntryCount(saved) != 1 {
		t.Error("saved plan must be isolated from later edits")
	}
}
