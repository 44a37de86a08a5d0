package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestHandleList(t *testing.T) {
	handler := NewHandler(Default())

	req := httptest.NewRequest("GET", "/v1/foods", nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp FoodsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Foods) != Default().Len() {
		t.Errorf("expected %d foods, got %d", Default().Len(), len(resp.Foods))
	}
}

func TestHandleList_Query(t *testing.T) {
	handler := NewHandler(Default())

	req := httptest.NewRequest("GET", "/v1/foods?query=rice", nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	var resp FoodsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Foods) == 0 {
		t.Fatal("expected at least one match for rice")
	}
	for _, f := range resp.Foods {
		if !containsFold(f.Name, "rice") && !containsFold(f.Category, "rice") {
			t.Errorf("food %q does not match query", f.Name)
		}
	}
}

func TestHandleGet(t *testing.T) {
	cat := Default()
	handler := NewHandler(cat)
	want := cat.All()[0]

	req := httptest.NewRequest("GET", "/v1/foods/"+want.ID, nil)
	req.SetPathValue("id", want.ID)
	w := httptest.NewRecorder()

	handler.HandleGet(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got FoodRecord
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name {
		t.Errorf("expected %s/%s, got %s/%s", want.ID, want.Name, got.ID, got.Name)
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	handler := NewHandler(Default())

	req := httptest.NewRequest("GET", "/v1/foods/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	handler.HandleGet(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
