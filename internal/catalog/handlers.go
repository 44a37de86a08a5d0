package catalog

import (
	"encoding/json"
	"net/http"
)

// FoodsResponse is the list response of catalog records.
type FoodsResponse struct {
	Foods []FoodRecord `json:"foods"`
}

// Handler serves the read-only food catalog
type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// HandleList handles GET /v1/foods with optional ?query= filtering
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	foods := h.catalog.Search(query)
	if foods == nil {
		foods = []FoodRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FoodsResponse{Foods: foods})
}

// HandleGet handles GET /v1/foods/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	record, ok := h.catalog.ByID(r.PathValue("id"))
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "food_not_found",
				"message": "Food not found",
			},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
