package handler

import (
	"fmt"
	"net/http"
	"testing"
)

func TestComplianceCreateDefaults(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/compliance", map[string]any{
		"title":    "Annual license renewal",
		"category": "license",
		"due_date": "2026-12-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != "pending" {
		t.Errorf("Expected default status pending, got %v", body["status"])
	}
	if body["due_date"] != "2026-12-01" {
		t.Errorf("Expected due_date 2026-12-01, got %v", body["due_date"])
	}
}

func TestComplianceCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/compliance", map[string]any{
		"title": "x", "category": "audit",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for unknown category, got %d", w.Code)
	}

	w = doJSON(t, router, "POST", "/api/v1/compliance", map[string]any{
		"category": "license",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for missing title, got %d", w.Code)
	}
}

func TestComplianceListFilters(t *testing.T) {
	router := newTestRouter(t)

	fixtures := []map[string]any{
		{"title": "a", "category": "license", "status": "compliant"},
		{"title": "b", "category": "regulation", "status": "pending"},
		{"title": "c", "category": "license", "status": "pending"},
	}
	for _, f := range fixtures {
		w := doJSON(t, router, "POST", "/api/v1/compliance", f)
		if w.Code != http.StatusCreated {
			t.Fatalf("Failed to create compliance item: %s", w.Body.String())
		}
	}

	w := doJSON(t, router, "GET", "/api/v1/compliance?status=pending&category=license", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	got := decodeList(t, w)
	if len(got) != 1 || got[0]["title"] != "c" {
		t.Errorf("Expected only item c, got %d items", len(got))
	}

	w = doJSON(t, router, "GET", "/api/v1/compliance?status=overdue", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown status filter, got %d", w.Code)
	}
}

func TestComplianceUpdateAndDelete(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/compliance", map[string]any{
		"title": "GDPR review", "category": "regulation",
	})
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/v1/compliance/%v", id), map[string]any{
		"status": "compliant",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["status"] != "compliant" {
		t.Errorf("Expected status compliant, got %v", body["status"])
	}

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/v1/compliance/%v", id), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/compliance/%v", id), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 after delete, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if want := fmt.Sprintf("Compliance item %v not found", id); body["error"] != want {
		t.Errorf("Expected %q, got %v", want, body["error"])
	}
}
