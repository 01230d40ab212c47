package handler

import (
	"fmt"
	"net/http"
	"testing"
)

func TestClauseCreateDanglingContract(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
		"contract_id": 4242, "type": "payment", "text": "Net 30.",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["error"] != "Contract 4242 not found" {
		t.Errorf("Expected 'Contract 4242 not found', got %v", body["error"])
	}
}

func TestClauseCreateDefaults(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/contracts", map[string]any{
		"title": "T", "type": "nda", "counterparty": "X",
	})
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
		"contract_id": id, "type": "confidentiality", "text": "Keep it secret.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["risk_level"] != "low" {
		t.Errorf("Expected default risk_level low, got %v", body["risk_level"])
	}
}

func TestClauseCreateInvalidEnum(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/contracts", map[string]any{
		"title": "T", "type": "nda", "counterparty": "X",
	})
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
		"contract_id": id, "type": "arbitration", "text": "x",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for unknown clause type, got %d", w.Code)
	}

	w = doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
		"contract_id": id, "type": "payment", "text": "x", "risk_level": "critical",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for unknown risk level, got %d", w.Code)
	}
}

func TestClauseListRiskLevelFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/contracts", map[string]any{
		"title": "T", "type": "nda", "counterparty": "X",
	})
	id := decodeBody(t, w)["id"].(float64)

	for _, level := range []string{"low", "high", "high"} {
		w = doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
			"contract_id": id, "type": "other", "text": "x", "risk_level": level,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("Failed to create clause: %s", w.Body.String())
		}
	}

	w = doJSON(t, router, "GET", "/api/v1/clauses?risk_level=high", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got := decodeList(t, w); len(got) != 2 {
		t.Errorf("Expected 2 high-risk clauses, got %d", len(got))
	}

	w = doJSON(t, router, "GET", "/api/v1/clauses?risk_level=severe", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad risk_level filter, got %d", w.Code)
	}
}

func TestClauseUpdateReassignToDanglingContract(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/contracts", map[string]any{
		"title": "T", "type": "nda", "counterparty": "X",
	})
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, "POST", "/api/v1/clauses", map[string]any{
		"contract_id": id, "type": "other", "text": "x",
	})
	clauseID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/v1/clauses/%v", clauseID), map[string]any{
		"contract_id": 31337,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for dangling contract_id, got %d", w.Code)
	}
}
