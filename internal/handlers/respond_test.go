package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advanced-ai/internal/middleware"
	"advanced-ai/internal/models"
)

// ─── JSON Response Tests ───

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusOK, models.ChatResponse{Response: "Success"})

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", rr.Header().Get("Content-Type"))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["response"] != "Success" {
		t.Errorf("Expected response 'Success', got %v", result["response"])
	}
}

func TestErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Invalid input", map[string]string{"messages": "is required"}, req))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var result models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %q", result.Error.Code)
	}
	if result.Error.RequestID != "req-123" {
		t.Errorf("Expected request id req-123, got %q", result.Error.RequestID)
	}
	if result.Error.Fields["messages"] != "is required" {
		t.Errorf("Expected messages field error, got %v", result.Error.Fields)
	}
}
