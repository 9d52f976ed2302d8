package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type createRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid body decodes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Lunch"}`))
		rec := httptest.NewRecorder()

		parsed, ok := ValidateRequest[createRequest](rec, req)
		if !ok {
			t.Fatalf("expected success, got %d: %s", rec.Code, rec.Body.String())
		}
		if parsed.Name != "Lunch" {
			t.Fatalf("unexpected parse result %+v", parsed)
		}
	})

	t.Run("invalid json is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": `))
		rec := httptest.NewRecorder()

		if _, ok := ValidateRequest[createRequest](rec, req); ok {
			t.Fatal("expected failure")
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("failed validation names the json field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email": "not-an-email"}`))
		rec := httptest.NewRecorder()

		if _, ok := ValidateRequest[createRequest](rec, req); ok {
			t.Fatal("expected failure")
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"name"`) || !strings.Contains(body, `"email"`) {
			t.Fatalf("field map missing json names: %s", body)
		}
	})
}

func TestFormatValidationErrors(t *testing.T) {
	err := Validate(&createRequest{Name: strings.Repeat("x", 200)})
	fields := FormatValidationErrors(err)
	if fields["name"] != "Maximum length is 100" {
		t.Fatalf("unexpected message %q", fields["name"])
	}
}
