package errhttp

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	userdomain "github.com/wheelhouse/wheelhouse/services/user/domain"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/spin"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"set not found", wheeldomain.ErrSetNotFound, http.StatusNotFound},
		{"item not found", wheeldomain.ErrItemNotFound, http.StatusNotFound},
		{"no reorder targets", wheeldomain.ErrNoReorderTargets, http.StatusNotFound},
		{"version conflict", wheeldomain.ErrVersionConflict, http.StatusConflict},
		{"account exists", userdomain.ErrAccountExists, http.StatusConflict},
		{"invalid set name", wheeldomain.ErrInvalidSetName, http.StatusUnprocessableEntity},
		{"invalid item name", wheeldomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"empty wheel", spin.ErrEmptyWheel, http.StatusUnprocessableEntity},
		{"weak password", auth.ErrWeakPassword, http.StatusUnprocessableEntity},
		{"invalid credentials", userdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"unrecognized", fmt.Errorf("database on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}

	t.Run("wrapped sentinel still matches", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, fmt.Errorf("get wheel set: %w", wheeldomain.ErrSetNotFound))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
