// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	userdomain "github.com/wheelhouse/wheelhouse/services/user/domain"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/spin"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wheeldomain.ErrSetNotFound),
		errors.Is(err, wheeldomain.ErrItemNotFound),
		errors.Is(err, wheeldomain.ErrNoReorderTargets),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, wheeldomain.ErrVersionConflict),
		errors.Is(err, userdomain.ErrAccountExists):
		return http.StatusConflict // 409
	case errors.Is(err, wheeldomain.ErrInvalidSetName),
		errors.Is(err, wheeldomain.ErrInvalidItemName),
		errors.Is(err, userdomain.ErrMissingIdentifier),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, spin.ErrEmptyWheel):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, userdomain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
