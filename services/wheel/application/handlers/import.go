package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
)

// ImportResponse summarizes one legacy snapshot import.
type ImportResponse struct {
	Imported  int                `json:"imported" example:"2"`
	WheelSets []WheelSetResponse `json:"wheelSets"`
} // @name ImportResponse

// ImportHandler handles POST /wheel-sets/import.
type ImportHandler struct {
	svc *appsvcs.Services
}

// NewImportHandler returns an ImportHandler backed by the given services.
func NewImportHandler(svc *appsvcs.Services) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Execute imports a legacy client-local snapshot. The payload is decoded
// without schema validation: the adapter defaults malformed entries instead
// of rejecting them, so only syntactically invalid JSON fails.
//
//	@Summary		Import legacy snapshot
//	@Description	Creates a fresh wheel set per entry of the snapshot's wheelSets array, tolerating malformed fields
//	@Tags			wheel-sets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object	true	"Legacy snapshot, shape {wheelSets: [...]}"
//	@Success		201		{object}	ImportResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/import [post]
func (h *ImportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.svc.Import.ImportLegacySnapshot(r.Context(), userID, payload)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	sets := make([]WheelSetResponse, len(result.WheelSets))
	for i, set := range result.WheelSets {
		sets[i] = toSetResponse(set)
	}
	httpx.JSON(w, http.StatusCreated, ImportResponse{Imported: result.Imported, WheelSets: sets})
}
