package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	pkgvalidator "github.com/wheelhouse/wheelhouse/pkg/validator"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// ReorderEntry is one (id, order) pair of a reorder request.
type ReorderEntry struct {
	ID    uuid.UUID `json:"id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Order int       `json:"order" example:"1"`
} // @name ReorderEntry

// ReorderItemsRequest is the request body for POST /wheel-sets/{id}/items:reorder.
type ReorderItemsRequest struct {
	Items []ReorderEntry `json:"items" validate:"required,min=1,dive"`
} // @name ReorderItemsRequest

// ReorderItemsHandler handles POST /wheel-sets/{id}/items:reorder.
type ReorderItemsHandler struct {
	svc *appsvcs.Services
}

// NewReorderItemsHandler returns a ReorderItemsHandler backed by the given services.
func NewReorderItemsHandler(svc *appsvcs.Services) *ReorderItemsHandler {
	return &ReorderItemsHandler{svc: svc}
}

// Execute applies caller-supplied order values in one transaction. Pairs
// referencing items outside the set are silently dropped; 404 only when no
// valid pair remains.
//
//	@Summary		Reorder wheel items
//	@Tags			wheel-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Wheel set ID"
//	@Param			request	body		ReorderItemsRequest	true	"Desired (id, order) pairs"
//	@Success		200		{object}	WheelSetResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/items:reorder [post]
func (h *ReorderItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ReorderItemsRequest](w, r)
	if !ok {
		return
	}

	assignments := make([]models.OrderAssignment, len(req.Items))
	for i, entry := range req.Items {
		assignments[i] = models.OrderAssignment{ID: entry.ID, Order: entry.Order}
	}

	set, err := h.svc.Wheel.Reorder(r.Context(), userID, setID, assignments)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSetResponse(set))
}
