package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	pkgvalidator "github.com/wheelhouse/wheelhouse/pkg/validator"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// BatchItemEntry is one entry of the desired item list. A null or missing id
// creates the item fresh; a recognized id updates it in place.
type BatchItemEntry struct {
	ID          *uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string     `json:"name" validate:"required,min=1,max=100" example:"Pizza"`
	Description *string    `json:"description"`
	Color       *string    `json:"color" example:"#ff6b6b"`
	Order       int        `json:"order" example:"0"`
} // @name BatchItemEntry

// BatchReplaceRequest is the request body for PUT /wheel-sets/{id}/batch.
// Omitting items leaves membership alone; an empty array deletes every item.
type BatchReplaceRequest struct {
	Name  models.Field[string] `json:"name" swaggertype:"string" example:"Dinner options"`
	Items *[]BatchItemEntry    `json:"items" validate:"omitempty,dive"`
} // @name BatchReplaceRequest

// BatchReplaceHandler handles PUT /wheel-sets/{id}/batch.
type BatchReplaceHandler struct {
	svc *appsvcs.Services
}

// NewBatchReplaceHandler returns a BatchReplaceHandler backed by the given services.
func NewBatchReplaceHandler(svc *appsvcs.Services) *BatchReplaceHandler {
	return &BatchReplaceHandler{svc: svc}
}

// Execute converges the set to the supplied desired state in one transaction.
//
//	@Summary		Batch replace
//	@Description	Stored items absent from the list are deleted, recognized ids updated, the rest created fresh
//	@Tags			wheel-sets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Wheel set ID"
//	@Param			request	body		BatchReplaceRequest	true	"Desired end state"
//	@Success		200		{object}	WheelSetResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/batch [put]
func (h *BatchReplaceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BatchReplaceRequest](w, r)
	if !ok {
		return
	}

	input := appsvcs.BatchInput{Name: req.Name}
	if req.Items != nil {
		items := make([]models.ReplacementItem, len(*req.Items))
		for i, entry := range *req.Items {
			name, err := models.NewItemName(entry.Name)
			if err != nil {
				errhttp.WriteError(w, wheeldomain.ErrInvalidItemName)
				return
			}
			items[i] = models.ReplacementItem{
				ID:          entry.ID,
				Name:        name,
				Description: entry.Description,
				Color:       entry.Color,
				Order:       entry.Order,
			}
		}
		input.Items = &items
	}

	set, err := h.svc.Wheel.BatchReplace(r.Context(), userID, setID, input)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSetResponse(set))
}
