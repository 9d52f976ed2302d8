package handlers

import (
	"net/http"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	pkgvalidator "github.com/wheelhouse/wheelhouse/pkg/validator"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// AddItemRequest is the request body for POST /wheel-sets/{id}/items.
// Order is caller-supplied; duplicates and gaps are allowed.
type AddItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"Pizza"`
	Description *string `json:"description" example:"Friday special"`
	Color       *string `json:"color" example:"#ff6b6b"`
	Order       int     `json:"order" example:"0"`
} // @name AddItemRequest

// UpdateItemRequest is the request body for PATCH /wheel-sets/{id}/items/{itemId}.
// Absent fields are left unchanged; an explicit null clears description/color.
type UpdateItemRequest struct {
	Name        models.Field[string] `json:"name" swaggertype:"string" example:"Sushi"`
	Description models.Field[string] `json:"description" swaggertype:"string" example:"raw"`
	Color       models.Field[string] `json:"color" swaggertype:"string" example:"#4ecdc4"`
	Order       models.Field[int]    `json:"order" swaggertype:"integer" example:"2"`
} // @name UpdateItemRequest

// AddItemHandler handles POST /wheel-sets/{id}/items.
type AddItemHandler struct {
	svc *appsvcs.Services
}

// NewAddItemHandler returns an AddItemHandler backed by the given services.
func NewAddItemHandler(svc *appsvcs.Services) *AddItemHandler {
	return &AddItemHandler{svc: svc}
}

// Execute adds an option to a wheel set.
//
//	@Summary		Add wheel item
//	@Tags			wheel-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Wheel set ID"
//	@Param			request	body		AddItemRequest	true	"Item to add"
//	@Success		201		{object}	WheelItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/items [post]
func (h *AddItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Wheel.AddItem(r.Context(), userID, setID, req.Name, req.Description, req.Color, req.Order)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// UpdateItemHandler handles PATCH /wheel-sets/{id}/items/{itemId}.
type UpdateItemHandler struct {
	svc *appsvcs.Services
}

// NewUpdateItemHandler returns an UpdateItemHandler backed by the given services.
func NewUpdateItemHandler(svc *appsvcs.Services) *UpdateItemHandler {
	return &UpdateItemHandler{svc: svc}
}

// Execute applies a partial update to one item of a wheel set.
//
//	@Summary		Update wheel item
//	@Tags			wheel-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Wheel set ID"
//	@Param			itemId	path		string				true	"Wheel item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	WheelItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/items/{itemId} [patch]
func (h *UpdateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId", "wheel item not found")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Wheel.UpdateItem(r.Context(), userID, setID, itemID, models.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Order:       req.Order,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler handles DELETE /wheel-sets/{id}/items/{itemId}.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes one item from a wheel set. The item must belong to the
// named set.
//
//	@Summary		Delete wheel item
//	@Tags			wheel-items
//	@Produce		json
//	@Param			id		path	string	true	"Wheel set ID"
//	@Param			itemId	path	string	true	"Wheel item ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/items/{itemId} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId", "wheel item not found")
	if !ok {
		return
	}

	if err := h.svc.Wheel.DeleteItem(r.Context(), userID, setID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
