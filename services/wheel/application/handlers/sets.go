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

// CreateWheelSetRequest is the request body for POST /wheel-sets.
type CreateWheelSetRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Lunch options"`
} // @name CreateWheelSetRequest

// UpdateWheelSetRequest is the request body for PATCH /wheel-sets/{id}.
// Absent fields are left unchanged. Version, when supplied, is the client's
// expected version (advisory unless strict versioning is configured).
type UpdateWheelSetRequest struct {
	Name    models.Field[string] `json:"name" swaggertype:"string" example:"Dinner options"`
	Version models.Field[int64]  `json:"version" swaggertype:"integer" example:"3"`
} // @name UpdateWheelSetRequest

// ListWheelSetsHandler handles GET /wheel-sets.
type ListWheelSetsHandler struct {
	svc *appsvcs.Services
}

// NewListWheelSetsHandler returns a ListWheelSetsHandler backed by the given services.
func NewListWheelSetsHandler(svc *appsvcs.Services) *ListWheelSetsHandler {
	return &ListWheelSetsHandler{svc: svc}
}

// Execute lists the caller's wheel sets.
//
//	@Summary		List wheel sets
//	@Description	Returns all wheel sets owned by the caller, newest first, items ordered
//	@Tags			wheel-sets
//	@Produce		json
//	@Success		200	{array}		WheelSetResponse
//	@Failure		401	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets [get]
func (h *ListWheelSetsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	sets, err := h.svc.Wheel.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]WheelSetResponse, len(sets))
	for i, set := range sets {
		out[i] = toSetResponse(set)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// CreateWheelSetHandler handles POST /wheel-sets.
type CreateWheelSetHandler struct {
	svc *appsvcs.Services
}

// NewCreateWheelSetHandler returns a CreateWheelSetHandler backed by the given services.
func NewCreateWheelSetHandler(svc *appsvcs.Services) *CreateWheelSetHandler {
	return &CreateWheelSetHandler{svc: svc}
}

// Execute creates an empty wheel set at version 0.
//
//	@Summary		Create wheel set
//	@Tags			wheel-sets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateWheelSetRequest	true	"Wheel set creation request"
//	@Success		201		{object}	WheelSetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets [post]
func (h *CreateWheelSetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateWheelSetRequest](w, r)
	if !ok {
		return
	}

	set, err := h.svc.Wheel.Create(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toSetResponse(set))
}

// GetWheelSetHandler handles GET /wheel-sets/{id}.
type GetWheelSetHandler struct {
	svc *appsvcs.Services
}

// NewGetWheelSetHandler returns a GetWheelSetHandler backed by the given services.
func NewGetWheelSetHandler(svc *appsvcs.Services) *GetWheelSetHandler {
	return &GetWheelSetHandler{svc: svc}
}

// Execute retrieves one wheel set with its ordered items.
//
//	@Summary		Get wheel set
//	@Tags			wheel-sets
//	@Produce		json
//	@Param			id	path		string	true	"Wheel set ID"
//	@Success		200	{object}	WheelSetResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id} [get]
func (h *GetWheelSetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	set, err := h.svc.Wheel.Get(r.Context(), userID, setID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSetResponse(set))
}

// UpdateWheelSetHandler handles PATCH /wheel-sets/{id}.
type UpdateWheelSetHandler struct {
	svc *appsvcs.Services
}

// NewUpdateWheelSetHandler returns an UpdateWheelSetHandler backed by the given services.
func NewUpdateWheelSetHandler(svc *appsvcs.Services) *UpdateWheelSetHandler {
	return &UpdateWheelSetHandler{svc: svc}
}

// Execute renames a wheel set and bumps its version.
//
//	@Summary		Update wheel set
//	@Description	Partial update; the new version is (supplied ?? current) + 1
//	@Tags			wheel-sets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Wheel set ID"
//	@Param			request	body		UpdateWheelSetRequest	true	"Fields to change"
//	@Success		200		{object}	WheelSetResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id} [patch]
func (h *UpdateWheelSetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateWheelSetRequest](w, r)
	if !ok {
		return
	}

	set, err := h.svc.Wheel.Update(r.Context(), userID, setID, models.SetPatch{
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSetResponse(set))
}

// DeleteWheelSetHandler handles DELETE /wheel-sets/{id}.
type DeleteWheelSetHandler struct {
	svc *appsvcs.Services
}

// NewDeleteWheelSetHandler returns a DeleteWheelSetHandler backed by the given services.
func NewDeleteWheelSetHandler(svc *appsvcs.Services) *DeleteWheelSetHandler {
	return &DeleteWheelSetHandler{svc: svc}
}

// Execute deletes a wheel set and all its items.
//
//	@Summary		Delete wheel set
//	@Tags			wheel-sets
//	@Produce		json
//	@Param			id	path	string	true	"Wheel set ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id} [delete]
func (h *DeleteWheelSetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	if err := h.svc.Wheel.Delete(r.Context(), userID, setID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
