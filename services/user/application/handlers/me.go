package handlers

import (
	"net/http"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	pkgvalidator "github.com/wheelhouse/wheelhouse/pkg/validator"
	appsvcs "github.com/wheelhouse/wheelhouse/services/user/application/services"
)

// UpdateProfileRequest is the request body for PATCH /me.
// Omitted fields stay unchanged.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,min=1,max=50" example:"Ada"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
	Gender   *int    `json:"gender" validate:"omitempty,oneof=0 1 2" example:"0"`
} // @name UpdateProfileRequest

// GetMeHandler handles GET /me.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute returns the caller's profile.
//
//	@Summary		Get own profile
//	@Tags			me
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.svc.Profile.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateMeHandler handles PATCH /me.
type UpdateMeHandler struct {
	svc *appsvcs.Services
}

// NewUpdateMeHandler returns an UpdateMeHandler backed by the given services.
func NewUpdateMeHandler(svc *appsvcs.Services) *UpdateMeHandler {
	return &UpdateMeHandler{svc: svc}
}

// Execute applies a partial update to the caller's profile.
//
//	@Summary		Update own profile
//	@Tags			me
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/me [patch]
func (h *UpdateMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Profile.Update(r.Context(), userID, appsvcs.ProfilePatch{
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Gender:   req.Gender,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
