package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	pkgvalidator "github.com/wheelhouse/wheelhouse/pkg/validator"
	appsvcs "github.com/wheelhouse/wheelhouse/services/user/application/services"
	"github.com/wheelhouse/wheelhouse/services/user/domain/models"
)

// RegisterRequest is the request body for POST /auth/register.
// Email or phone identifies the new account; at least one is required.
type RegisterRequest struct {
	Email    *string `json:"email" validate:"omitempty,email" example:"ada@example.com"`
	Phone    *string `json:"phone" validate:"omitempty,min=5,max=20" example:"+15550100"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
} // @name RegisterRequest

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required" example:"ada@example.com"`
	Password   string `json:"password" validate:"required"`
} // @name LoginRequest

// RefreshRequest is the request body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
} // @name RefreshRequest

// UserResponse is the public account shape. The password hash never leaves
// the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     *string   `json:"email"      example:"ada@example.com"`
	Phone     *string   `json:"phone"      example:"+15550100"`
	Nickname  string    `json:"nickname"   example:"User042"`
	Avatar    *string   `json:"avatar"`
	Gender    int       `json:"gender"     example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
} // @name AuthResponse

// RefreshResponse is returned by the refresh flow.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
} // @name RefreshResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
} // @name ErrorResponse

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
	}
}

// beginSession sets the web session cookie so SPA page reloads stay signed
// in without re-sending the bearer token. Best effort; bearer auth still
// works when the cookie cannot be written.
func beginSession(w http.ResponseWriter, r *http.Request, store sessions.Store, userID uuid.UUID) {
	if store == nil {
		return
	}
	session, err := store.Get(r, auth.SessionName)
	if err != nil {
		return
	}
	session.Values[auth.SessionUserIDKey] = userID.String()
	_ = session.Save(r, w)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services, store sessions.Store) *RegisterHandler {
	return &RegisterHandler{svc: svc, store: store}
}

// Execute creates an account and signs the caller in.
//
//	@Summary		Register
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, pair, err := h.svc.Auth.Register(r.Context(), req.Email, req.Phone, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	beginSession(w, r, h.store, user.ID)

	httpx.JSON(w, http.StatusCreated, AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewLoginHandler returns a LoginHandler backed by the given services.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store) *LoginHandler {
	return &LoginHandler{svc: svc, store: store}
}

// Execute checks credentials and mints a fresh token pair.
//
//	@Summary		Login
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, pair, err := h.svc.Auth.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	beginSession(w, r, h.store, user.ID)

	httpx.JSON(w, http.StatusOK, AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// RefreshHandler handles POST /auth/refresh.
type RefreshHandler struct {
	svc *appsvcs.Services
}

// NewRefreshHandler returns a RefreshHandler backed by the given services.
func NewRefreshHandler(svc *appsvcs.Services) *RefreshHandler {
	return &RefreshHandler{svc: svc}
}

// Execute exchanges a refresh token for a fresh access token.
//
//	@Summary		Refresh access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RefreshRequest	true	"Refresh request"
//	@Success		200		{object}	RefreshResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/refresh [post]
func (h *RefreshHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RefreshRequest](w, r)
	if !ok {
		return
	}

	access, err := h.svc.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, RefreshResponse{AccessToken: access})
}
