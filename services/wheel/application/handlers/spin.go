package handlers

import (
	"net/http"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/errhttp"
	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
)

// SpinResponse echoes one spin outcome: the winner plus the animation
// parameters a client needs to replay it. Nothing is persisted.
type SpinResponse struct {
	WinnerIndex   int               `json:"winnerIndex" example:"3"`
	Item          WheelItemResponse `json:"item"`
	TerminalAngle float64           `json:"terminalAngle" example:"29.845130209103036"`
	DurationMs    int64             `json:"durationMs" example:"4012"`
} // @name SpinResponse

// SpinHandler handles POST /wheel-sets/{id}/spin.
type SpinHandler struct {
	svc *appsvcs.Services
}

// NewSpinHandler returns a SpinHandler backed by the given services.
func NewSpinHandler(svc *appsvcs.Services) *SpinHandler {
	return &SpinHandler{svc: svc}
}

// Execute runs one spin over the set's ordered items.
//
//	@Summary		Spin a wheel
//	@Description	Picks a uniform random winner and returns the terminal angle and duration
//	@Tags			wheel-sets
//	@Produce		json
//	@Param			id	path		string	true	"Wheel set ID"
//	@Success		200	{object}	SpinResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/wheel-sets/{id}/spin [post]
func (h *SpinHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	setID, ok := pathUUID(w, r, "id", "wheel set not found")
	if !ok {
		return
	}

	outcome, err := h.svc.Wheel.Spin(r.Context(), userID, setID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SpinResponse{
		WinnerIndex:   outcome.WinnerIndex,
		Item:          toItemResponse(&outcome.Item),
		TerminalAngle: outcome.TerminalAngle,
		DurationMs:    outcome.Duration.Milliseconds(),
	})
}
