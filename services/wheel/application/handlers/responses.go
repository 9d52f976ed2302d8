package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"wheel set not found"`
} // @name ErrorResponse

// WheelItemResponse is the wire shape of one wheel item.
type WheelItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Pizza"`
	Description *string   `json:"description" example:"Friday special"`
	Color       *string   `json:"color"       example:"#ff6b6b"`
	Order       int       `json:"order"       example:"0"`
} // @name WheelItemResponse

// WheelSetResponse is the wire shape of one wheel set with its ordered items.
// The owning user id never leaves the server.
type WheelSetResponse struct {
	ID        uuid.UUID           `json:"id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string              `json:"name"       example:"Lunch options"`
	Version   int64               `json:"version"    example:"3"`
	Items     []WheelItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time           `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name WheelSetResponse

func toItemResponse(item *models.WheelItem) WheelItemResponse {
	return WheelItemResponse{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Color:       item.Color,
		Order:       item.Order,
	}
}

func toSetResponse(set *models.WheelSet) WheelSetResponse {
	set.SortItems()
	items := make([]WheelItemResponse, len(set.Items))
	for i := range set.Items {
		items[i] = toItemResponse(&set.Items[i])
	}
	return WheelSetResponse{
		ID:        set.ID,
		Name:      set.Name.String(),
		Version:   set.Version,
		Items:     items,
		CreatedAt: set.CreatedAt,
		UpdatedAt: set.UpdatedAt,
	}
}

// pathUUID parses a UUID route parameter. A malformed id is reported as 404
// so unparseable and nonexistent ids are indistinguishable.
func pathUUID(w http.ResponseWriter, r *http.Request, name, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, notFoundMsg)
		return uuid.Nil, false
	}
	return id, true
}
