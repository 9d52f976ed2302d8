package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/wheelhouse/wheelhouse/pkg/httpx"
	"github.com/wheelhouse/wheelhouse/pkg/logger"
)

// RequireAuth is a chi middleware that resolves the caller's identity and
// injects the user ID into the request context.
//
// Resolution order:
//  1. Authorization: Bearer <access JWT> — the primary credential, used by
//     both the web SPA and the mini-program.
//  2. Session cookie — web fallback, set at login.
//
// Returns 401 Unauthorized when neither yields a valid user ID. After this
// middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(tokens *TokenManager, store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := userIDFromBearer(r, tokens); ok {
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
				return
			}

			if store != nil {
				if userID, ok := userIDFromSession(r, store); ok {
					next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
					return
				}
			}

			log.DebugContext(r.Context(), "unauthenticated request rejected", "path", r.URL.Path)
			httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		})
	}
}

func userIDFromBearer(r *http.Request, tokens *TokenManager) (uuid.UUID, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return uuid.Nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false
	}
	claims, err := tokens.Verify(parts[1], TokenTypeAccess)
	if err != nil || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func userIDFromSession(r *http.Request, store sessions.Store) (uuid.UUID, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return uuid.Nil, false
	}
	raw, ok := session.Values[SessionUserIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
