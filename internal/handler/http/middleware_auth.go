package http

import (
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/app"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
)

// auth is the gate in front of every protected route.
//
// It reads the "Authorization" header, requires the Bearer scheme
// (case-insensitive) with a non-empty token and resolves the token through
// [service.AuthService.Authenticate]. On success the caller's
// [models.Identity] is stored in the request context under
// [utils.IdentityCtxKey].
//
// Every failure is answered with the same 401 {"error":"unauthenticated"}
// and the protected handler never runs. The actual reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without valid authorization header")
			writeMessage(w, http.StatusUnauthorized, app.MsgUnauthenticated)
			return
		}

		identity, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			log.Info().Err(err).Msg("authentication failed")
			writeMessage(w, http.StatusUnauthorized, app.MsgUnauthenticated)
			return
		}

		ctx := utils.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}

// callerIdentity returns the identity stored by auth.
func callerIdentity(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentityInContext
	}
	return identity, nil
}
