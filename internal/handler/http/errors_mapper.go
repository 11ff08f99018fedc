package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/app"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/service"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/utils"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order, so narrower errors come before the
// errors they wrap.
var errorStatusMap = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgUnauthenticated},
	{ErrNoIdentityInContext, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrNotOwner, http.StatusForbidden, app.MsgAccessDenied},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrPendingRequestNotFound, http.StatusNotFound, app.MsgPendingRequestNotFound},
	{service.ErrSelfConnection, http.StatusUnprocessableEntity, app.MsgSelfConnection},
}

// responseFromError maps err to a status code and a message that is safe to
// show to the client. Unknown errors become an opaque 500.
func responseFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.target == service.ErrInvalidDataProvided {
			// validation details name the offending field and are safe to expose
			return m.status, err.Error()
		}
		return m.status, m.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the mapped JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, status, message)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}
