package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-linkup/internal/app"
	"github.com/MKhiriev/go-linkup/internal/logger"
)

// decodeJSON reads a JSON body of at most maxBodyBytes into dst. On failure
// it answers 400 itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("type", fmt.Sprintf("%T", dst)).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return false
	}
	return true
}
