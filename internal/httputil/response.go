package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondWithError writes an error response in JSON format
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithDetail writes an auth-style failure body. Login/register clients
// consume the "detail" string verbatim as the user-facing message.
func RespondWithDetail(w http.ResponseWriter, code int, detail string) {
	RespondWithJSON(w, code, map[string]string{"detail": detail})
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
