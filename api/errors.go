package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	shared "draftshare-cli/shared"
)

// HandleApiError turns a non-2xx response into an ApiError, preferring the
// backend's {"error": "..."} body when present.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body shared.ApiErrorResponse
		if err := json.Unmarshal(errBody, &body); err != nil {
			log.Printf("Error unmarshalling error response: %v\n", err)
		} else if body.Error != "" {
			return &shared.ApiError{
				Type:   shared.ApiErrorTypeServer,
				Status: r.StatusCode,
				Msg:    body.Error,
			}
		}
	}

	msg := strings.TrimSpace(string(errBody))
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", r.StatusCode)
	}

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeOther,
		Status: r.StatusCode,
		Msg:    msg,
	}
}
