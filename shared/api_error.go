package shared

type ApiErrorType string

const (
	// ApiErrorTypeServer is a non-2xx response with a message from the backend.
	ApiErrorTypeServer ApiErrorType = "server"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

// ApiErrorResponse is the wire shape of a non-2xx response body.
type ApiErrorResponse struct {
	Error string `json:"error"`
}
