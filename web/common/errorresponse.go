package common

// Error codes returned in the "error" field of failure responses.
const (
	CodeValidation = "validation_error"
	CodeAuth       = "unauthorized"
	CodePermission = "forbidden"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   code,
		Message: message,
	}
}
