package types

import "fmt"

// APIError is an error with a declared HTTP status. The global error handler
// serializes it as {"message": ...} with that status.
type APIError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ToMap returns the JSON body for the error
func (e *APIError) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(e.Payload)+1)
	for k, v := range e.Payload {
		out[k] = v
	}
	out["message"] = e.Message
	return out
}

// NewAPIError creates an APIError, defaulting the status to 400
func NewAPIError(message string, code int) *APIError {
	if code == 0 {
		code = 400
	}
	return &APIError{Code: code, Message: message}
}
