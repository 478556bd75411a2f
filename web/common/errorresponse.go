package common

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Code is a machine-readable rejection code, e.g. FORA_DO_PERIMETRO
	Code string `json:"error,omitempty"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}

func NewCodedErrorResponse(message, code string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
		Code:    code,
	}
}
