package common

// DataResponse is the success envelope the backend wraps every payload in.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ErrorBody is the error envelope. Code carries machine-readable reasons
// such as FORA_DO_PERIMETRO.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"error,omitempty"`
}
