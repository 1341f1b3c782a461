package dto

// SuccessResponse is returned by operations without a payload
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Session deleted"`
}

// DataResponse wraps a payload
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse creates a SuccessResponse
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// NewDataResponse creates a DataResponse
func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{Success: true, Data: data}
}
