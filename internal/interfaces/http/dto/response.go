package dto

// DataResponse wraps a single entity
type DataResponse struct {
	Data any `json:"data"`
}

// ListResponse wraps a paginated listing with its pagination echo
type ListResponse struct {
	Data   any   `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// NewDataResponse creates a single-entity response
func NewDataResponse(data any) DataResponse {
	return DataResponse{Data: data}
}

// NewListResponse creates a paginated listing response
func NewListResponse(data any, total int64, limit, offset int) ListResponse {
	return ListResponse{Data: data, Total: total, Limit: limit, Offset: offset}
}

// NewDirectoryResponse creates an unpaginated listing response
func NewDirectoryResponse(data any) DataResponse {
	return DataResponse{Data: data}
}
