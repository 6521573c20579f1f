package utils

// ErrorResponse represents a generic error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a confirmation message response
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse confirms an insert together with the generated id
type CreatedResponse struct {
	Message    string `json:"message"`
	InsertedID int64  `json:"insertedId"`
}

// InsertedResponse carries only the generated id of a new row
type InsertedResponse struct {
	InsertedID int64 `json:"insertedId"`
}
