package handlers

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data,omitempty"`
	Count       *int   `json:"count,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	Environment string `json:"environment,omitempty"`
	Stack       string `json:"stack,omitempty"`
}

// Messages shared by both transports. The exact strings are part of the API
// contract.
const (
	errCarNotFound    = "Car not found"
	errMissingIDParam = "id parameter is required"
	errNoDataToUpdate = "No data to update"
	errInvalidJSON    = "Invalid JSON body"
	errInternal       = "Internal Server Error"
	errRouteNotFound  = "Route not found"

	msgCarCreated = "Car created successfully"
	msgCarUpdated = "Car updated successfully"
	msgCarDeleted = "Car deleted successfully"
)

func successResponse(data any) Response {
	return Response{Success: true, Data: data}
}

func listResponse(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

func messageResponse(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func errorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
