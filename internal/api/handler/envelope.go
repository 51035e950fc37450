package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response shape for every API path. Message is
// always present; Data carries the record or collection on success and
// is absent on deletes and failures.
type Envelope struct {
	Success bool   `json:"success"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Failure builds the envelope used on every error path.
func Failure(message string) Envelope {
	return Envelope{Error: true, Message: message}
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}
