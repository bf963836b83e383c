package httpserver

import (
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

type MessageResponse struct {
	Message string `json:"message"`
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

// writeList never encodes a nil slice as null.
func writeList[T any](c echo.Context, status int, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(status, items)
}
