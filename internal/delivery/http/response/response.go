// Package response shapes HTTP response bodies. Successful calls return
// their resource as bare JSON; failures share one error envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the error envelope.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "CALCULATION_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// BearerChallenge is sent with every 401 response.
const BearerChallenge = "Bearer"

// JSON writes a bare resource body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty response, used by deletes.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the error envelope. A 401 also carries the bearer challenge.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, BearerChallenge)
	}

	body := Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	}
	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, body)
}
