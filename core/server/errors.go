package server

import (
	"errors"
	"fmt"

	"countries-api/core/i18n"
	"countries-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Message keys rendered by the error handler.
const (
	KeyCountryNotFound     = "countryNotFound"
	KeyRegionNotFound      = "regionNotFound"
	KeyInternalServerError = "internalServerError"
	KeyInvalidParameter    = "invalidParameter"
)

// Error is an HTTP error whose message is localized at response time.
type Error struct {
	Status int
	Key    string
	Params map[string]string
	// Err is the underlying cause, logged but never sent to the client.
	Err error
}

// NewError creates an Error with a single {param} placeholder value.
func NewError(status int, key, param string) *Error {
	return &Error{Status: status, Key: key, Params: map[string]string{"param": param}}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Key, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Key)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the status and the localized message.
type ErrorDetail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewErrorHandler returns a fiber.ErrorHandler writing ErrorBody responses.
// Messages of *Error are rendered in the locale negotiated from
// Accept-Language. Any error other than *Error or *fiber.Error becomes a 500
// with the localized internalServerError message. 5xx responses are logged.
func NewErrorHandler(resolver *i18n.Resolver, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var message string

		var appErr *Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = resolver.Translate(c.Get(fiber.HeaderAcceptLanguage), appErr.Key, appErr.Params)
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		default:
			message = resolver.Translate(c.Get(fiber.HeaderAcceptLanguage), KeyInternalServerError, nil)
		}

		if status >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error("Request failed",
				zap.Int("status", status),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		return c.Status(status).JSON(ErrorBody{Error: ErrorDetail{Status: status, Message: message}})
	}
}
