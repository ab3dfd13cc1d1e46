package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

const msgInternalError = "internal server error"

// NewErrorHandler returns the echo error handler that turns handler errors
// into ErrorResponse bodies:
//
//	errs.InvalidInputError and field errors  400
//	openapi3filter.RequestError              400
//	errs.ObjectNotFoundError                 404
//	errs.ObjectAlreadyExistsError            409
//	*echo.HTTPError                          its own code
//	anything else                            500, logged
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, ErrorResponse) {
	var (
		invalidInput  *errs.InvalidInputError
		notFound      *errs.ObjectNotFoundError
		alreadyExists *errs.ObjectAlreadyExistsError
		requestErr    *openapi3filter.RequestError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &invalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: invalidInput.Message, Details: invalidInput.Details()}
	case errs.IsClientError(err):
		return http.StatusBadRequest, ErrorResponse{Error: commands.MsgValidationFailed, Details: err.Error()}
	case errors.As(err, &requestErr):
		return http.StatusBadRequest, ErrorResponse{Error: commands.MsgValidationFailed, Details: requestErr.Error()}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("order %v not found", notFound.ID)}
	case errors.As(err, &alreadyExists):
		return http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("order %v already exists", alreadyExists.ID)}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{Error: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: msgInternalError, Details: err.Error()}
	}
}
