package service

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler registers the custom error handler on the echo instance.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates the error code to HTTP status mapping used by
// every fleet service. field_mismatch maps to 401 — a quirk kept from the delete
// semantics of the record services.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrEntityConflict] = http.StatusConflict
	errorCodeToStatusCodeMaps[ErrFieldMismatch] = http.StatusUnauthorized
	errorCodeToStatusCodeMaps[ErrServiceUnavailable] = http.StatusServiceUnavailable
	errorCodeToStatusCodeMaps[ErrGatewayFailure] = http.StatusInternalServerError
	errorCodeToStatusCodeMaps[ErrQuantityExceeded] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles errors returned by echo handlers. The client-visible body is always
// a flat {"error": "<message>"} object — wrapped causes and stack traces never leave
// the process.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, "Internal server error", err)
	}

	var statusCode int
	if he, ok := err.(*echo.HTTPError); ok && he != nil {
		m, _ := he.Message.(string)
		if m == "" {
			m = http.StatusText(he.Code)
		}
		myErr = NewMyError(ErrInternalServerError, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(myErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"err", err,
	)

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
		} else {
			_ = c.JSON(statusCode, ErrResponse{Error: myErr.Message})
		}
	}
}

// ErrResponse is the JSON error body returned by every fleet service.
type ErrResponse struct {
	Error string `json:"error"`
}
