package api

import (
	"errors"
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Status: true, Message: message, Data: data})
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Status: false, Message: message})
}

type errorKind struct {
	kind   error
	status int
	reason string // metrics label
}

var errorKinds = []errorKind{
	{service.ErrInvalidIdentifier, http.StatusBadRequest, "invalid_identifier"},
	{service.ErrInvalidReference, http.StatusBadRequest, "invalid_reference"},
	{service.ErrInvalidFilter, http.StatusBadRequest, "invalid_filter"},
	{service.ErrCapExceeded, http.StatusBadRequest, "cap_exceeded"},
	{service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
	{service.ErrNotFound, http.StatusNotFound, "not_found"},
	{service.ErrConflict, http.StatusConflict, "conflict"},
	{service.ErrMissingCredential, http.StatusUnauthorized, "missing_credential"},
	{service.ErrExpiredOrInvalid, http.StatusUnauthorized, "expired_or_invalid"},
	{service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized, "authentication_failed"},
}

// abortWithServiceError maps a service failure to its HTTP status. Unexpected
// errors are logged and answered with a generic 500.
func abortWithServiceError(c *gin.Context, log logrus.FieldLogger, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			metrics.RecordRejection(k.reason)
			abortWithError(c, k.status, err.Error())
			return
		}
	}

	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error("request failed")
	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// abortWithBindError answers a request whose body or query failed schema validation.
func abortWithBindError(c *gin.Context, err error) {
	metrics.RecordRejection("invalid_payload")
	abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
}
