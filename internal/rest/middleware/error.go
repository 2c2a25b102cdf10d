package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/rest/response"
)

// errorStatus is the single error-to-status table; first match wins.
var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrCommentNotInPost, http.StatusBadRequest},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrInternalServerError, http.StatusInternalServerError},
}

// StatusCode will get the code of the error from the domain taxonomy
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Validation errors become a field -> message map, everything else an ErrorDetails body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusCode(err)
		entry := logrus.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(RequestIDKey),
		})

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			entry.Infof("validation failed: %v", err)
			c.JSON(status, verr.Fields)
			return
		}

		msg := err.Error()
		if status >= http.StatusInternalServerError {
			entry.Error(err)
			msg = domain.ErrInternalServerError.Error()
		} else {
			entry.Info(err)
		}
		c.JSON(status, response.NewErrorDetails(status, msg, c.Request.URL.Path))
	}
}
