package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorDetail is the inner error payload of error responses.
type ErrorDetail struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the structured error body returned on failures.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Respond writes the structured error body for err, logging unexpected
// failures server-side.
func Respond(c *gin.Context, log *logrus.Logger, err error) {
	appErr := From(err)

	if appErr.Status == http.StatusInternalServerError {
		log.WithError(err).Error("Unexpected error while handling request")
	}

	c.JSON(appErr.Status, ErrorResponse{Error: ErrorDetail{
		Code:    appErr.Code,
		Message: appErr.Message,
	}})
}
