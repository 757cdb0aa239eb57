package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pazurkowo/pet-salon-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response. AppError values choose their own
// status code; anything else is masked as a 500 so internals never leak.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
