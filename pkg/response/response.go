package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/hirewire/hirewire/pkg/errors"
)

// ErrorBody is the wire shape for failed requests. The human-readable
// explanation travels under "detail"; "code" is a stable machine tag.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// Success writes the payload as-is. Handlers construct the documented
// response shapes themselves (e.g. {"notifications": [...]}).
func Success(c *gin.Context, statusCode int, payload any) {
	c.JSON(statusCode, payload)
}

// Error writes a JSON error response derived from an AppError.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorBody{
		Detail: appErr.Message,
		Code:   appErr.Code,
	})
}
