package platformerrors

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the error body returned by every endpoint.
type HTTPErrorResponse struct {
	Error string `json:"error" example:"Agent not found or unauthorized"`
}

// WriteHTTPError writes a PlatformError as an HTTP response.
func WriteHTTPError(c *gin.Context, err *PlatformError, log zerolog.Logger) {
	LogError(log, err)
	c.JSON(ErrorTypeToHTTPStatus(err.Type), HTTPErrorResponse{Error: err.Message})
}

// WriteError writes a generic error as an HTTP response. Errors that are not
// a PlatformError are treated as internal failures.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		WriteHTTPError(c, NewError(c.Request.Context(), LayerRoute, ErrorTypeInternal, "Unknown error", nil), log)
		return
	}

	if platformErr := GetPlatformError(err); platformErr != nil {
		WriteHTTPError(c, platformErr, log)
		return
	}

	WriteHTTPError(c, NewError(c.Request.Context(), LayerRoute, ErrorTypeInternal, err.Error(), err), log)
}
