package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
)

// RegisterWebhookRoutes registers the LiveKit webhook receiver.
func RegisterWebhookRoutes(router gin.IRoutes, handler *handlers.WebhookHandler, log zerolog.Logger) {
	router.POST("/webhook", livekitWebhook(handler, log))
}

// livekitWebhook godoc
// @Summary      LiveKit webhook
// @Description  Receives signed LiveKit room events. participant_joined moves the room's session from connecting to active.
// @Tags         LiveKit
// @Accept       application/webhook+json
// @Success      200
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Failure      503 {object} responses.ErrorResponse
// @Router       /v1/livekit/webhook [post]
func livekitWebhook(handler *handlers.WebhookHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := handler.Handle(c.Request.Context(), c.Request)
		switch {
		case err == nil:
			c.Status(http.StatusOK)
		case errors.Is(err, handlers.ErrWebhookDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, handlers.ErrInvalidWebhook):
			log.Warn().Err(err).Msg("rejected livekit webhook")
			c.JSON(http.StatusUnauthorized, gin.H{"error": handlers.ErrInvalidWebhook.Error()})
		default:
			log.Error().Err(err).Msg("failed to apply livekit webhook")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
		}
	}
}
