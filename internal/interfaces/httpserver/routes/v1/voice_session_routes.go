package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
	sessionres "github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/responses/session"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

// RegisterVoiceSessionRoutes registers the dashboard read routes.
func RegisterVoiceSessionRoutes(router gin.IRoutes, handler *handlers.SessionHandler, log zerolog.Logger) {
	router.GET("", listSessions(handler, log))
	router.GET("/live", listLiveCalls(handler, log))
	router.GET("/stats", sessionStats(handler, log))
	router.GET("/:id", getSession(handler, log))
}

// listSessions godoc
// @Summary      List voice sessions
// @Description  Lists the caller's sessions newest first, optionally for a single agent
// @Tags         Voice Sessions
// @Produce      json
// @Param        agentId query string false "Agent ID"
// @Success      200 {object} sessionres.ListSessionsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/voice-sessions [get]
func listSessions(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		sessions, err := handler.ListSessions(c.Request.Context(), userID, c.Query("agentId"))
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewListSessionsResponse(sessions))
	}
}

// listLiveCalls godoc
// @Summary      List live calls
// @Description  Lists the caller's active sessions with their running duration
// @Tags         Voice Sessions
// @Produce      json
// @Success      200 {object} sessionres.ListLiveCallsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/voice-sessions/live [get]
func listLiveCalls(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		calls, err := handler.ListLiveCalls(c.Request.Context(), userID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewListLiveCallsResponse(calls))
	}
}

// sessionStats godoc
// @Summary      Today's call statistics
// @Description  Counts ended and active sessions started since local midnight
// @Tags         Voice Sessions
// @Produce      json
// @Success      200 {object} sessionres.StatsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/voice-sessions/stats [get]
func sessionStats(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		stats, err := handler.Stats(c.Request.Context(), userID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewStatsResponse(stats))
	}
}

// getSession godoc
// @Summary      Get a voice session
// @Description  Retrieves one of the caller's sessions
// @Tags         Voice Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} sessionres.SessionResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/voice-sessions/{id} [get]
func getSession(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		sess, err := handler.GetSession(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewSessionResponse(sess))
	}
}
