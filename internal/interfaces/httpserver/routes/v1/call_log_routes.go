package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
	calllogres "github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/responses/calllog"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

// RegisterCallLogRoutes registers the call log read routes.
func RegisterCallLogRoutes(router gin.IRoutes, handler *handlers.CallLogHandler, log zerolog.Logger) {
	router.GET("", listCallLogs(handler, log))
	router.GET("/analytics", callAnalytics(handler, log))
}

// listCallLogs godoc
// @Summary      List call logs
// @Description  Lists the caller's call logs newest first with the agent name, optionally for a single agent
// @Tags         Call Logs
// @Produce      json
// @Param        agentId query string false "Agent ID"
// @Success      200 {object} calllogres.ListCallLogsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/call-logs [get]
func listCallLogs(handler *handlers.CallLogHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		records, err := handler.ListCallLogs(c.Request.Context(), userID, c.Query("agentId"))
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, calllogres.NewListCallLogsResponse(records))
	}
}

// callAnalytics godoc
// @Summary      Call analytics
// @Description  Aggregates all of the caller's call logs: average duration, containment rate and sentiment, outcome and language counts
// @Tags         Call Logs
// @Produce      json
// @Success      200 {object} calllogres.AnalyticsResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/call-logs/analytics [get]
func callAnalytics(handler *handlers.CallLogHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)

		analytics, err := handler.Analytics(c.Request.Context(), userID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, calllogres.NewAnalyticsResponse(analytics))
	}
}
