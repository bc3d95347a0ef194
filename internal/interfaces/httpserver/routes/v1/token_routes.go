package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domainsession "github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
	sessionreq "github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/requests/session"
	sessionres "github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/responses/session"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

// RegisterTokenRoutes registers the token issuance and finalization routes.
func RegisterTokenRoutes(router gin.IRoutes, handler *handlers.SessionHandler, log zerolog.Logger) {
	router.POST("/livekit-token", issueToken(handler, log))
	router.POST("/end-voice-session", endVoiceSession(handler, log))
}

// issueToken godoc
// @Summary      Issue a LiveKit room token
// @Description  Verifies the caller owns the agent, signs a 24h room token and opens a voice session in the connecting state. sessionId is omitted when the session row could not be written.
// @Tags         Voice Sessions
// @Accept       json
// @Produce      json
// @Param        request body sessionreq.IssueTokenRequest true "Token request"
// @Success      200 {object} sessionres.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/livekit-token [post]
func issueToken(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, _ := auth.UserID(c)

		var req sessionreq.IssueTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteError(c, platformerrors.InvalidArgument(ctx, platformerrors.LayerRoute, "Invalid request body"), log)
			return
		}

		res, err := handler.IssueToken(ctx, userID, domainsession.IssueRequest{
			AgentID:         req.AgentID,
			RoomName:        req.RoomName,
			ParticipantName: req.ParticipantName,
		})
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewTokenResponse(res))
	}
}

// endVoiceSession godoc
// @Summary      End a voice session
// @Description  Closes the caller's session, computes its duration server-side and records a call log. A session can only be ended once.
// @Tags         Voice Sessions
// @Accept       json
// @Produce      json
// @Param        request body sessionreq.EndSessionRequest true "End session request"
// @Success      200 {object} sessionres.EndSessionResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /v1/end-voice-session [post]
func endVoiceSession(handler *handlers.SessionHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, _ := auth.UserID(c)

		var req sessionreq.EndSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteError(c, platformerrors.InvalidArgument(ctx, platformerrors.LayerRoute, "Invalid request body"), log)
			return
		}

		res, err := handler.EndSession(ctx, userID, domainsession.FinalizeRequest{
			SessionID:  req.SessionID,
			Transcript: req.Transcript,
			Sentiment:  req.Sentiment,
			Intent:     req.Intent,
			Language:   req.Language,
		})
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}

		c.JSON(http.StatusOK, sessionres.NewEndSessionResponse(res))
	}
}
