// Package session contains HTTP request DTOs for voice session endpoints.
package session

// IssueTokenRequest is the body of POST /livekit-token.
type IssueTokenRequest struct {
	AgentID         string `json:"agentId"`
	RoomName        string `json:"roomName,omitempty"`
	ParticipantName string `json:"participantName,omitempty"`
}

// EndSessionRequest is the body of POST /end-voice-session.
type EndSessionRequest struct {
	SessionID  string `json:"sessionId"`
	Transcript string `json:"transcript,omitempty"`
	Sentiment  string `json:"sentiment,omitempty"`
	Intent     string `json:"intent,omitempty"`
	Language   string `json:"language,omitempty"`
}
