package livekit

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TokenTTL is the fixed validity window of an access token.
const TokenTTL = 24 * time.Hour

// ErrInvalidArgument is returned when a token cannot be built from the given input.
var ErrInvalidArgument = errors.New("invalid token argument")

// Header is the JOSE header of an access token.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// VideoGrant is the capability object LiveKit reads from the "video" claim.
type VideoGrant struct {
	RoomJoin       bool   `json:"roomJoin"`
	Room           string `json:"room"`
	CanPublish     bool   `json:"canPublish"`
	CanSubscribe   bool   `json:"canSubscribe"`
	CanPublishData bool   `json:"canPublishData"`
}

// Claims is the payload of an access token.
type Claims struct {
	Issuer    string     `json:"iss"`
	Subject   string     `json:"sub"`
	Name      string     `json:"name"`
	NotBefore int64      `json:"nbf"`
	ExpiresAt int64      `json:"exp"`
	IssuedAt  int64      `json:"iat"`
	Video     VideoGrant `json:"video"`
}

// Sign builds a room access token: base64url(header).base64url(claims).base64url(HMAC-SHA256).
// Segments are unpadded.
func Sign(apiKey, apiSecret, room, identity, name string, now time.Time) (string, error) {
	switch {
	case strings.TrimSpace(apiKey) == "":
		return "", fmt.Errorf("%w: api key is required", ErrInvalidArgument)
	case apiSecret == "":
		return "", fmt.Errorf("%w: api secret is required", ErrInvalidArgument)
	case strings.TrimSpace(room) == "":
		return "", fmt.Errorf("%w: room name is required", ErrInvalidArgument)
	case strings.TrimSpace(identity) == "":
		return "", fmt.Errorf("%w: participant identity is required", ErrInvalidArgument)
	}

	issuedAt := now.Unix()
	claims := Claims{
		Issuer:    apiKey,
		Subject:   identity,
		Name:      name,
		NotBefore: issuedAt,
		ExpiresAt: issuedAt + int64(TokenTTL/time.Second),
		IssuedAt:  issuedAt,
		Video: VideoGrant{
			RoomJoin:       true,
			Room:           room,
			CanPublish:     true,
			CanSubscribe:   true,
			CanPublishData: true,
		},
	}

	headerJSON, err := compactJSON(Header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("encode header: %w", err)
	}
	claimsJSON, err := compactJSON(claims)
	if err != nil {
		return "", fmt.Errorf("encode claims: %w", err)
	}

	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(signingInput))

	return signingInput + "." + encodeSegment(mac.Sum(nil)), nil
}

// compactJSON marshals v without HTML escaping or a trailing newline.
func compactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// TokenGenerator signs room tokens with the service-level API key pair.
type TokenGenerator struct {
	apiKey    string
	apiSecret string
}

// NewTokenGenerator creates a new token generator.
func NewTokenGenerator(apiKey, apiSecret string) *TokenGenerator {
	return &TokenGenerator{
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// Configured reports whether both halves of the key pair are present.
func (g *TokenGenerator) Configured() bool {
	return g != nil && strings.TrimSpace(g.apiKey) != "" && strings.TrimSpace(g.apiSecret) != ""
}

// Generate creates an access token for identity in room, valid from now for TokenTTL.
func (g *TokenGenerator) Generate(room, identity, name string, now time.Time) (string, error) {
	return Sign(g.apiKey, g.apiSecret, room, identity, name, now)
}
