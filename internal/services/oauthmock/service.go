package oauthsvc

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuge42/yt-api-mock/internal/telemetry"
	logpkg "github.com/yuge42/yt-api-mock/pkg/log"
)

const (
	// DefaultScope is used when neither the request nor the config names one.
	DefaultScope = "mock.scope.read mock.scope.write"

	defaultExpirySeconds = 3600
)

// TokenRequest is a parsed form body for the token endpoint.
type TokenRequest struct {
	GrantType    string
	Code         string
	RefreshToken string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// ExpiresIn overrides the token lifetime in seconds. Negative values
	// mint already-expired tokens for client-side expiry testing.
	ExpiresIn *int64
	Scope     string
}

// TokenResponse follows the Google OAuth2 token response format.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// Error follows the Google OAuth2 error response format.
type Error struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Description }

type tokenMetadata struct {
	issuedAt  time.Time
	expiresIn int64
	scope     string
}

func (m tokenMetadata) expired(now time.Time) bool {
	return !now.Before(m.issuedAt.Add(time.Duration(m.expiresIn) * time.Second))
}

// Service mints and validates mock tokens.
type Service struct {
	logger       logpkg.Logger
	defaultScope string
	now          func() time.Time

	mu     sync.RWMutex
	tokens map[string]tokenMetadata
}

// New returns a Service. scope may be empty, in which case DefaultScope is
// used.
func New(scope string, logger logpkg.Logger) *Service {
	if scope == "" {
		scope = DefaultScope
	}
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("oauth"))
	}
	return &Service{
		logger:       logger,
		defaultScope: scope,
		now:          time.Now,
		tokens:       make(map[string]tokenMetadata),
	}
}

// Token handles both supported grant types.
func (s *Service) Token(req TokenRequest) (*TokenResponse, *Error) {
	switch req.GrantType {
	case "authorization_code":
		return s.authorizationCode(req)
	case "refresh_token":
		return s.refreshToken(req)
	default:
		return nil, &Error{
			Code:        "unsupported_grant_type",
			Description: fmt.Sprintf("Grant type '%s' is not supported. Use 'authorization_code' or 'refresh_token'", req.GrantType),
		}
	}
}

func (s *Service) authorizationCode(req TokenRequest) (*TokenResponse, *Error) {
	if req.Code == "" {
		return nil, &Error{
			Code:        "invalid_request",
			Description: "The 'code' parameter is required for grant_type=authorization_code",
		}
	}

	access := "ya29.mock_" + uuid.NewString()
	refresh := "1//mock_" + uuid.NewString()
	expiresIn := int64(defaultExpirySeconds)
	if req.ExpiresIn != nil {
		expiresIn = *req.ExpiresIn
	}
	scope := req.Scope
	if scope == "" {
		scope = s.defaultScope
	}

	meta := tokenMetadata{issuedAt: s.now(), expiresIn: expiresIn, scope: scope}
	s.mu.Lock()
	s.tokens[access] = meta
	// The refresh token shares metadata so its scope survives refreshes.
	s.tokens[refresh] = meta
	s.mu.Unlock()

	if telemetry.OAuthTokensIssued != nil {
		telemetry.OAuthTokensIssued.Inc()
	}
	s.logger.Debug("access token issued", logpkg.Str("grant_type", "authorization_code"))

	return &TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		Scope:        scope,
	}, nil
}

func (s *Service) refreshToken(req TokenRequest) (*TokenResponse, *Error) {
	if req.RefreshToken == "" {
		return nil, &Error{
			Code:        "invalid_request",
			Description: "The 'refresh_token' parameter is required for grant_type=refresh_token",
		}
	}

	scope := req.Scope
	if scope == "" {
		if orig, ok := s.ScopeOf(req.RefreshToken); ok {
			scope = orig
		} else {
			scope = s.defaultScope
		}
	}

	access := "ya29.mock_" + uuid.NewString()
	expiresIn := int64(defaultExpirySeconds)
	if req.ExpiresIn != nil {
		expiresIn = *req.ExpiresIn
	}

	s.mu.Lock()
	s.tokens[access] = tokenMetadata{issuedAt: s.now(), expiresIn: expiresIn, scope: scope}
	s.mu.Unlock()

	if telemetry.OAuthTokensIssued != nil {
		telemetry.OAuthTokensIssued.Inc()
	}
	s.logger.Debug("access token issued", logpkg.Str("grant_type", "refresh_token"))

	return &TokenResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Scope:       scope,
	}, nil
}

// Validate returns an error only for tokens this service minted that have
// since expired. Unknown tokens pass, so externally staged fixtures work.
func (s *Service) Validate(token string) error {
	s.mu.RLock()
	meta, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if meta.expired(s.now()) {
		return fmt.Errorf("token has expired")
	}
	return nil
}

// ScopeOf returns the scope recorded for a minted token.
func (s *Service) ScopeOf(token string) (string, bool) {
	s.mu.RLock()
	meta, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	return meta.scope, true
}
