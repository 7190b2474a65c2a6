package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tandem-a2a/tandem/a2a"
)

// Authenticator guards the JSON-RPC endpoint. Authenticate inspects the
// incoming request and either returns a request enriched with identity
// context or an *AuthError describing the rejection. The scheme accessors
// feed the agent card so clients can discover how to authenticate.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (*http.Request, error)
	GetSecuritySchemes() map[string]a2a.SecurityScheme
	GetSecurityRequirements() []map[string][]string
}

// Machine-readable rejection codes carried in the JSON-RPC error data of a
// 401 response.
const (
	AuthErrorCodeMissingCredentials = "missing_credentials"
	AuthErrorCodeInvalidCredentials = "invalid_credentials"
	AuthErrorCodeExpiredCredentials = "expired_credentials"
	AuthErrorCodeInsufficientScope  = "insufficient_scope"
)

// AuthError is the rejection an Authenticator returns. Scheme names the
// security scheme that rejected the request, when known.
type AuthError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Scheme  string `json:"scheme,omitempty"`
}

func (e *AuthError) Error() string {
	if e.Scheme != "" {
		return fmt.Sprintf("authentication failed [%s:%s]: %s", e.Scheme, e.Code, e.Message)
	}
	return fmt.Sprintf("authentication failed [%s]: %s", e.Code, e.Message)
}

// NewAuthError builds an AuthError without scheme attribution.
func NewAuthError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// NewAuthErrorWithScheme builds an AuthError attributed to a security scheme.
func NewAuthErrorWithScheme(code, message, scheme string) *AuthError {
	return &AuthError{Code: code, Message: message, Scheme: scheme}
}
