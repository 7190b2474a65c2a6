package tandem

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tandem-a2a/tandem/a2a"
	"github.com/tandem-a2a/tandem/transport"
)

// StaticAPIKeyAuthenticator accepts requests whose configured header carries
// the one expected key. Suitable for single-tenant deployments and tests;
// anything multi-tenant wants JWTAuthenticator.
type StaticAPIKeyAuthenticator struct {
	APIKey     string
	HeaderName string // defaults to X-API-Key
}

func (s StaticAPIKeyAuthenticator) headerName() string {
	if s.HeaderName != "" {
		return s.HeaderName
	}
	return "X-API-Key"
}

func (s StaticAPIKeyAuthenticator) Authenticate(ctx context.Context, r *http.Request) (*http.Request, error) {
	got := r.Header.Get(s.headerName())
	switch {
	case got == "":
		return nil, transport.NewAuthErrorWithScheme(
			transport.AuthErrorCodeMissingCredentials,
			fmt.Sprintf("missing %s header", s.headerName()),
			"apiKey")
	case got != s.APIKey:
		return nil, transport.NewAuthErrorWithScheme(
			transport.AuthErrorCodeInvalidCredentials,
			"invalid API key",
			"apiKey")
	}
	// Nothing identity-specific to add to the context for a shared key.
	return r, nil
}

func (s StaticAPIKeyAuthenticator) GetSecuritySchemes() map[string]a2a.SecurityScheme {
	return map[string]a2a.SecurityScheme{
		"apiKey": {
			Type:        a2a.SecurityTypeAPIKey,
			Description: "API key authentication",
			Name:        s.headerName(),
			In:          "header",
		},
	}
}

func (s StaticAPIKeyAuthenticator) GetSecurityRequirements() []map[string][]string {
	return []map[string][]string{{"apiKey": {}}}
}

// JWTAuthenticator verifies HMAC-signed bearer tokens. Signature, expiry and
// (when configured) audience come from the jwt parser; ValidateFunc hooks in
// application-level claim checks.
type JWTAuthenticator struct {
	SecretKey     []byte
	SigningMethod jwt.SigningMethod // defaults to HS256 via NewJWTAuthenticator
	Audience      string            // empty skips audience validation
	ValidateFunc  func(claims jwt.MapClaims) error
}

// NewJWTAuthenticator returns an HS256 authenticator for the secret.
func NewJWTAuthenticator(secretKey []byte) *JWTAuthenticator {
	return &JWTAuthenticator{
		SecretKey:     secretKey,
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// WithSigningMethod overrides the accepted signing method.
func (j *JWTAuthenticator) WithSigningMethod(method jwt.SigningMethod) *JWTAuthenticator {
	j.SigningMethod = method
	return j
}

// WithAudience requires tokens to carry the audience claim.
func (j *JWTAuthenticator) WithAudience(audience string) *JWTAuthenticator {
	j.Audience = audience
	return j
}

// WithValidateFunc installs an application-level claims check.
func (j *JWTAuthenticator) WithValidateFunc(fn func(claims jwt.MapClaims) error) *JWTAuthenticator {
	j.ValidateFunc = fn
	return j
}

func bearerReject(code, message string) *transport.AuthError {
	return transport.NewAuthErrorWithScheme(code, message, "bearer")
}

func (j *JWTAuthenticator) Authenticate(ctx context.Context, r *http.Request) (*http.Request, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, bearerReject(transport.AuthErrorCodeMissingCredentials, "missing Authorization header")
	}
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return nil, bearerReject(transport.AuthErrorCodeInvalidCredentials, "invalid Authorization header format")
	}

	parseOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{j.SigningMethod.Alg()}),
	}
	if j.Audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(j.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return j.SecretKey, nil
	}, parseOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, bearerReject(transport.AuthErrorCodeExpiredCredentials, "JWT token has expired")
		}
		return nil, bearerReject(transport.AuthErrorCodeInvalidCredentials, fmt.Sprintf("invalid JWT: %v", err))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, bearerReject(transport.AuthErrorCodeInvalidCredentials, "invalid JWT claims")
	}
	if j.ValidateFunc != nil {
		if err := j.ValidateFunc(claims); err != nil {
			return nil, bearerReject(transport.AuthErrorCodeInvalidCredentials, fmt.Sprintf("JWT validation failed: %v", err))
		}
	}

	ctx = context.WithValue(r.Context(), jwtClaimsKey{}, claims)
	ctx = context.WithValue(ctx, jwtTokenKey{}, tokenString)
	return r.WithContext(ctx), nil
}

func (j *JWTAuthenticator) GetSecuritySchemes() map[string]a2a.SecurityScheme {
	return map[string]a2a.SecurityScheme{
		"bearer": {
			Type:         a2a.SecurityTypeHTTP,
			Description:  "JWT Bearer token authentication",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
}

func (j *JWTAuthenticator) GetSecurityRequirements() []map[string][]string {
	return []map[string][]string{{"bearer": {}}}
}

type jwtClaimsKey struct{}
type jwtTokenKey struct{}

// GetJWTClaims returns the claims JWTAuthenticator stored on the request
// context.
func GetJWTClaims(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(jwtClaimsKey{}).(jwt.MapClaims)
	return claims, ok
}

// GetJWTToken returns the raw bearer token string from the request context.
func GetJWTToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(jwtTokenKey{}).(string)
	return token, ok
}

// GetJWTSubject returns the token's sub claim.
func GetJWTSubject(ctx context.Context) (string, bool) {
	claims, ok := GetJWTClaims(ctx)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	return sub, ok
}
