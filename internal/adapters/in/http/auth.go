package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	tokenUser = "api-client"
	tokenRole = "admin"

	claimsContextKey = "claims"

	MsgLoginSucceeded     = "authentication succeeded"
	MsgInvalidCredentials = "invalid credentials"
	MsgTokenMissing       = "access denied: token not provided"
	MsgTokenMalformed     = "malformed token: use Bearer <token>"
	MsgTokenInvalid       = "invalid or expired token"
)

var ErrEmptySigningSecret = errors.New("token signing secret must not be empty")

// Claims are the JWT claims of an issued token.
type Claims struct {
	User string `json:"user"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer whose tokens expire ttl after issue.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySigningSecret
	}

	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a new token for user.
func (t *TokenIssuer) Issue(user string) (string, error) {
	now := t.now()
	claims := Claims{
		User: user,
		Role: tokenRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature, algorithm and expiry of a token.
func (t *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// BearerAuth rejects requests without a valid bearer token. A missing or
// malformed Authorization header is 401; a token that fails verification is 403.
func BearerAuth(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: MsgTokenMissing})
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: MsgTokenMalformed})
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, ErrorResponse{Error: MsgTokenInvalid})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims BearerAuth stored on the context.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}
