package http

import (
	"errors"
	"net/http"
	"time"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/authctx"
	"waterflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "waterflow_session"

var ErrSessionSecretIsRequired = errors.New("session secret is required")

// SessionManager signs and verifies session cookies. Tokens are HS256
// JWTs carrying the account id, role, and linked profile ids.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	Role       string  `json:"role"`
	CustomerID *string `json:"customerId,omitempty"`
	AgentID    *string `json:"agentId,omitempty"`
	jwt.RegisteredClaims
}

// NewSessionManager creates a session manager with the given signing
// secret and token lifetime.
func NewSessionManager(secret string, ttl time.Duration) (*SessionManager, error) {
	if secret == "" {
		return nil, ErrSessionSecretIsRequired
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a session token for the principal and wraps it in a cookie.
func (m *SessionManager) Issue(p authctx.Principal) (*http.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		Role:       p.Role.String(),
		CustomerID: uuidPtrToString(p.CustomerID),
		AgentID:    uuidPtrToString(p.AgentID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear returns an expired cookie that removes the session.
func (m *SessionManager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Parse verifies a session token and reconstructs the principal.
func (m *SessionManager) Parse(token string) (authctx.Principal, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(_ *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return authctx.Principal{}, errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return authctx.Principal{}, errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return authctx.Principal{}, errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}

	p := authctx.Principal{UserID: userID, Role: role}
	if p.CustomerID, err = parseOptionalID(claims.CustomerID); err != nil {
		return authctx.Principal{}, errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}
	if p.AgentID, err = parseOptionalID(claims.AgentID); err != nil {
		return authctx.Principal{}, errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}
	return p, nil
}

func parseOptionalID(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Middleware resolves the session cookie into a principal and attaches
// it to the request context. Requests without a valid session pass
// through unauthenticated; handlers that need a session reject them via
// authctx.RequireSession.
func (m *SessionManager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			principal, err := m.Parse(cookie.Value)
			if err != nil {
				return next(c)
			}

			ctx := authctx.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
