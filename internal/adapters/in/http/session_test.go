package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	waterhttp "waterflow/internal/adapters/in/http"
	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/authctx"
	"waterflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionManager(t *testing.T) {
	t.Run("should reject empty secret", func(t *testing.T) {
		_, err := waterhttp.NewSessionManager("", time.Hour)
		require.ErrorIs(t, err, waterhttp.ErrSessionSecretIsRequired)
	})

	t.Run("should create manager with secret", func(t *testing.T) {
		manager, err := waterhttp.NewSessionManager("test-secret", time.Hour)
		require.NoError(t, err)
		assert.NotNil(t, manager)
	})
}

func TestSessionManager_IssueAndParse(t *testing.T) {
	manager, err := waterhttp.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("should round trip an admin principal", func(t *testing.T) {
		principal := authctx.Principal{
			UserID: kernel.NewUUID(),
			Role:   account.RoleAdmin,
		}

		cookie, err := manager.Issue(principal)
		require.NoError(t, err)
		assert.Equal(t, waterhttp.SessionCookieName, cookie.Name)
		assert.True(t, cookie.HttpOnly)

		parsed, err := manager.Parse(cookie.Value)
		require.NoError(t, err)
		assert.True(t, parsed.UserID.IsEqual(principal.UserID))
		assert.Equal(t, account.RoleAdmin, parsed.Role)
		assert.Nil(t, parsed.CustomerID)
		assert.Nil(t, parsed.AgentID)
	})

	t.Run("should round trip linked profile ids", func(t *testing.T) {
		customerID := kernel.NewUUID()
		principal := authctx.Principal{
			UserID:     kernel.NewUUID(),
			Role:       account.RoleCustomer,
			CustomerID: &customerID,
		}

		cookie, err := manager.Issue(principal)
		require.NoError(t, err)

		parsed, err := manager.Parse(cookie.Value)
		require.NoError(t, err)
		require.NotNil(t, parsed.CustomerID)
		assert.True(t, parsed.CustomerID.IsEqual(customerID))
	})

	t.Run("should reject token signed with another secret", func(t *testing.T) {
		other, err := waterhttp.NewSessionManager("other-secret", time.Hour)
		require.NoError(t, err)

		cookie, err := other.Issue(authctx.Principal{
			UserID: kernel.NewUUID(),
			Role:   account.RoleAdmin,
		})
		require.NoError(t, err)

		_, err = manager.Parse(cookie.Value)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject expired token", func(t *testing.T) {
		// NewSessionManager treats non-positive ttl as the default
		// lifetime, so expiry is produced through a manager whose
		// tokens are already stale.
		shortLived, err := waterhttp.NewSessionManager("test-secret", time.Nanosecond)
		require.NoError(t, err)

		cookie, err := shortLived.Issue(authctx.Principal{
			UserID: kernel.NewUUID(),
			Role:   account.RoleAdmin,
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = manager.Parse(cookie.Value)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject garbage token", func(t *testing.T) {
		_, err := manager.Parse("not-a-jwt")
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestSessionManager_Clear(t *testing.T) {
	manager, err := waterhttp.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	cookie := manager.Clear()
	assert.Equal(t, waterhttp.SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestSessionManager_Middleware(t *testing.T) {
	manager, err := waterhttp.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	captureHandler := func(captured *authctx.Principal, ok *bool) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, found := authctx.FromContext(c.Request().Context())
			*captured = p
			*ok = found
			return c.NoContent(nethttp.StatusOK)
		}
	}

	t.Run("should attach principal from valid cookie", func(t *testing.T) {
		principal := authctx.Principal{
			UserID: kernel.NewUUID(),
			Role:   account.RoleAdmin,
		}
		cookie, err := manager.Issue(principal)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var captured authctx.Principal
		var ok bool
		err = manager.Middleware()(captureHandler(&captured, &ok))(c)
		require.NoError(t, err)

		require.True(t, ok)
		assert.True(t, captured.UserID.IsEqual(principal.UserID))
	})

	t.Run("should pass through without cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var captured authctx.Principal
		var ok bool
		err := manager.Middleware()(captureHandler(&captured, &ok))(c)
		require.NoError(t, err)

		assert.False(t, ok)
	})

	t.Run("should pass through with tampered cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
		req.AddCookie(&nethttp.Cookie{Name: waterhttp.SessionCookieName, Value: "tampered"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var captured authctx.Principal
		var ok bool
		err := manager.Middleware()(captureHandler(&captured, &ok))(c)
		require.NoError(t, err)

		assert.False(t, ok)
	})
}
