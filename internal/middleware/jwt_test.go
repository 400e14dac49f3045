package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvele/storefront-api/internal/utils"
)

const testSecret = "gate-secret"

// invoke runs the JWTAuth middleware around a handler that records whether
// it was reached and what identity the gate stored.
func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	err := JWTAuth(testSecret)(next)(c)
	require.NoError(t, err)
	return rec, reached, c
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec, reached, _ := invoke(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
	assert.False(t, reached, "handler must not run without a token")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	rec, reached, _ := invoke(t, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header")
	assert.False(t, reached)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"garbage": "Bearer not.a.jwt",
		"wrong secret": func() string {
			tok, _ := utils.NewAccessToken("other-secret", 5, "eve", "eve@example.com", 60)
			return "Bearer " + tok.Token
		}(),
		"expired": func() string {
			tok, _ := utils.NewAccessToken(testSecret, 5, "eve", "eve@example.com", -5)
			return "Bearer " + tok.Token
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			rec, reached, _ := invoke(t, raw)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid or expired token")
			assert.False(t, reached)
		})
	}
}

func TestJWTAuth_ValidTokenInjectsClaims(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 42, "alice", "alice@example.com", 60)
	require.NoError(t, err)

	rec, reached, c := invoke(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, uint64(42), c.Get(CtxUserID))
	assert.Equal(t, "alice", c.Get(CtxUsername))
	assert.Equal(t, "alice@example.com", c.Get(CtxEmail))
}
