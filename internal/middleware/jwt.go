package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/arvele/storefront-api/internal/utils" // token parsing with the canonical Claims shape
)

// Context keys under which the verified identity is stored. Handlers read
// them back via c.Get().
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxEmail    = "email"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the verified identity into the request context. The provided
// secret must match the one used when issuing tokens. Every rejection
// short-circuits before the wrapped handler runs, so a failed auth check
// can never leave partial side effects. The three failure shapes are kept
// distinct for the client:
//
//	no Authorization header      -> 401 "missing bearer token"
//	header without Bearer prefix -> 401 "invalid authorization header"
//	token fails verification     -> 401 "invalid or expired token"
//
// The verification sub-reason (malformed, bad signature, expired) is only
// logged, never exposed.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization header"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				c.Logger().Debugf("token rejected: %v", err)
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxEmail, claims.Email)
			return next(c)
		}
	}
}
