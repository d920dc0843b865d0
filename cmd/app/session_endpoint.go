package main

import (
	"net/http"

	"BookStoreAPI/internal/session"

	"github.com/labstack/echo/v4"
)

type setTokenRequest struct {
	Token string `json:"token"`
}

type setPendingEmailRequest struct {
	Email string `json:"email"`
}

// registerSessionRoutes stores the backend-issued bearer token and the
// pending-verification email. The auth flows themselves (login, OTP)
// run against the commerce backend directly; this service only keeps
// the values so the API client can attach the token upstream.
func registerSessionRoutes(g *echo.Group, ss *session.Store) {
	p := g.Group("/session")

	p.PUT("/token", func(c echo.Context) error {
		req := new(setTokenRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ss.SetToken(req.Token); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "stored"})
	})

	p.DELETE("/token", func(c echo.Context) error {
		if err := ss.SetToken(""); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	p.PUT("/pending-email", func(c echo.Context) error {
		req := new(setPendingEmailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ss.SetPendingEmail(req.Email); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "stored"})
	})

	p.GET("/pending-email", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"email": ss.PendingEmail()})
	})
}
