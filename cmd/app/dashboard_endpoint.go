package main

import (
	"net/http"

	"BookStoreAPI/internal/middleware"
	"BookStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerDashboardRoutes mounts the admin analytics endpoint. Requires
// an admin token minted by the commerce backend.
func registerDashboardRoutes(g *echo.Group, ds *services.DashboardService) {
	p := g.Group("/admin")
	p.Use(middleware.JWTMiddleware())

	p.GET("/dashboard", func(c echo.Context) error {
		overview, err := ds.GetOverview(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, overview)
	}, middleware.AdminOnly)
}
