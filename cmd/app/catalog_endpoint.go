package main

import (
	"net/http"
	"strconv"
	"strings"

	"BookStoreAPI/internal/catalog"
	"BookStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes mounts the storefront listing endpoints.
//
//	GET /books    -> filtered/sorted/paginated listing
//	GET /lookups  -> category + manufacturer lists for the filter sidebar
//	GET /filters  -> initial filter state (resolves ?category= seed)
func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {
	g.GET("/books", func(c echo.Context) error {
		ctx := c.Request().Context()

		page, _ := strconv.Atoi(c.QueryParam("page"))
		params := services.BrowseParams{
			Categories:    splitParam(c.QueryParam("categories")),
			Manufacturers: splitParam(c.QueryParam("manufacturers")),
			PriceRange:    c.QueryParam("price"),
			Keyword:       c.QueryParam("q"),
			Sort:          catalog.SortKey(c.QueryParam("sort")),
			Page:          page,
			ServerSide:    c.QueryParam("mode") == "server",
		}

		result, err := cs.Browse(ctx, params)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	})

	g.GET("/lookups", func(c echo.Context) error {
		cats, mans, err := cs.Lookups(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"categories":    cats,
			"manufacturers": mans,
		})
	})

	g.GET("/filters", func(c echo.Context) error {
		state, err := cs.InitialFilter(c.Request().Context(), c.QueryParam("category"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, state)
	})
}

// splitParam parses a comma-separated multi-value query parameter.
func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
