package main

import (
	"net/http"
	"strconv"

	"BookStoreAPI/internal/model"
	"BookStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	p := g.Group("/wishlist")

	// GET wishlist
	p.GET("", func(c echo.Context) error {
		items := ws.Items()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"items": items,
			"count": len(items),
		})
	})

	// TOGGLE item (add if absent, remove if present)
	p.POST("/toggle", func(c echo.Context) error {
		req := new(model.Book)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.BookID == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bookid required"})
		}
		present, err := ws.Toggle(*req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"present": present})
	})

	// membership check for a single book
	p.GET("/:bookid", func(c echo.Context) error {
		bookID, err := strconv.ParseInt(c.Param("bookid"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		return c.JSON(http.StatusOK, map[string]bool{"present": ws.Store.IsPresent(bookID)})
	})

	// CLEAR wishlist
	p.DELETE("", func(c echo.Context) error {
		if err := ws.Clear(); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	// MOVE everything to the backend cart, best-effort
	p.POST("/move-to-cart", func(c echo.Context) error {
		res, err := ws.MoveAllToCart(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		status := http.StatusOK
		if len(res.Failed) > 0 {
			status = http.StatusMultiStatus
		}
		return c.JSON(status, res)
	})
}
