package main

import (
	"log"
	"log/slog"
	"os"

	"BookStoreAPI/external/bookapi"
	"BookStoreAPI/internal/db"
	"BookStoreAPI/internal/events"
	"BookStoreAPI/internal/services"
	"BookStoreAPI/internal/session"
	"BookStoreAPI/internal/storage"
	"BookStoreAPI/internal/wishlist"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}

	// ======================
	// INFRA
	// ======================
	conn, err := db.Open()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	store, err := storage.NewSQLiteStorage(conn)
	if err != nil {
		log.Fatal(err)
	}
	bus := events.NewBus()
	sessions := session.NewStore(store)

	// ======================
	// EXTERNALS
	// ======================
	api, err := bookapi.NewClient(sessions.Token)
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// STORES & SERVICES
	// ======================
	wishlistStore := wishlist.NewStore(store, bus)
	bus.Subscribe(events.WishlistChanged, func() {
		slog.Info("wishlist changed", "count", wishlistStore.Count())
	})

	catalogSvc := services.NewCatalogService(api)
	wishlistSvc := services.NewWishlistService(wishlistStore, api)
	dashboardSvc := services.NewDashboardService(api)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	root := e.Group("/book-store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCatalogRoutes(root, catalogSvc)
	registerWishlistRoutes(root, wishlistSvc)
	registerDashboardRoutes(root, dashboardSvc)
	registerSessionRoutes(root, sessions)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
