package routes

import (
	"time"

	"catering/handlers"
	"catering/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in and session endpoints. Only login is public.
func RegisterAuthRoutes(api *gin.RouterGroup, protected gin.HandlerFunc, hb *handlers.HandlerBundle) {
	group := api.Group("/auth")
	{
		group.POST("/login", hb.AuthHandler.LoginHandler)

		group.Use(protected)
		group.POST("/logout", hb.AuthHandler.LogoutHandler)
		group.GET("/session", hb.AuthHandler.SessionHandler)
	}
}

// RegisterReservationRoutes registers the official reservation endpoints.
func RegisterReservationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	group := api.Group("/reservations")
	{
		group.GET("", hb.ReservationHandler.ListHandler)
		group.POST("", hb.ReservationHandler.CreateHandler)
		group.GET("/export", hb.ReservationHandler.ExportHandler)
		group.GET("/:id", hb.ReservationHandler.GetHandler)
		group.PATCH("/:id", hb.ReservationHandler.UpdateHandler)
		group.DELETE("/:id", hb.ReservationHandler.DeleteHandler)
	}
}

// RegisterOnlineRoutes registers the staged online reservation endpoints.
func RegisterOnlineRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	group := api.Group("/online")
	{
		group.GET("", hb.OnlineHandler.ListHandler)
		group.POST("/purge", hb.OnlineHandler.PurgeHandler)
		group.POST("/:id/promote", hb.OnlineHandler.PromoteHandler)
		group.DELETE("/:id", hb.OnlineHandler.RejectHandler)
	}
}

// RegisterCatalogRoutes registers package and menu item endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	packages := api.Group("/packages")
	{
		packages.GET("", hb.CatalogHandler.ListPackagesHandler)
		packages.POST("", hb.CatalogHandler.CreatePackageHandler)
		packages.GET("/:id", hb.CatalogHandler.GetPackageHandler)
		packages.PATCH("/:id", hb.CatalogHandler.UpdatePackageHandler)
		packages.DELETE("/:id", hb.CatalogHandler.DeletePackageHandler)
	}

	items := api.Group("/menu-items")
	{
		items.GET("", hb.CatalogHandler.ListMenuItemsHandler)
		items.POST("", hb.CatalogHandler.CreateMenuItemHandler)
		items.GET("/:id", hb.CatalogHandler.GetMenuItemHandler)
		items.PATCH("/:id", hb.CatalogHandler.UpdateMenuItemHandler)
		items.DELETE("/:id", hb.CatalogHandler.DeleteMenuItemHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	protected := middleware.AuthMiddleware(hb.Auth)
	api := r.Group("/api")
	RegisterAuthRoutes(api, protected, hb)

	secured := api.Group("")
	secured.Use(protected)
	RegisterReservationRoutes(secured, hb)
	RegisterOnlineRoutes(secured, hb)
	RegisterCatalogRoutes(secured, hb)

	secured.GET("/calendar", hb.CalendarHandler.MonthHandler)
	secured.GET("/calendar/upcoming", hb.CalendarHandler.UpcomingHandler)
	secured.GET("/dashboard", hb.DashboardHandler.SummaryHandler)
	secured.GET("/account", hb.AccountHandler.GetHandler)
	secured.PATCH("/account", hb.AccountHandler.UpdateHandler)
}
