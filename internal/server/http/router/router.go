package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/minhdn/gameshop/internal/server/http/handlers"
	"github.com/minhdn/gameshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, banner handlers.BannerCache, responses middleware.ResponseCache, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, banner)
	depositHandler := handlers.NewDepositHandler(facade)

	api := engine.Group("/api")

	// Public storefront.
	api.GET("/categories", catalogHandler.Categories)
	api.GET("/categories/:id", catalogHandler.Category)
	api.GET("/accounts", catalogHandler.Listings)
	api.GET("/accounts/:id", catalogHandler.Listing)
	api.GET("/banner", orderHandler.Banner)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/me", authHandler.Me)
	userAuth.POST("/password", authHandler.ChangePassword)
	userAuth.GET("/balance", depositHandler.Balance)
	userAuth.POST("/purchase", middleware.Idempotency(responses, logger), orderHandler.Purchase)
	userAuth.GET("/orders", orderHandler.MyOrders)
	userAuth.GET("/orders/:id", orderHandler.Order)
	userAuth.POST("/deposits", depositHandler.RequestDeposit)
	userAuth.GET("/deposits", depositHandler.MyDeposits)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.POST("/accounts", catalogHandler.CreateListing)
	admin.PUT("/accounts/:id", catalogHandler.UpdateListing)
	admin.DELETE("/accounts/:id", catalogHandler.DeleteListing)
	admin.GET("/orders", orderHandler.AllOrders)
	admin.GET("/users", authHandler.Users)
	admin.GET("/users/:id", authHandler.User)
	admin.PUT("/users/:id", authHandler.UpdateUser)
	admin.DELETE("/users/:id", authHandler.DeleteUser)
	admin.GET("/deposits", depositHandler.AdminDeposits)
	admin.POST("/deposits/:id/review", depositHandler.ReviewDeposit)
	admin.DELETE("/deposits/:id", depositHandler.DeleteDeposit)
	admin.POST("/users/:id/money", depositHandler.AddMoney)

	return engine
}
