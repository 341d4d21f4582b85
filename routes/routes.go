package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(dishRepo)
	cartSvc := services.NewCartService(cartRepo, dishRepo)
	promoSvc := services.NewPromoService(promoRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, promoRepo, promoSvc)
	favSvc := services.NewFavoriteService(favRepo, dishRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, dishRepo)
	adminSvc := services.NewAdminService(userRepo, dishRepo, orderRepo, activityRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	promoCtrl := controllers.NewPromoController(promoSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, adminSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")
	logged := func(action, entityType, idParam string) gin.HandlerFunc {
		return middlewares.LogActivity(activityRepo, action, entityType, idParam)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", logged("REGISTER", "USER", ""), authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", logged("UPDATE_PROFILE", "USER", ""), authCtrl.UpdateMe)
	}

	// Catalog (public reads, admin writes)
	r.GET("/dishes", dishCtrl.List)
	r.GET("/dishes/popular", dishCtrl.Popular)
	r.GET("/dishes/new", dishCtrl.Newest)
	r.GET("/dishes/:dishId", dishCtrl.Detail)
	r.POST("/dishes", adminOnly, logged("CREATE_DISH", "DISH", ""), dishCtrl.Create)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add/:dishId", logged("ADD_TO_CART", "DISH", "dishId"), cartCtrl.Add)
		cart.PUT("/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/:itemId", cartCtrl.Remove)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("/confirm", logged("CONFIRM_ORDER", "ORDER", ""), orderCtrl.Confirm)
		orders.GET("", orderCtrl.List)
		orders.GET("/:orderId", orderCtrl.Detail)
	}

	// Favorites
	favs := r.Group("/favorites", auth)
	{
		favs.GET("", favCtrl.List)
		favs.POST("/add/:dishId", favCtrl.Add)
		favs.DELETE("/:dishId", favCtrl.Remove)
	}

	// Reviews
	r.GET("/reviews/dish/:dishId", reviewCtrl.ListForDish)
	r.POST("/reviews/dish/:dishId", auth, logged("ADD_REVIEW", "DISH", "dishId"), reviewCtrl.Add)

	// Promo codes
	r.POST("/promos/validate", auth, promoCtrl.Validate)

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:orderId/status", logged("UPDATE_ORDER_STATUS", "ORDER", "orderId"), adminCtrl.UpdateOrderStatus)
		admin.GET("/stats", adminCtrl.Stats)
		admin.GET("/activity", adminCtrl.Activity)
		admin.GET("/promos", promoCtrl.List)
		admin.POST("/promos", logged("CREATE_PROMO", "PROMO", ""), promoCtrl.Create)
		admin.PATCH("/promos/:promoId/toggle", promoCtrl.Toggle)
	}
}
