package routes

import (
	"github.com/Nomet5/cake-app-sub001/configs"
	"github.com/Nomet5/cake-app-sub001/controllers"
	"github.com/Nomet5/cake-app-sub001/middlewares"
	"github.com/Nomet5/cake-app-sub001/repository"
	"github.com/Nomet5/cake-app-sub001/services"
	"github.com/Nomet5/cake-app-sub001/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services, and controllers onto the
// engine. Everything is constructed here and passed down; nothing reaches
// for package-level state.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logrus.Logger, hub *ws.NotificationHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	chefRepo := repository.NewChefRepository(db)
	prodRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, hub, log)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	chefSvc := services.NewChefService(chefRepo)
	prodSvc := services.NewProductService(db, prodRepo, notifSvc)
	cartSvc := services.NewCartService(db, cartRepo, prodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, prodRepo, chefRepo, notifSvc, cfg.DeliveryFee)
	reviewSvc := services.NewReviewService(reviewRepo, prodRepo, userRepo, orderRepo, chefRepo, notifSvc)
	statsSvc := services.NewStatsService(orderRepo, prodRepo, reviewRepo, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	chefCtrl := controllers.NewChefController(chefSvc)
	prodCtrl := controllers.NewProductController(prodSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public storefront
	r.GET("/chefs", chefCtrl.List)
	r.GET("/chefs/:id", chefCtrl.Detail)
	r.GET("/products", prodCtrl.List)
	r.GET("/products/:id", prodCtrl.Detail)
	r.GET("/products/:id/reviews", reviewCtrl.ListForProduct)

	// Customer (any authenticated user)
	user := r.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		user.GET("/cart", cartCtrl.Get)
		user.POST("/cart/items", cartCtrl.Add)
		user.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		user.DELETE("/cart/items/:id", cartCtrl.Remove)
		user.DELETE("/cart", cartCtrl.Clear)

		user.POST("/orders/checkout", orderCtrl.Checkout)
		user.GET("/orders", orderCtrl.ListForMe)
		user.GET("/orders/:id", orderCtrl.Detail)

		user.POST("/reviews", reviewCtrl.Create)
	}

	// Admin back-office
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminOrderCtrl.List)
		admin.GET("/orders/:id", adminOrderCtrl.Detail)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateStatus)
		admin.PATCH("/orders/:id/payment", adminOrderCtrl.UpdatePaymentStatus)
		admin.POST("/orders/:id/cancel", adminOrderCtrl.Cancel)
		admin.POST("/orders/:id/items", adminOrderCtrl.AddItem)
		admin.DELETE("/orders/:id/items/:itemId", adminOrderCtrl.RemoveItem)
		admin.DELETE("/orders/:id", adminOrderCtrl.Delete)

		admin.POST("/products", prodCtrl.Create)
		admin.PUT("/products/:id", prodCtrl.Update)
		admin.PATCH("/products/:id/availability", prodCtrl.SetAvailability)
		admin.DELETE("/products/:id", prodCtrl.Delete)
		admin.POST("/products/:id/images", prodCtrl.AddImage)
		admin.DELETE("/products/:id/images/:imageId", prodCtrl.DeleteImage)

		admin.POST("/chefs", chefCtrl.Create)
		admin.PUT("/chefs/:id", chefCtrl.Update)
		admin.PATCH("/chefs/:id/active", chefCtrl.SetActive)

		admin.GET("/reviews", reviewCtrl.ListAll)
		admin.PATCH("/reviews/:id/approval", reviewCtrl.SetApproval)

		admin.GET("/stats/orders", statsCtrl.Orders)
		admin.GET("/stats/products", statsCtrl.Products)
		admin.GET("/stats/reviews", statsCtrl.Reviews)

		admin.GET("/notifications", notifCtrl.List)
		admin.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
	}

	// Live admin notification feed
	r.GET("/ws/notifications", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), hub.Serve)
}
