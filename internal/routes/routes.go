package routes

import (
	"net/http"
	"os"

	"jasarumah-backend/internal/handlers"
	"jasarumah-backend/internal/middleware"
	"jasarumah-backend/internal/repository"
	"jasarumah-backend/internal/services"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// Wiring: repo -> service -> handler
	userRepo := repository.NewUserRepository(db)
	mitraRepo := repository.NewMitraRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	notifier := services.NewNotificationService(notifRepo, userRepo, mitraRepo)
	orderService := services.NewOrderService(orderRepo, serviceRepo, mitraRepo, notifier)

	authHandler := handlers.NewAuthHandler(userRepo, mitraRepo, adminRepo)
	customerHandler := handlers.NewCustomerHandler(orderService, orderRepo, serviceRepo, userRepo, notifRepo)
	mitraHandler := handlers.NewMitraHandler(orderService, orderRepo, mitraRepo, notifRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, mitraRepo, orderRepo, serviceRepo, reportRepo, notifier)

	// Health check (tanpa auth, buat monitoring)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    os.Getenv("APP_ENV"),
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleLogin)
			auth.POST("/mitra/register", authHandler.MitraRegister)
			auth.POST("/mitra/login", authHandler.MitraLogin)
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.GET("/profile", middleware.AuthMiddleware(), authHandler.Profile)
		}

		customer := api.Group("/customer")
		customer.Use(middleware.AuthMiddleware(), middleware.CustomerOnly())
		{
			customer.GET("/services", customerHandler.GetServices)
			customer.GET("/services/:type", customerHandler.GetServicesByType)
			customer.POST("/orders", customerHandler.CreateOrder)
			customer.GET("/orders", customerHandler.GetMyOrders)
			customer.GET("/orders/:id", customerHandler.GetOrderDetail)
			customer.PUT("/orders/:id/cancel", customerHandler.CancelOrder)
			customer.PUT("/profile", customerHandler.UpdateProfile)
			customer.GET("/notifications", customerHandler.GetNotifications)
			customer.PUT("/notifications/:id/read", customerHandler.MarkNotificationRead)
		}

		mitra := api.Group("/mitra")
		mitra.Use(middleware.AuthMiddleware(), middleware.MitraOnly())
		{
			mitra.GET("/orders/available", mitraHandler.GetAvailableOrders)
			mitra.GET("/orders/my-orders", mitraHandler.GetMyOrders)
			mitra.GET("/orders/:id", mitraHandler.GetOrderDetail)
			mitra.POST("/orders/:id/accept", mitraHandler.AcceptOrder)
			mitra.POST("/orders/:id/reject", mitraHandler.RejectOrder)
			mitra.PUT("/orders/:id/start", mitraHandler.StartOrder)
			mitra.PUT("/orders/:id/complete", mitraHandler.CompleteOrder)
			mitra.PUT("/profile", mitraHandler.UpdateProfile)
			mitra.GET("/stats", mitraHandler.GetStats)
			mitra.GET("/notifications", mitraHandler.GetNotifications)
			mitra.PUT("/notifications/:id/read", mitraHandler.MarkNotificationRead)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			admin.GET("/users", adminHandler.GetUsers)
			admin.GET("/mitra", adminHandler.GetMitra)
			admin.PUT("/mitra/:id/verify", adminHandler.VerifyMitra)
			admin.PUT("/mitra/:id/status", adminHandler.UpdateMitraStatus)
			admin.GET("/orders", adminHandler.GetOrders)
			admin.GET("/orders/:id", adminHandler.GetOrderDetail)
			admin.GET("/services", adminHandler.GetServices)
			admin.POST("/services", adminHandler.CreateService)
			admin.PUT("/services/:id", adminHandler.UpdateService)
			admin.GET("/reports/daily", adminHandler.DailyReport)
			admin.GET("/reports/monthly", adminHandler.MonthlyReport)
			admin.GET("/dashboard", adminHandler.Dashboard)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		utils.APIResponse(c, http.StatusNotFound, false, "Endpoint tidak ditemukan", nil)
	})
}
