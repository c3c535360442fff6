package routes

import (
	"saapaadu-api/handlers"
	"saapaadu-api/middleware"
	"saapaadu-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		auth := public.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", handlers.Signup)
			auth.POST("/login", handlers.Login)
		}

		// Listings are browsable without an account
		public.GET("/hotspots", handlers.ListHotspots)
		public.GET("/hotspots/:id", handlers.GetHotspot)

		// Order transition graph (docs)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/auth/me", handlers.Me)

		// Ownership/role rules for status changes live in the service layer
		authed.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/profile", handlers.GetCustomerProfile)
		customer.PUT("/profile", handlers.UpdateCustomerProfile)

		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.MyOrders)

		customer.GET("/notifications", handlers.GetNotifications)
		customer.PUT("/notifications/:id/read", handlers.MarkNotificationRead)
	}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleVendor))
	{
		vendor.GET("/profile", handlers.GetVendorProfile)
		vendor.PUT("/profile", handlers.UpdateVendorProfile)

		vendor.POST("/hotspots", handlers.CreateHotspot)
		vendor.GET("/hotspots", handlers.MyHotspots)
		vendor.PUT("/hotspots/:id", handlers.UpdateHotspot)
		vendor.DELETE("/hotspots/:id", handlers.DeleteHotspot)

		vendor.GET("/orders", handlers.VendorOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminListUsers)
		admin.GET("/hotspots", handlers.AdminListHotspots)
		admin.GET("/orders", handlers.AdminListOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
	}
}
