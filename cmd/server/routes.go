package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/handlers"
	"blockpharma.backend/internal/interfaces/http/middleware"
	"blockpharma.backend/pkg/metrics"
)

const (
	serviceName    = "blockpharma-backend"
	serviceVersion = "1.0.0"
)

type routeDeps struct {
	userHandler      *handlers.UserHandler
	vendorHandler    *handlers.VendorHandler
	pharmacyHandler  *handlers.PharmacyHandler
	productHandler   *handlers.ProductHandler
	inventoryHandler *handlers.InventoryHandler
	orderHandler     *handlers.OrderHandler
	countsHandler    *handlers.CountsHandler
	authMiddleware   gin.HandlerFunc
	idempotencyTTL   time.Duration
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, Idempotency-Key")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	pharmacyOnly := middleware.RequireRole(entities.UserRolePharmacy)
	supplierOnly := middleware.RequireRole(entities.UserRoleSupplier)

	api := r.Group("/api")
	api.GET("/counts", d.countsHandler.GetCounts)

	user := api.Group("/user")
	{
		user.POST("/register", d.userHandler.Register)
		user.POST("/login", d.userHandler.Login)

		authed := user.Group("", d.authMiddleware)
		authed.GET("/me", d.userHandler.Me)
		authed.GET("/get-details", d.userHandler.GetDetails)
		authed.PUT("/update", d.userHandler.UpdateUser)
		authed.PUT("/upgrade-user", d.userHandler.UpgradeUser)
		authed.PUT("/change-password", d.userHandler.ChangePassword)
		authed.PUT("/complete-profile", d.userHandler.CompleteProfile)
		authed.POST("/add-address", d.userHandler.AddAddress)
		authed.PUT("/update-address", d.userHandler.UpdateAddress)
		authed.DELETE("/delete", d.userHandler.DeleteUser)
		authed.GET("/getAll", middleware.RequireAdmin(), d.userHandler.ListUsers)
	}

	supplier := api.Group("/supplier", d.authMiddleware)
	{
		supplier.POST("/add", supplierOnly, d.vendorHandler.AddOrganization)
		supplier.PUT("/update/:id", supplierOnly, d.vendorHandler.UpdateOrganization)
		supplier.GET("/get", d.vendorHandler.ListMine)
		supplier.GET("/get/:id", d.vendorHandler.GetOrganization)
		supplier.GET("/getAll", d.vendorHandler.ListAll)
		supplier.DELETE("/delete/:id", d.vendorHandler.DeleteOrganization)
		supplier.PUT("/toggle/:id", d.vendorHandler.ToggleStatus)
	}

	pharmacy := api.Group("/pharmacy/outlet", d.authMiddleware)
	{
		pharmacy.POST("/add", pharmacyOnly, d.pharmacyHandler.AddOutlet)
		pharmacy.GET("/get/:id", d.pharmacyHandler.GetOutlet)
		pharmacy.GET("/getall", d.pharmacyHandler.ListAll)
		pharmacy.GET("/mine", d.pharmacyHandler.ListMine)
		pharmacy.PUT("/update/:id", pharmacyOnly, d.pharmacyHandler.UpdateOutlet)
		pharmacy.DELETE("/delete/:id", pharmacyOnly, d.pharmacyHandler.DeleteOutlet)
	}

	products := api.Group("/products", d.authMiddleware)
	{
		products.POST("", supplierOnly, d.productHandler.CreateProduct)
		products.POST("/bulk", supplierOnly, d.productHandler.CreateBulk)
		products.GET("/vendor/:vendorOrgId", d.productHandler.ListByVendor)
		products.GET("/:id", d.productHandler.GetProduct)
		products.PUT("/:id", supplierOnly, d.productHandler.UpdateProduct)
		products.DELETE("/:id", supplierOnly, d.productHandler.DeleteProduct)
	}

	inventory := api.Group("/inventory", d.authMiddleware)
	{
		inventory.POST("", d.inventoryHandler.AddToInventory)
		inventory.GET("/:pharmacyOutletId", d.inventoryHandler.GetInventoryByPharmacy)
		inventory.PUT("/:id", d.inventoryHandler.UpdateInventoryItem)
		inventory.DELETE("/:id", d.inventoryHandler.DeleteInventoryItem)
	}

	orders := api.Group("/orders", d.authMiddleware)
	{
		orders.POST("", pharmacyOnly, middleware.IdempotencyMiddleware(d.idempotencyTTL), d.orderHandler.CreateOrder)
		orders.GET("/all", pharmacyOnly, d.orderHandler.ListForPharmacist)
		orders.GET("/pharmacy/:pharmacyOutletId", pharmacyOnly, d.orderHandler.ListForOutlet)
		orders.GET("/vendor/pending", supplierOnly, d.orderHandler.ListPendingForSupplier)
		orders.GET("/vendor/:id", d.orderHandler.ListForSupplier)
		orders.GET("/organization/:vendorOrgId", d.orderHandler.ListForVendor)
		orders.PUT("/:id/status", supplierOnly, d.orderHandler.UpdateOrderStatus)
		orders.GET("/:id", d.orderHandler.GetOrder)
		orders.GET("/:id/records", d.orderHandler.ListRecords)
	}
}
