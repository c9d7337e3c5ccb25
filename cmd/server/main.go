package main

import (
	"os"
	"time"

	"salesmgt/internal/auth"
	"salesmgt/internal/database"
	"salesmgt/internal/handlers"
	"salesmgt/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := database.Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found")
	}

	database.Connect()
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	// Only open when explicitly allowed in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
		log.Warn("Registration route is OPEN. Disable this in production!")
	} else {
		log.Info("Registration route is disabled")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())

	// ANY STAFF ROLE
	read := api.Group("/")
	read.Use(middleware.RequirePermission(auth.ActionRead))
	{
		read.GET("/dashboard", handlers.GetDashboard)

		read.GET("/vendors", handlers.GetVendors)
		read.GET("/vendors/:slug", handlers.GetVendor)
		read.GET("/customers", handlers.GetCustomers)
		read.GET("/customers/:id", handlers.GetCustomer)
		read.GET("/categories", handlers.GetCategories)
		read.GET("/categories/:slug", handlers.GetCategory)
		read.GET("/items", handlers.GetItems)
		read.GET("/get-items", handlers.SearchItems)
		read.GET("/items/:slug", handlers.GetItem)
		read.GET("/purchases", handlers.GetPurchases)
		read.GET("/purchases/:slug", handlers.GetPurchase)
		read.GET("/sales", handlers.GetSales)
		read.GET("/sales/:id", handlers.GetSale)
		read.GET("/deliveries", handlers.GetDeliveries)
		read.GET("/deliveries/:id", handlers.GetDelivery)
		read.GET("/profiles", handlers.GetProfiles)
		read.GET("/profiles/:slug", handlers.GetProfile)

		// Checkout is daily business, not a privileged write
		read.POST("/checkout", handlers.ProcessSale)
	}

	// EXECUTIVE & ADMIN
	write := api.Group("/")
	write.Use(middleware.RequirePermission(auth.ActionWrite))
	{
		write.POST("/vendors", handlers.AddVendor)
		write.PUT("/vendors/:slug", handlers.UpdateVendor)
		write.POST("/customers", handlers.AddCustomer)
		write.PUT("/customers/:id", handlers.UpdateCustomer)
		write.POST("/categories", handlers.AddCategory)
		write.PUT("/categories/:slug", handlers.UpdateCategory)
		write.POST("/items", handlers.AddItem)
		write.PUT("/items/:slug", handlers.UpdateItem)
		write.POST("/purchases", handlers.AddPurchase)
		write.PUT("/purchases/:slug", handlers.UpdatePurchase)
		write.POST("/deliveries", handlers.AddDelivery)
		write.PUT("/deliveries/:id", handlers.UpdateDelivery)
	}

	// ADMIN ONLY
	admin := api.Group("/")
	admin.Use(middleware.RequirePermission(auth.ActionDelete))
	{
		admin.DELETE("/vendors/:slug", handlers.DeleteVendor)
		admin.DELETE("/customers/:id", handlers.DeleteCustomer)
		admin.DELETE("/categories/:slug", handlers.DeleteCategory)
		admin.DELETE("/items/:slug", handlers.DeleteItem)
		admin.DELETE("/purchases/:slug", handlers.DeletePurchase)
		admin.DELETE("/sales/:id", handlers.DeleteSale)
		admin.DELETE("/deliveries/:id", handlers.DeleteDelivery)
		admin.PUT("/profiles/:slug", handlers.UpdateProfile)
	}

	export := api.Group("/export")
	export.Use(middleware.RequirePermission(auth.ActionExport))
	{
		export.GET("/sales.xlsx", handlers.ExportSales)
		export.GET("/purchases.xlsx", handlers.ExportPurchases)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("Server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Server failed to start")
	}
}
