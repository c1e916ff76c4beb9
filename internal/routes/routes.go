package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/auth"
	"github.com/shopstack/inventory-api/internal/handlers"
	"github.com/shopstack/inventory-api/internal/middleware"
)

// CORSMiddleware mirrors the permissive policy the API has always shipped
// with: any origin, any method, any header.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, tokens *auth.TokenManager, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(CORSMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	customer := router.Group("/customer")
	{
		customer.POST("/register", h.RegisterCustomer)
		customer.POST("/login", h.LoginCustomer)
		customer.GET("/inventory", h.GetInventoryItems)
		customer.GET("/inventory/search", h.SearchInventoryItem)
		customer.POST("/purchase", h.Purchase)
		customer.GET("/:customerId/purchase-history", h.PurchaseHistory)
	}

	user := router.Group("/user")
	{
		user.POST("/register", h.RegisterUser)
		user.POST("/login", h.LoginUser)
		user.GET("/protected", middleware.RequireAuth(tokens), h.Protected)
	}

	inventory := router.Group("/inventory")
	inventory.Use(middleware.RequireAuth(tokens))
	{
		inventory.GET("/items", h.GetItems)
		inventory.GET("/items/search", h.SearchItems)
		inventory.GET("/items/:id", h.GetItemByID)
		inventory.POST("/items", h.AddItem)
		inventory.PUT("/items/:id", h.UpdateItem)
		inventory.DELETE("/items/:id", h.DeleteItem)
	}

	return router
}
