package api

import (
	"net/http"

	"smartkasir/internal/pos"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes binds every register endpoint on the given Gin engine:
// catalog CRUD, cart assembly, the checkout flow and the sales history.
func InitRoutes(e *gin.Engine, svc *pos.Service, logger *zap.Logger) {
	h := NewPosHandler(svc, logger)

	e.GET("/products", h.handleListProducts)
	e.POST("/products", h.handleCreateProduct)
	e.PATCH("/products/:id", h.handleUpdateProduct)
	e.DELETE("/products/:id", h.handleDeleteProduct)

	e.GET("/cart", h.handleGetCart)
	e.POST("/cart/items", h.handleAddCartItem)
	e.PATCH("/cart/items/:id", h.handleSetCartQuantity)
	e.DELETE("/cart/items/:id", h.handleRemoveCartItem)
	e.DELETE("/cart", h.handleClearCart)

	e.GET("/checkout", h.handleGetCheckout)
	e.POST("/checkout", h.handleBeginCheckout)
	e.POST("/checkout/payment-method", h.handleSelectPaymentMethod)
	e.POST("/checkout/received", h.handleSetReceivedAmount)
	e.POST("/checkout/complete", h.handleCompleteCheckout)
	e.POST("/checkout/abort", h.handleAbortCheckout)

	e.GET("/transactions", h.handleListTransactions)
	e.GET("/reports/summary", h.handleSummary)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
