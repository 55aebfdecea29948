package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/config"
	"github.com/EkeminiThompson/ecommerce/middleware"
	"github.com/EkeminiThompson/ecommerce/models"
)

type OrderItemInput struct {
	ProductID uint    `json:"product"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput       `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// CreateOrder persists a new order snapshot for the caller. The total price
// is computed server-side as the sum of line totals, so it stays immune to
// later product price changes.
func CreateOrder(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No order items"})
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.ProductID == 0 || it.Qty <= 0 || it.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order items must have a product, a positive qty and a non-negative price"})
			return
		}
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}

	order := models.Order{
		UserID:          identity.ID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		TotalPrice:      models.ComputeTotal(items),
	}
	if result := config.DB.WithContext(c.Request.Context()).Create(&order); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderByID returns one order, visible only to its owner or an admin.
func GetOrderByID(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var order models.Order
	id := c.Param("id")
	if err := config.DB.WithContext(c.Request.Context()).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if order.UserID != identity.ID && !identity.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed to view this order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// PayOrder marks the order paid and records the payment result. A second
// pay call overwrites the timestamp and result rather than failing.
func PayOrder(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var order models.Order
	id := c.Param("id")
	if err := config.DB.WithContext(c.Request.Context()).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if order.UserID != identity.ID && !identity.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed to pay this order"})
		return
	}

	var result models.PaymentResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = result
	if err := config.DB.WithContext(c.Request.Context()).Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetMyOrders lists the caller's own orders.
func GetMyOrders(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var orders []models.Order
	if err := config.DB.WithContext(c.Request.Context()).Preload("Items").Where("user_id = ?", identity.ID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
