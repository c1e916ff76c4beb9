package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RegisterCustomerInput struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	Email    string `json:"email" binding:"required,email"`
}

type CustomerLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PurchaseInput struct {
	ItemID   int64 `json:"itemId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
	// TotalPrice is accepted for wire compatibility but never trusted;
	// the server works from the stored item price.
	TotalPrice float64 `json:"totalPrice"`
}

// RegisterCustomer is the handler for POST /customer/register
func (h *Handlers) RegisterCustomer(c *gin.Context) {
	var input RegisterCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Customers.Register(c, input.Username, input.Password, input.Email)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customerId": customer.ID,
		"success":    true,
		"message":    "Registration successful.",
	})
}

// LoginCustomer is the handler for POST /customer/login
func (h *Handlers) LoginCustomer(c *gin.Context) {
	var input CustomerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Customers.Login(c, input.Username, input.Password)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customerId": customer.ID,
		"success":    true,
		"message":    "Login successful.",
		"username":   customer.Username,
	})
}

// GetInventoryItems is the handler for GET /customer/inventory
func (h *Handlers) GetInventoryItems(c *gin.Context) {
	items, err := h.Inventory.ListAll(c)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchInventoryItem is the handler for GET /customer/inventory/search?name=
func (h *Handlers) SearchInventoryItem(c *gin.Context) {
	name := c.Query("name")
	item, err := h.Inventory.GetByName(c, name)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Purchase is the handler for POST /customer/purchase?customerId=
func (h *Handlers) Purchase(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId query parameter is required"})
		return
	}

	var input PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Purchases.Purchase(c, customerID, input.ItemID, input.Quantity); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase successful."})
}

// PurchaseHistory is the handler for GET /customer/:customerId/purchase-history
func (h *Handlers) PurchaseHistory(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	history, err := h.Purchases.History(c, customerID)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if len(history) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No purchase history found for this customer."})
		return
	}
	c.JSON(http.StatusOK, history)
}
