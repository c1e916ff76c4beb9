package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/inventory-api/internal/services"
)

type AddItemInput struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// UpdateItemInput carries a partial overwrite; omitted fields keep their
// stored value.
type UpdateItemInput struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=0"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
}

func itemIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}

// GetItems is the handler for GET /inventory/items
func (h *Handlers) GetItems(c *gin.Context) {
	items, err := h.Inventory.ListAll(c)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID is the handler for GET /inventory/items/:id
func (h *Handlers) GetItemByID(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}

	item, err := h.Inventory.GetByID(c, id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// SearchItems is the handler for GET /inventory/items/search?searchTerm=
// An empty result is still a 200 with an empty list.
func (h *Handlers) SearchItems(c *gin.Context) {
	items, err := h.Inventory.Search(c, c.Query("searchTerm"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddItem is the handler for POST /inventory/items
func (h *Handlers) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Inventory.Create(c, input.Name, input.Quantity, input.Price)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem is the handler for PUT /inventory/items/:id
func (h *Handlers) UpdateItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}

	var input UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Inventory.Update(c, id, services.ItemUpdate{
		Name:     input.Name,
		Quantity: input.Quantity,
		Price:    input.Price,
	})
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem is the handler for DELETE /inventory/items/:id
func (h *Handlers) DeleteItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.Inventory.Delete(c, id); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
