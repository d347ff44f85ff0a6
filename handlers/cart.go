package handlers

import (
	"net/http"

	"little-lemon-api/middleware"
	"little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

type AddCartItemRequest struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// List returns the caller's cart with its running total.
func (h *CartHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	entries, total, err := h.Carts.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(entries),
		"total":      total,
		"cart_items": entries,
	})
}

// AddItem merges a menu item into the caller's cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Carts.AddItem(userID, req.MenuItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart_item": entry})
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.Carts.Clear(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
