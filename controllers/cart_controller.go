package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/models"
	"restaurant/services"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

type cartItemInput struct {
	Food     string `json:"food" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddToCart merges the posted items into the caller's cart. The body
// carries the user id and the amount being added, matching the mobile
// client's contract.
func (h *CartController) AddToCart(c *gin.Context) {
	var body struct {
		ID          string          `json:"id" binding:"required"`
		Items       []cartItemInput `json:"items" binding:"required"`
		TotalAmount float64         `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	userID, err := primitive.ObjectIDFromHex(body.ID)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	items := make([]models.CartItem, 0, len(body.Items))
	for _, in := range body.Items {
		foodID, err := primitive.ObjectIDFromHex(in.Food)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "Invalid food id")
			return
		}
		items = append(items, models.CartItem{Food: foodID, Quantity: in.Quantity})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.Svc.AddToCart(ctx, userID, items, body.TotalAmount)
	if err != nil {
		respondServiceError(c, err, "Error adding to cart")
		return
	}
	respondOK(c, http.StatusCreated, "Cart updated successfully", cart)
}

// GetAllCartItems reads the user id from the request body, as the
// original client sends it there even on GET.
func (h *CartController) GetAllCartItems(c *gin.Context) {
	var body struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	userID, err := primitive.ObjectIDFromHex(body.ID)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view, err := h.Svc.GetAllCartItems(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "Error fetching cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Cart fetched successfully",
		"items":       view.Items,
		"totalAmount": view.TotalAmount,
	})
}
