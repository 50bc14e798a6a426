package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/services"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func (h *OrderController) PlaceOrder(c *gin.Context) {
	var body struct {
		ID          string `json:"id" binding:"required"`
		TableNumber string `json:"tableNumber"`
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

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	order, err := h.Svc.PlaceOrder(ctx, userID, body.TableNumber)
	if err != nil {
		respondServiceError(c, err, "Error placing order")
		return
	}
	respondOK(c, http.StatusCreated, "Order placed successfully", order)
}

func (h *OrderController) CancelOrder(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Svc.Cancel(ctx, orderID)
	if err != nil {
		respondServiceError(c, err, "Error cancelling order")
		return
	}
	respondOK(c, http.StatusOK, "Order cancelled successfully", order)
}

func (h *OrderController) GetOrderByUserID(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Svc.ListByUser(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "Error fetching orders")
		return
	}
	respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
}
