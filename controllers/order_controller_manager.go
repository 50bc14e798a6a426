package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Manager dashboard endpoints. Routing puts these behind the manager
// role gate.

func (h *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFail(c, http.StatusBadRequest, "Status is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Svc.UpdateStatus(ctx, orderID, body.Status)
	if err != nil {
		respondServiceError(c, err, "Error updating order status")
		return
	}
	respondOK(c, http.StatusOK, "Order status updated successfully", order)
}

func (h *OrderController) GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Svc.ListAll(ctx)
	if err != nil {
		respondServiceError(c, err, "Error fetching orders")
		return
	}
	respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (h *OrderController) GetPendingOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Svc.ListPending(ctx)
	if err != nil {
		respondServiceError(c, err, "Error fetching orders")
		return
	}
	respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
}
