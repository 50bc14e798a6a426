package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant/repository"
)

type UserController struct {
	Users repository.UserRepository
}

func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

func (h *UserController) GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		respondFail(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, http.StatusOK, "User fetched successfully", user)
}
