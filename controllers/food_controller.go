package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant/models"
	"restaurant/repository"
)

type FoodController struct {
	Foods repository.FoodRepository
}

func NewFoodController(foods repository.FoodRepository) *FoodController {
	return &FoodController{Foods: foods}
}

func (h *FoodController) CreateFood(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		respondFail(c, http.StatusBadRequest, "Title, price and category are required")
		return
	}
	food.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Foods.Insert(ctx, &food); err != nil {
		respondServiceError(c, err, "Error creating food")
		return
	}
	respondOK(c, http.StatusCreated, "Food created successfully", food)
}

func (h *FoodController) GetAllFoods(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	foods, err := h.Foods.FindAll(ctx)
	if err != nil {
		respondServiceError(c, err, "Error fetching foods")
		return
	}
	if foods == nil {
		foods = []models.Food{}
	}
	respondOK(c, http.StatusOK, "Foods fetched successfully", foods)
}

func (h *FoodController) GetFoodByCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	foods, err := h.Foods.FindByCategory(ctx, c.Param("category"))
	if err != nil {
		respondServiceError(c, err, "Error fetching foods")
		return
	}
	if foods == nil {
		foods = []models.Food{}
	}
	respondOK(c, http.StatusOK, "Foods fetched successfully", foods)
}
