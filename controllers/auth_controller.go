package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"restaurant/database"
	"restaurant/models"
	"restaurant/repository"
)

type AuthController struct {
	Users repository.UserRepository
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{Users: users}
}

func (h *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.FindByEmail(ctx, input.Email); err == nil {
		respondFail(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		respondServiceError(c, err, "Error registering user")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondServiceError(c, err, "Error registering user")
		return
	}

	role := input.Role
	if role != models.RoleManager {
		role = models.RoleCustomer
	}

	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := h.Users.Insert(ctx, user); err != nil {
		respondServiceError(c, err, "Error registering user")
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", gin.H{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (h *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		respondFail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondFail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID.Hex(),
		"role":   user.Role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		respondServiceError(c, err, "Error signing token")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"id":    user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": tokenString,
	})
}

// Logout blacklists the presented token until it would have expired
// anyway.
func (h *AuthController) Logout(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		respondFail(c, http.StatusBadRequest, "Token required")
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, _ := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if token == nil || !token.Valid {
		respondFail(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	exp, _ := claims["exp"].(float64)
	_, err := database.BlacklistCollection.InsertOne(ctx, bson.M{
		"token": tokenString,
		"exp":   int64(exp),
	})
	if err != nil {
		respondServiceError(c, err, "Error logging out")
		return
	}
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}
