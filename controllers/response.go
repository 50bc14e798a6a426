package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant/services"
)

// Responses use the {success, message, data?/error?} envelope the
// mobile clients expect.

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps service sentinel errors onto HTTP statuses:
// missing documents are 404, bad input and rejected transitions are
// 400 (double-cancel included), everything else is 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrTableNumberRequired),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAlreadyCancelled),
		errors.Is(err, services.ErrStatusConflict):
		respondFail(c, http.StatusBadRequest, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fallback,
			"error":   err.Error(),
		})
	}
}
