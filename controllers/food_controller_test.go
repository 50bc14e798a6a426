package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFoodEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/food/create", gin.H{
		"title":       "Butter Chicken",
		"description": "Rich tomato gravy",
		"price":       14.5,
		"category":    "mains",
		"isVeg":       false,
		"imageurl":    "https://cdn.example.com/butter-chicken.jpg",
		"ARmodelUrl":  "https://cdn.example.com/butter-chicken.glb",
		"ingredients": []string{"chicken", "butter", "tomato"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Butter Chicken", data["title"])
	assert.Equal(t, 14.5, data["price"])
	assert.Equal(t, "https://cdn.example.com/butter-chicken.glb", data["ARmodelUrl"])
}

func TestCreateFoodEndpointRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/food/create", gin.H{"description": "no title or price"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodListingEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.seedFood(t, "Paneer Tikka", 10)

	w := env.do(t, http.MethodPost, "/food/create", gin.H{
		"title":    "Gulab Jamun",
		"price":    5.0,
		"category": "desserts",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/food/getallfoods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 2)

	w = env.do(t, http.MethodGet, "/food/getfoodbycategory/desserts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	desserts := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, desserts, 1)
	assert.Equal(t, "Gulab Jamun", desserts[0].(map[string]interface{})["title"])

	w = env.do(t, http.MethodGet, "/food/getfoodbycategory/nothing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 0)
}
