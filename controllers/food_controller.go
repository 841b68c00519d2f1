package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

var foodAllowedFields = []string{"name", "category", "calories", "protein", "carbs", "fat"}

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// POST /foods
func (ctl *FoodController) Create(c *gin.Context) {
	fields, ok := bindStrict(c, foodAllowedFields...)
	if !ok {
		return
	}
	in, errs := parseFoodInput(fields)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	food, err := ctl.foods.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GET /foods?sortBy=name&order=asc
func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.foods.List(c.DefaultQuery("sortBy", "name"), c.DefaultQuery("order", "asc"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// PUT /foods/:id (admin)
func (ctl *FoodController) Update(c *gin.Context) {
	fields, ok := bindStrict(c, foodAllowedFields...)
	if !ok {
		return
	}
	in, errs := parseFoodInput(fields)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	food, err := ctl.foods.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id (admin)
func (ctl *FoodController) Delete(c *gin.Context) {
	if err := ctl.foods.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
