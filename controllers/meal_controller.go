package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/middlewares"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/models"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// POST /meals
func (ctl *MealController) Create(c *gin.Context) {
	fields, ok := bindStrict(c, "foods")
	if !ok {
		return
	}
	foods, errs := parseMealFoods(fields, true)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	meal, err := ctl.meals.Create(c.GetString(middlewares.CtxUserID), *foods)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?userId=<id>
func (ctl *MealController) List(c *gin.Context) {
	meals, err := ctl.meals.List(
		c.GetString(middlewares.CtxUserRole),
		c.GetString(middlewares.CtxUserID),
		c.Query("userId"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// PUT /meals/:id
func (ctl *MealController) Update(c *gin.Context) {
	fields, ok := bindStrict(c, "foods")
	if !ok {
		return
	}
	foods, errs := parseMealFoods(fields, false)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	meal, err := ctl.meals.Update(
		c.GetString(middlewares.CtxUserRole),
		c.GetString(middlewares.CtxUserID),
		c.Param("id"),
		models.MealPatch{Foods: foods},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (ctl *MealController) Delete(c *gin.Context) {
	err := ctl.meals.Delete(
		c.GetString(middlewares.CtxUserRole),
		c.GetString(middlewares.CtxUserID),
		c.Param("id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
