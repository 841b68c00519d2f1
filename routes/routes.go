package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/config"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/controllers"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/middlewares"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/repositories"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

// SetupRouter wires the store into the services and mounts every route group.
func SetupRouter(store *repositories.Store, cfg config.Config, log zerolog.Logger) *gin.Engine {
	userSvc := services.NewUserService(store.Users, cfg.JWTSecret)
	foodSvc := services.NewFoodService(store.Foods)
	mealSvc := services.NewMealService(store.Meals, store.Foods)
	progressSvc := services.NewProgressService(store.Users, store.Meals, store.Foods)

	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	progressCtl := controllers.NewProgressController(progressSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	users := r.Group("/users")
	{
		users.POST("/register", userCtl.Register)
		users.POST("/login", userCtl.Login)
		users.GET("/profile", auth, userCtl.GetProfile)
	}

	foods := r.Group("/foods")
	foods.Use(auth)
	{
		foods.POST("", foodCtl.Create)
		foods.GET("", foodCtl.List)
		foods.PUT("/:id", middlewares.RequireAdmin(), foodCtl.Update)
		foods.DELETE("/:id", middlewares.RequireAdmin(), foodCtl.Delete)
	}

	meals := r.Group("/meals")
	meals.Use(auth)
	{
		meals.POST("", mealCtl.Create)
		meals.GET("", mealCtl.List)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	progress := r.Group("/progress")
	progress.Use(auth)
	{
		progress.GET("", progressCtl.GetDaily)
	}

	return r
}
