package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/middlewares"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// POST /users/register
func (ctl *UserController) Register(c *gin.Context) {
	fields, ok := bindStrict(c, "name", "email", "password")
	if !ok {
		return
	}
	in, errs := parseRegisterInput(fields)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := ctl.users.Register(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// POST /users/login
func (ctl *UserController) Login(c *gin.Context) {
	fields, ok := bindStrict(c, "email", "password")
	if !ok {
		return
	}
	email, password, errs := parseLoginInput(fields)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	token, err := ctl.users.Login(email, password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /users/profile
func (ctl *UserController) GetProfile(c *gin.Context) {
	profile, err := ctl.users.GetProfile(c.GetString(middlewares.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
