package controllers

import (
	"strconv"

	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
	auth    *services.AuthService
}

func NewUserController(service *services.UserService, auth *services.AuthService) *UserController {
	return &UserController{service: service, auth: auth}
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// POST /api/users
func (u *UserController) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.auth.Register(services.RegisterIn{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Contact:  req.Contact,
		Email:    req.Email,
		DOB:      req.DOB,
		Gender:   req.Gender,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "User created successfully", "user": user})
}

// GET /api/users
func (u *UserController) List(c *gin.Context) {
	users, err := u.service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /api/users/:id
func (u *UserController) Get(c *gin.Context) {
	user, err := u.service.Get(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email"`
	Gender   *string `json:"gender"`
}

// PUT /api/users/:id
func (u *UserController) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := u.service.Update(utils.CurrentUserID(c), paramID(c), services.UserUpdateIn{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
		Contact:  req.Contact,
		Email:    req.Email,
		Gender:   req.Gender,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User updated successfully", "user": user})
}

// DELETE /api/users/:id
func (u *UserController) Delete(c *gin.Context) {
	if err := u.service.Delete(utils.CurrentUserID(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "User deleted successfully")
}
