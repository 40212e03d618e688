package controllers

import (
	"net/http"
	"time"

	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string     `json:"username" binding:"required"`
	Password string     `json:"password" binding:"required,min=6"`
	Role     string     `json:"role"`
	Contact  string     `json:"contact"`
	Email    string     `json:"email" binding:"omitempty,email"`
	DOB      *time.Time `json:"dob"`
	Gender   string     `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /api/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.service.Register(services.RegisterIn{
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

	resp.Created(c, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id": user.ID, "username": user.Username, "role": user.Role,
		},
	})
}

// POST /api/login — also opens a duty session for Waiter/Manager
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.service.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "role": user.Role,
		},
	})
}

// POST /api/logout — closes the duty session
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.service.Logout(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Logged out successfully")
}

// POST /api/forgot-password
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.service.ForgotPassword(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Reset code sent")
}

// POST /api/reset-password
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.service.ResetPassword(req.Code, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Password updated successfully")
}
