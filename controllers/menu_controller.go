package controllers

import (
	"strconv"

	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/repository"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// POST /api/menus — Manager creates a Pending menu with its items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.service.CreateWithItems(utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Menu created successfully", "menu": menu})
}

// GET /api/menus?status=&categoryId=&isPopular=
func (ctl *MenuController) List(c *gin.Context) {
	f := repository.MenuFilters{Status: c.Query("status")}
	if v := c.Query("categoryId"); v != "" {
		id, _ := strconv.Atoi(v)
		f.CategoryID = uint(id)
	}
	if v := c.Query("isPopular"); v != "" {
		popular := v == "true"
		f.IsPopular = &popular
	}

	menus, err := ctl.service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /api/menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	menu, err := ctl.service.Get(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

type MenuStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/menus/:id/status — Admin approves or rejects
func (ctl *MenuController) UpdateStatus(c *gin.Context) {
	var req MenuStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.service.UpdateStatus(paramID(c), req.Status, utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu status updated", "menu": menu})
}

// PATCH /api/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var req services.MenuUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.service.Update(paramID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu updated successfully", "menu": menu})
}

// DELETE /api/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Menu deleted successfully")
}
