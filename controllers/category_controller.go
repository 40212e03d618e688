package controllers

import (
	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/services"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// POST /api/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.service.Create(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /api/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// PUT /api/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.service.Update(paramID(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Category deleted successfully")
}
