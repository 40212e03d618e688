package controllers

import (
	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TableController is thin enough to sit straight on the repository.
type TableController struct {
	repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{repo: repo}
}

type TableRequest struct {
	TableNumber int `json:"tableNumber" binding:"required,gt=0"`
}

// POST /api/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t := entity.DiningTable{TableNumber: req.TableNumber, IsAvailable: true}
	if err := ctl.repo.Create(&t); err != nil {
		resp.BadRequest(c, "table number already exists")
		return
	}
	resp.Created(c, t)
}

// GET /api/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.repo.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// DELETE /api/tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	if _, err := ctl.repo.FindByID(paramID(c)); err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.NotFound(c, "table not found")
			return
		}
		resp.Error(c, err)
		return
	}
	if err := ctl.repo.Delete(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Table deleted successfully")
}
