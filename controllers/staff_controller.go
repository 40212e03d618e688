package controllers

import (
	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	service *services.StaffService
}

func NewStaffController(service *services.StaffService) *StaffController {
	return &StaffController{service: service}
}

// GET /api/staff
func (ctl *StaffController) List(c *gin.Context) {
	staff, err := ctl.service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, staff)
}

// GET /api/staff/on-duty
func (ctl *StaffController) OnDuty(c *gin.Context) {
	staff, err := ctl.service.OnDuty()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, staff)
}

// DELETE /api/staff/:id
func (ctl *StaffController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Staff deleted successfully")
}
