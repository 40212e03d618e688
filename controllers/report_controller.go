package controllers

import (
	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

type GenerateReportRequest struct {
	Period        string `json:"period" binding:"required"`
	SubmittedToID uint   `json:"submittedToId" binding:"required"`
}

// POST /api/reports — Manager submits a periodic sales report to an Admin
func (ctl *ReportController) Generate(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := ctl.service.Generate(utils.CurrentUserID(c), req.SubmittedToID, req.Period)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, report)
}

// GET /api/reports
func (ctl *ReportController) List(c *gin.Context) {
	reports, err := ctl.service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reports)
}

// GET /api/reports/:id — per-table breakdown
func (ctl *ReportController) Details(c *gin.Context) {
	detail, err := ctl.service.Details(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}
