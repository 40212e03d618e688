package controllers

import (
	"strconv"
	"time"

	"github.com/mritunjaysukla/RMS/pkg/resp"
	"github.com/mritunjaysukla/RMS/repository"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// POST /api/orders — Waiter places an order for a table
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.service.Create(utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders?status=&startDate=&endDate=&waiterId=
func (ctl *OrderController) List(c *gin.Context) {
	f := repository.OrderFilters{Status: c.Query("status")}
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.StartDate = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			f.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.EndDate = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.EndDate = &end
		}
	}
	if v := c.Query("waiterId"); v != "" {
		id, _ := strconv.Atoi(v)
		f.WaiterID = uint(id)
	}

	orders, err := ctl.service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	detail, err := ctl.service.Detail(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status — Served/Rejected frees the table
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.service.UpdateStatus(paramID(c), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
