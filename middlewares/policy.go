package middlewares

import (
	"net/http"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/utils"

	"github.com/gin-gonic/gin"
)

// Operation names used by the policy table and route wiring.
const (
	OpUserManage   = "user.manage"
	OpMenuCreate   = "menu.create"
	OpMenuApprove  = "menu.approve"
	OpCategoryCRUD = "category.manage"
	OpTableManage  = "table.manage"
	OpOrderCreate  = "order.create"
	OpOrderManage  = "order.manage"
	OpStaffView    = "staff.view"
	OpReportCreate = "report.create"
	OpReportView   = "report.view"
)

// policy is the single place mapping operation → allowed roles.
var policy = map[string][]string{
	OpUserManage:   {entity.RoleAdmin, entity.RoleManager},
	OpMenuCreate:   {entity.RoleManager},
	OpMenuApprove:  {entity.RoleAdmin},
	OpCategoryCRUD: {entity.RoleAdmin},
	OpTableManage:  {entity.RoleAdmin, entity.RoleManager},
	OpOrderCreate:  {entity.RoleWaiter},
	OpOrderManage:  {entity.RoleAdmin, entity.RoleManager},
	OpStaffView:    {entity.RoleAdmin, entity.RoleManager},
	OpReportCreate: {entity.RoleManager},
	OpReportView:   {entity.RoleAdmin},
}

// Allowed consults the policy table.
func Allowed(operation, role string) bool {
	for _, r := range policy[operation] {
		if r == role {
			return true
		}
	}
	return false
}

// Require denies the request unless the resolved role may perform the
// operation. Must run after AuthMiddleware.
func Require(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Allowed(operation, utils.CurrentRole(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
