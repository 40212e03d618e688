package routes

import (
	"github.com/mritunjaysukla/RMS/configs"
	"github.com/mritunjaysukla/RMS/controllers"
	"github.com/mritunjaysukla/RMS/middlewares"
	"github.com/mritunjaysukla/RMS/repository"
	"github.com/mritunjaysukla/RMS/services"
	"github.com/mritunjaysukla/RMS/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers with the
// injected DB handle and mounts every route group.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, bus *services.EventBus, hub *ws.NotifyHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	resetRepo := repository.NewResetRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, staffRepo, resetRepo,
		services.LogMailer{}, cfg.JWTSecret, cfg.JWTTTL, cfg.ResetCodeTTL)
	userSvc := services.NewUserService(db, userRepo, staffRepo, auditRepo)
	catSvc := services.NewCategoryService(catRepo)
	menuSvc := services.NewMenuService(db, menuRepo, catRepo, bus)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, bus)
	reportSvc := services.NewReportService(reportRepo, userRepo, orderRepo)
	staffSvc := services.NewStaffService(db, userRepo, staffRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc, authSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	tableCtrl := controllers.NewTableController(tableRepo)
	staffCtrl := controllers.NewStaffController(staffSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	api := r.Group("/api")
	{
		// public
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/forgot-password", authCtrl.ForgotPassword)
		api.POST("/reset-password", authCtrl.ResetPassword)
		api.POST("/logout", auth, authCtrl.Logout)

		// menus: reads are open, writes are gated
		api.GET("/menus", menuCtrl.List)
		api.GET("/menus/:id", menuCtrl.Get)
		api.POST("/menus", auth, middlewares.Require(middlewares.OpMenuCreate), menuCtrl.Create)
		api.PATCH("/menus/:id", auth, middlewares.Require(middlewares.OpMenuCreate), menuCtrl.Update)
		api.PUT("/menus/:id/status", auth, middlewares.Require(middlewares.OpMenuApprove), menuCtrl.UpdateStatus)
		api.DELETE("/menus/:id", auth, middlewares.Require(middlewares.OpMenuCreate), menuCtrl.Delete)

		users := api.Group("/users", auth, middlewares.Require(middlewares.OpUserManage))
		{
			users.GET("", userCtrl.List)
			users.POST("", userCtrl.Create)
			users.GET("/:id", userCtrl.Get)
			users.PUT("/:id", userCtrl.Update)
			users.DELETE("/:id", userCtrl.Delete)
		}

		cats := api.Group("/categories")
		{
			cats.GET("", catCtrl.List)
			cats.POST("", auth, middlewares.Require(middlewares.OpCategoryCRUD), catCtrl.Create)
			cats.PUT("/:id", auth, middlewares.Require(middlewares.OpCategoryCRUD), catCtrl.Update)
			cats.DELETE("/:id", auth, middlewares.Require(middlewares.OpCategoryCRUD), catCtrl.Delete)
		}

		tables := api.Group("/tables", auth, middlewares.Require(middlewares.OpTableManage))
		{
			tables.GET("", tableCtrl.List)
			tables.POST("", tableCtrl.Create)
			tables.DELETE("/:id", tableCtrl.Delete)
		}

		api.POST("/orders", auth, middlewares.Require(middlewares.OpOrderCreate), orderCtrl.Create)
		api.GET("/orders", auth, middlewares.Require(middlewares.OpOrderManage), orderCtrl.List)
		api.GET("/orders/:id", auth, middlewares.Require(middlewares.OpOrderManage), orderCtrl.Detail)
		api.PATCH("/orders/:id/status", auth, middlewares.Require(middlewares.OpOrderManage), orderCtrl.UpdateStatus)

		staff := api.Group("/staff", auth, middlewares.Require(middlewares.OpStaffView))
		{
			staff.GET("", staffCtrl.List)
			staff.GET("/on-duty", staffCtrl.OnDuty)
			staff.DELETE("/:id", staffCtrl.Delete)
		}

		api.POST("/reports", auth, middlewares.Require(middlewares.OpReportCreate), reportCtrl.Generate)
		api.GET("/reports", auth, middlewares.Require(middlewares.OpReportView), reportCtrl.List)
		api.GET("/reports/:id", auth, middlewares.Require(middlewares.OpReportView), reportCtrl.Details)
	}

	// staff notifications
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
