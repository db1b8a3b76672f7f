package router

import (
	"time"

	"wedding/api"
	"wedding/config"
	_ "wedding/docs"
	"wedding/middleware"
	"wedding/service"
	"wedding/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, s store.Store) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	emailService := service.NewEmailService(&cfg.Email)

	authHandler := api.NewAuthHandler(cfg, s)

	// 认证相关路由（无需登录）
	open := r.Group("/api")
	{
		open.POST("/register", authHandler.Register)
		open.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		open.POST("/token", middleware.LoginRateLimit(5, time.Minute), authHandler.Token)
		open.POST("/logout", authHandler.Logout)
	}

	// 需要认证的路由
	authorized := r.Group("/api")
	authorized.Use(middleware.Auth(s.Sessions(), cfg.Session.CookieName))
	{
		authorized.GET("/user", authHandler.CurrentUser)

		// 婚礼设置
		settingsHandler := api.NewSettingsHandler(s)
		authorized.GET("/settings", settingsHandler.Get)
		authorized.PATCH("/settings", settingsHandler.Update)

		// 宾客管理
		guestHandler := api.NewGuestHandler(s)
		guests := authorized.Group("/guests")
		{
			guests.GET("", guestHandler.List)
			guests.POST("", guestHandler.Create)
			guests.GET("/:id", guestHandler.Get)
			guests.PATCH("/:id", guestHandler.Update)
			guests.DELETE("/:id", guestHandler.Delete)
		}

		// 预算管理
		budgetHandler := api.NewBudgetHandler(s)
		budget := authorized.Group("/budget")
		{
			budget.GET("", budgetHandler.List)
			budget.POST("", budgetHandler.Create)
			budget.GET("/:id", budgetHandler.Get)
			budget.PATCH("/:id", budgetHandler.Update)
			budget.DELETE("/:id", budgetHandler.Delete)
		}

		// 任务管理
		taskHandler := api.NewTaskHandler(s)
		tasks := authorized.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PATCH("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}

		// 供应商管理
		vendorHandler := api.NewVendorHandler(s)
		vendors := authorized.Group("/vendors")
		{
			vendors.GET("", vendorHandler.List)
			vendors.POST("", vendorHandler.Create)
			vendors.GET("/:id", vendorHandler.Get)
			vendors.PATCH("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}

		// 预约管理
		appointmentHandler := api.NewAppointmentHandler(s, emailService)
		appointments := authorized.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PATCH("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Delete)
			appointments.POST("/:id/remind", appointmentHandler.Remind)
		}

		// 座位安排
		seatingHandler := api.NewSeatingHandler(s)
		seating := authorized.Group("/seating")
		{
			seating.GET("", seatingHandler.List)
			seating.POST("", seatingHandler.Create)
			seating.GET("/:id", seatingHandler.Get)
			seating.PATCH("/:id", seatingHandler.Update)
			seating.DELETE("/:id", seatingHandler.Delete)
		}

		// 导出相关
		exportHandler := api.NewExportHandler(s)
		export := authorized.Group("/export")
		{
			export.GET("/guests", exportHandler.ExportGuests)
			export.GET("/budget", exportHandler.ExportBudget)
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
