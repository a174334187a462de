package router

import (
	"context"

	"chequesaathi/config"
	"chequesaathi/internal/handler"
	"chequesaathi/internal/middleware"
	"chequesaathi/internal/repository"
	"chequesaathi/internal/service"
	"chequesaathi/internal/ws"
	"chequesaathi/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers. ctx bounds background
// work such as the rate limiter's janitor. cloud may be nil.
func Setup(ctx context.Context, cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logrus.StandardLogger()))
	r.Use(middleware.CORS(cfg.CORS.FrontendURL))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(ctx, cfg.RateLimit.Requests, cfg.RateLimit.Window)))

	// Repositories
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	chequeRepo := repository.NewChequeRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	hub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(&cfg.JWT, userRepo)
	customerSvc := service.NewCustomerService(tx, customerRepo, chequeRepo, hub)
	chequeSvc := service.NewChequeService(tx, customerRepo, chequeRepo, auditRepo, hub)
	txnSvc := service.NewTransactionService(customerRepo, txnRepo, hub)
	dashboardSvc := service.NewDashboardService(customerRepo, chequeRepo, txnRepo)

	// Handlers
	loc := cfg.Server.Location()
	authHandler := handler.NewAuthHandler(authSvc, auditRepo, &cfg.JWT, cfg.Server.IsProduction())
	customerHandler := handler.NewCustomerHandler(customerSvc)
	chequeHandler := handler.NewChequeHandler(chequeSvc, loc)
	txnHandler := handler.NewTransactionHandler(txnSvc, loc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, loc)
	uploadHandler := handler.NewUploadHandler(cloud, chequeSvc, cfg.Cloudinary.Folder)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/health", handler.Health)
	r.GET("/ws/activity", authMw, ws.ServeActivity(hub, cfg.CORS.FrontendURL, middleware.GetUserID))
	r.NoRoute(handler.NotFound)

	api := r.Group("/api")
	{
		api.GET("", handler.Index)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", middleware.OptionalAuth(&cfg.JWT), authHandler.Logout)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		customers := api.Group("/customers")
		customers.Use(authMw)
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.Get)
			customers.PATCH("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		cheques := api.Group("/cheques")
		cheques.Use(authMw)
		{
			cheques.POST("", chequeHandler.Create)
			cheques.GET("", chequeHandler.List)
			cheques.GET("/export", chequeHandler.Export)
			cheques.GET("/:id", chequeHandler.Get)
			cheques.PATCH("/:id", chequeHandler.Update)
			cheques.PATCH("/:id/status", chequeHandler.UpdateStatus)
			cheques.POST("/:id/image", uploadHandler.UploadChequeImage)
			cheques.DELETE("/:id", chequeHandler.Delete)
		}

		txns := api.Group("/transactions")
		txns.Use(authMw)
		{
			txns.POST("", txnHandler.Create)
			txns.GET("", txnHandler.List)
			txns.GET("/export", txnHandler.Export)
			txns.GET("/:id", txnHandler.Get)
			txns.PATCH("/:id", txnHandler.Update)
			txns.DELETE("/:id", txnHandler.Delete)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authMw)
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/customer-summary", dashboardHandler.CustomerSummary)
			dashboard.GET("/recent-activity", dashboardHandler.RecentActivity)
		}
	}
	return r
}
