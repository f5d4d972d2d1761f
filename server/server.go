package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stitchworks/machine-log-backend/config"
	"github.com/stitchworks/machine-log-backend/docs"
	efficiencyHandler "github.com/stitchworks/machine-log-backend/internal/handler/efficiency"
	machineLogHandler "github.com/stitchworks/machine-log-backend/internal/handler/machinelog"
	operatorHandler "github.com/stitchworks/machine-log-backend/internal/handler/operator"
	reportHandler "github.com/stitchworks/machine-log-backend/internal/handler/report"
	userHandler "github.com/stitchworks/machine-log-backend/internal/handler/user"
	"github.com/stitchworks/machine-log-backend/internal/repository"
	"github.com/stitchworks/machine-log-backend/internal/service/cache"
	efficiencyService "github.com/stitchworks/machine-log-backend/internal/service/efficiency"
	machineLogService "github.com/stitchworks/machine-log-backend/internal/service/machinelog"
	reportService "github.com/stitchworks/machine-log-backend/internal/service/report"
	userService "github.com/stitchworks/machine-log-backend/internal/service/user"
	"github.com/stitchworks/machine-log-backend/middleware"
)

type RouterHandler struct {
	machineLogHandler *machineLogHandler.MachineLogHandler
	reportHandler     *reportHandler.ReportHandler
	efficiencyHandler *efficiencyHandler.EfficiencyHandler
	operatorHandler   *operatorHandler.OperatorHandler
	userHandler       *userHandler.UserHandler
}

func RunServer(config *config.Config) {
	switch config.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	}

	db, err := repository.NewDB(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	cacheService := cache.NewCacheService(cache.Config{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer cacheService.Close()

	machineLogRepo := repository.NewMachineLogRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	userRepo := repository.NewUserRepository(db)

	machineLogSrv := machineLogService.NewMachineLogService(machineLogRepo, operatorRepo)
	reportSrv := reportService.NewReportService(machineLogRepo, operatorRepo, cacheService)
	efficiencySrv := efficiencyService.NewEfficiencyService(machineLogRepo)
	userSrv := userService.NewUserService(userRepo)

	routerHandler := &RouterHandler{
		machineLogHandler: machineLogHandler.NewMachineLogHandler(machineLogSrv),
		reportHandler:     reportHandler.NewReportHandler(reportSrv),
		efficiencyHandler: efficiencyHandler.NewEfficiencyHandler(efficiencySrv),
		operatorHandler:   operatorHandler.NewOperatorHandler(operatorRepo),
		userHandler:       userHandler.NewUserHandler(userSrv),
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "machine-log-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Machine log backend API"
	docs.SwaggerInfo.Description = "Sewing machine activity logs and KPI reports"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/logs", routerHandler.machineLogHandler.CreateLog)
		publicRoutes.GET("/logs/consolidated", routerHandler.machineLogHandler.GetConsolidated)
		publicRoutes.GET("/logs/filter", routerHandler.machineLogHandler.FilterLogs)
		publicRoutes.GET("/logs/machine-filter", routerHandler.machineLogHandler.FilterMachineLogs)
		publicRoutes.GET("/logs/line-numbers", routerHandler.machineLogHandler.GetLineNumbers)
		publicRoutes.GET("/logs/machine-ids", routerHandler.machineLogHandler.GetMachineIDs)
		publicRoutes.GET("/logs/operator-ids", routerHandler.machineLogHandler.GetOperatorIDs)

		publicRoutes.GET("/reports/operators", routerHandler.reportHandler.GetOperatorSummaries)
		publicRoutes.GET("/reports/operators/:name", routerHandler.reportHandler.GetOperatorReport)
		publicRoutes.GET("/reports/lines/:line", routerHandler.reportHandler.GetLineReport)
		publicRoutes.GET("/reports/machines", routerHandler.reportHandler.GetGlobalReport)
		publicRoutes.GET("/reports/machines/:id", routerHandler.reportHandler.GetMachineReport)

		publicRoutes.GET("/efficiency/operators", routerHandler.efficiencyHandler.GetOperatorEfficiencies)
		publicRoutes.GET("/efficiency/lines", routerHandler.efficiencyHandler.GetLineEfficiencies)
		publicRoutes.GET("/counts/machines", routerHandler.efficiencyHandler.GetMachineCount)
		publicRoutes.GET("/counts/lines", routerHandler.efficiencyHandler.GetLineCount)
		publicRoutes.GET("/counts/underperforming-operators", routerHandler.efficiencyHandler.GetUnderperformingOperators)

		publicRoutes.GET("/operators", routerHandler.operatorHandler.GetOperators)

		publicRoutes.POST("/users/auth", routerHandler.userHandler.Auth)
		publicRoutes.POST("/users/logout", routerHandler.userHandler.Logout)
	}

	privateRoutes := r.Group("/api/v1/admin")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.GET("/logs", routerHandler.machineLogHandler.GetLogs)
	}

	return r
}
