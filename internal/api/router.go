package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"techfest/config"
	"techfest/internal/api/admin"
	"techfest/internal/api/apis"
	"techfest/internal/api/handler"
	"techfest/internal/api/response"
	"techfest/internal/constants"
	"techfest/internal/middleware"
	"techfest/internal/repository"
	"techfest/internal/service"
	"techfest/pkg/async"
	"techfest/pkg/geetest"
	"techfest/pkg/logger"
)

// Dependencies 路由依赖；RedisClient、Geetest、Worker、Notifier 均可为空
type Dependencies struct {
	Store       repository.Store
	RedisClient *redis.Client
	Geetest     *geetest.GeetestClient
	Worker      *async.Worker
	Notifier    service.SubmissionNotifier
}

// SetupRouter 设置API路由
func SetupRouter(cfg *config.Config, logger *logger.Logger, deps Dependencies) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	// 限流按客户端IP计数，只有可信代理转发的 X-Forwarded-For 才会被采用
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("可信代理配置无效，忽略转发头", "error", err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// 初始化服务
	adminAuthService := service.NewAdminAuthService(deps.Store.Admin(), deps.RedisClient, service.AdminAuthOptions{
		PasswordHash: cfg.Admin.PasswordHash,
		MaxFailures:  cfg.Admin.MaxFailures,
		LockWindow:   time.Duration(cfg.Admin.LockMinutes) * time.Minute,
	}, logger)
	announcementService := service.NewAnnouncementService(deps.Store.Announcements(), deps.RedisClient, logger)
	contactService := service.NewContactService(deps.Store.Contacts(), deps.Worker, deps.Notifier, logger)
	photoService := service.NewPhotoService(deps.Store.Photos(), logger)

	// 初始化处理器
	announcementHandler := handler.NewAnnouncementHandler(announcementService, logger)
	contactHandler := handler.NewContactHandler(contactService, deps.Geetest, logger)
	photoHandler := handler.NewPhotoHandler(photoService, logger)

	announcementAdminHandler := admin.NewAnnouncementAdminHandler(announcementService, logger)
	contactAdminHandler := admin.NewContactAdminHandler(contactService, logger)
	moderationHandler := admin.NewModerationHandler(photoService, logger)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	apis.RegisterPublicRoutes(apiGroup, announcementHandler, contactHandler, photoHandler)
	admin.RegisterAdminRoutes(apiGroup, middleware.AdminAuth(adminAuthService, logger), announcementAdminHandler, contactAdminHandler, moderationHandler)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, constants.ErrNotFound)
	})

	return router
}
