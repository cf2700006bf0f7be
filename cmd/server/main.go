package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techfest/config"
	"techfest/internal/api"
	"techfest/internal/scheduler"
	"techfest/internal/service"
	"techfest/pkg/async"
	"techfest/pkg/database"
	"techfest/pkg/email"
	"techfest/pkg/geetest"
	"techfest/pkg/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// 初始化存储
	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatal("无法打开存储", "driver", cfg.StorageDriver, "error", err)
	}
	defer store.Close(context.Background())
	logger.Info("存储已就绪", "driver", cfg.StorageDriver)

	// 初始化Redis连接（可选）
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("无法链接到Redis", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	if cfg.Admin.PasswordHash == "" {
		logger.Warn("未设置 ADMIN_PASSWORD_HASH，将使用存储中的管理员记录")
	}

	// 异步任务
	worker := async.NewWorker(100, logger)
	worker.Start(2)
	defer worker.Stop()

	deps := api.Dependencies{
		Store:       store,
		RedisClient: redisClient,
		Worker:      worker,
	}
	if cfg.Email.Enabled() {
		mailer := email.NewService(email.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
			NotifyTo: cfg.Email.NotifyTo,
		}, logger)
		deps.Notifier = mailer

		// 待审核照片每日提醒
		if cfg.DigestHour >= 0 && cfg.DigestHour < 24 {
			moderationScheduler := scheduler.NewModerationScheduler(service.NewPhotoService(store.Photos(), logger), mailer, cfg.DigestHour, logger)
			moderationScheduler.Start()
			defer moderationScheduler.Stop()
		}
	}
	if cfg.Geetest.Enabled() {
		deps.Geetest = geetest.NewGeetestClient(cfg.Geetest.CaptchaID, cfg.Geetest.CaptchaKey, cfg.Geetest.APIServer)
	}

	router := api.SetupRouter(cfg, logger, deps)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("服务器启动于端口: %d", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("启动服务器失败", "error", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器被强制关闭", "error", err)
	}

	logger.Info("服务器已正常退出")
}
