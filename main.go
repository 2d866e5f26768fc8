package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uptime-board/config"
	"uptime-board/pkg/logger"
	"uptime-board/server"
)

func main() {
	// Load Config
	cfgErr := config.LoadConfig("config.yaml")

	cfg := config.GlobalConfig
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("Failed to load config.yaml, using defaults/env vars", zap.Error(cfgErr))
	}

	if os.Getenv("DEBUG") != "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.NewServer(
		server.WithLocation(cfg.Location()),
		server.WithMaxDowntimeLogs(cfg.Display.MaxDowntimeLogs),
		server.WithRefreshInterval(cfg.RefreshDuration()),
		server.WithReportTitle(cfg.Display.ReportTitle),
	)

	port := ":" + strconv.Itoa(cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", port), zap.String("timezone", cfg.Location().String()))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号，5 秒内完成正在处理的请求
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
