package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "uptime-board/pkg/errors"
	"uptime-board/pkg/logger"
)

// respondError 按 AppError 的状态码输出错误，保留包装链上的完整信息
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		c.JSON(appErr.StatusCode, gin.H{"code": appErr.Code, "error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": http.StatusServiceUnavailable, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": apperrors.ErrInternalServer.Code, "error": err.Error()})
	}
}

// respondBadRequest 请求体无法解析
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"code": apperrors.ErrBadRequest.Code, "error": err.Error()})
}

// requestLogger 使用 zap 记录每个请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("request failed", fields...)
			return
		}
		logger.Debug("request", fields...)
	}
}
