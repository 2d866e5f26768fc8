package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"uptime-board/display"
)

// Server 仪表盘统计服务，对渲染层暴露派生统计接口
type Server struct {
	router          *gin.Engine
	clock           func() time.Time
	loc             *time.Location
	maxDowntimeLogs int
	refreshInterval time.Duration
	reportTitle     string
}

// Option 配置 Server
type Option func(*Server)

// WithClock 注入当前时间，测试中固定
func WithClock(clock func() time.Time) Option {
	return func(s *Server) { s.clock = clock }
}

// WithLocation 自然日边界与时间格式化使用的时区
func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithMaxDowntimeLogs(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxDowntimeLogs = n
		}
	}
}

func WithRefreshInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

func WithReportTitle(title string) Option {
	return func(s *Server) {
		if title != "" {
			s.reportTitle = title
		}
	}
}

// NewServer 创建并初始化一个新的服务器实例
func NewServer(opts ...Option) *Server {
	s := &Server{
		router:          gin.New(),
		clock:           time.Now,
		loc:             time.Local,
		maxDowntimeLogs: display.DefaultMaxDowntimeLogs,
		refreshInterval: display.RefreshInterval,
		reportTitle:     "服务状态报告",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery(), requestLogger())

	// 配置 CORS
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if os.Getenv("DEBUG") == "true" {
		corsConfig.AllowCredentials = false
		corsConfig.AllowOrigins = []string{"*"}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	s.router.Use(cors.New(corsConfig))

	// 健康检查端点
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// 注册 API 路由
	s.registerAPIRoutes()

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return s
}

// registerAPIRoutes 注册 REST API 路由
func (s *Server) registerAPIRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/stats", s.deriveStatsAPI)
		api.POST("/stats/batch", s.deriveBatchAPI)
		api.POST("/report", s.reportAPI)
		api.GET("/ranges", s.rangesAPI)
		api.GET("/display", s.displayTablesAPI)
	}
}

// Router 返回 Gin 引擎实例
func (s *Server) Router() *gin.Engine {
	return s.router
}

// now 当前时间，转换到配置的时区
func (s *Server) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *Server) cardOptions() display.Options {
	return display.Options{
		MaxDowntimeLogs: s.maxDowntimeLogs,
		Location:        s.loc,
	}
}
