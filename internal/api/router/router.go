package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GrMNIII/perla-metro-stations-service/config"
	"github.com/GrMNIII/perla-metro-stations-service/internal/api/handler"
	"github.com/GrMNIII/perla-metro-stations-service/internal/api/middleware"
	"github.com/GrMNIII/perla-metro-stations-service/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// 按 id 读取保持公开；列表与全部写操作走鉴权中间件
func Setup(cfg *config.Config, h *handler.Handler, authorizer middleware.Authorizer, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康探针 ──
	health := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "stations"})
	}
	r.GET("/", health)
	r.GET("/health", health)

	// ── API ──
	api := r.Group("/api")
	{
		// 按 id 读取（公开契约，无需鉴权）
		api.GET("/stations/:id", h.Station.GetStation)

		// 其余端点需要鉴权
		stations := api.Group("/stations")
		stations.Use(middleware.Auth(authorizer))
		stations.Use(middleware.RateLimit(rdb, 100, time.Minute))
		{
			stations.GET("", h.Station.ListStations)
			stations.POST("", h.Station.CreateStation)
			stations.PUT("/:id", h.Station.UpdateStation)
			stations.DELETE("/:id", h.Station.DeleteStation)
			stations.GET("/export", h.Export.ExportStations)
		}
	}

	return r
}
