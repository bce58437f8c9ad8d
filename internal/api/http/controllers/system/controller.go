package system

import (
	"log/slog"
	"net/http"
	"time"

	"arweaveCost/internal/ports"

	"github.com/gin-gonic/gin"
)

// Controller — системные маршруты: liveness, readiness и (если включено) админка мемо-кэша.
type Controller struct {
	repo  ports.IEstimateRepository
	cache ports.ICacheAdmin
	log   *slog.Logger
}

// New создаёт системный контроллер. repo == nil — журнал не настроен, readiness всегда ready.
// cache == nil — админские ручки кэша не регистрируются.
func New(repo ports.IEstimateRepository, cache ports.ICacheAdmin, log *slog.Logger) *Controller {
	return &Controller{repo: repo, cache: cache, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)

	if c.cache == nil {
		return
	}
	admin := r.Group("/api/v1/cache")
	admin.GET("", c.cacheEntries)
	admin.DELETE("", c.cacheClear)
	admin.PUT("/ttl", c.cacheSetTTL)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if c.repo != nil {
		if err := c.repo.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// CacheResponse — состояние мемо-кэша.
type CacheResponse struct {
	TTL  string   `json:"ttl"`
	Keys []string `json:"keys"`
}

// TTLRequest — новый TTL в формате time.ParseDuration ("30s", "0s").
type TTLRequest struct {
	TTL string `json:"ttl" binding:"required"`
}

func (c *Controller) cacheEntries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, CacheResponse{TTL: c.cache.TTL().String(), Keys: c.cache.Keys()})
}

func (c *Controller) cacheClear(ctx *gin.Context) {
	c.cache.Clear()
	c.log.Info("memo cache cleared")
	ctx.Status(http.StatusNoContent)
}

func (c *Controller) cacheSetTTL(ctx *gin.Context) {
	var req TTLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	ttl, err := time.ParseDuration(req.TTL)
	if err != nil || ttl < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid ttl: " + req.TTL})
		return
	}
	c.cache.SetTTL(ttl)
	c.log.Info("memo cache ttl changed", "ttl", ttl)
	ctx.JSON(http.StatusOK, CacheResponse{TTL: ttl.String(), Keys: c.cache.Keys()})
}
