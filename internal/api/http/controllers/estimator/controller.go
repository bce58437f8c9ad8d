package estimator

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

// Controller — маршруты оценки стоимости: estimate, prices, storage-cost, history.
type Controller struct {
	uc  ports.IEstimatorUseCase
	log *slog.Logger
}

// New создаёт контроллер.
func New(uc ports.IEstimatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/estimate", c.estimate)
	api.GET("/prices", c.prices)
	api.GET("/storage-cost", c.storageCost)
	api.GET("/history", c.history)
}

// statusFor переводит ошибку юзкейса в HTTP-статус.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку в ответ и в лог (4xx — Warn, остальное — Error).
func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	status := statusFor(err)
	_ = ctx.Error(err)
	if status < http.StatusInternalServerError {
		c.log.Warn(op+" rejected", "error", err)
	} else {
		c.log.Error(op+" failed", "error", err)
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// @Summary Оценить стоимость загрузки
// @Description Принимает размеры файлов в байтах, возвращает стоимость в AR и SOL с комиссией.
// @Tags estimator
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Размеры файлов"
// @Success 200 {object} domain.CostReport
// @Failure 400 {object} ErrorResponse "Невалидные размеры"
// @Failure 502 {object} ErrorResponse "Апстрим ответил мусором"
// @Router /api/v1/estimate [post]
func (c *Controller) estimate(ctx *gin.Context) {
	var req EstimateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("estimate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	sizes, err := req.Sizes()
	if err != nil {
		c.fail(ctx, "estimate", err)
		return
	}

	report, err := c.uc.Calculate(ctx.Request.Context(), sizes)
	if err != nil {
		c.fail(ctx, "estimate", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// @Summary Курсы AR и SOL в USD
// @Tags estimator
// @Produce json
// @Success 200 {object} PricesResponse
// @Router /api/v1/prices [get]
func (c *Controller) prices(ctx *gin.Context) {
	quote, err := c.uc.FetchTokenPrices(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "prices", err)
		return
	}
	ctx.JSON(http.StatusOK, PricesResponse{Arweave: quote.ArweaveUSD, Solana: quote.SolanaUSD})
}

// @Summary Стоимость хранения N байт в winston
// @Tags estimator
// @Produce json
// @Param bytes query int true "Число байт"
// @Success 200 {object} StorageCostResponse
// @Failure 400 {object} ErrorResponse "Нет или невалидный bytes"
// @Router /api/v1/storage-cost [get]
func (c *Controller) storageCost(ctx *gin.Context) {
	totalBytes, err := strconv.ParseFloat(ctx.Query("bytes"), 64)
	if err != nil {
		totalBytes = math.NaN()
	}

	cost, err := c.uc.FetchStorageCost(ctx.Request.Context(), totalBytes)
	if err != nil {
		c.fail(ctx, "storage cost", err)
		return
	}
	ctx.JSON(http.StatusOK, StorageCostResponse{TotalBytes: int64(totalBytes), ByteCost: cost})
}

// @Summary Журнал расчётов
// @Tags estimator
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, est := range list {
		items[i] = HistoryItem{
			ID:        est.ID,
			FileCount: est.FileCount,
			Report:    est.Report,
			Timestamp: est.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
