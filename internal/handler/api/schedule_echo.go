package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	models "TrendPost/internal/domain/models"
	"TrendPost/internal/services/trend"
	"TrendPost/internal/usecase"
	xhttp "TrendPost/pkg/http"
	xlogger "TrendPost/pkg/logger"
)

// ScheduleEchoHandler exposes the scheduling engine over HTTP.
type ScheduleEchoHandler struct {
	logger    *xlogger.Logger
	scheduler *usecase.Scheduler
}

func NewScheduleEchoHandler(logger *xlogger.Logger, scheduler *usecase.Scheduler) *ScheduleEchoHandler {
	return &ScheduleEchoHandler{logger: logger, scheduler: scheduler}
}

func (h *ScheduleEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/schedule")
	g.POST("/recommend", h.Recommend)
	g.POST("/recommend/batch", h.RecommendBatch)
	g.GET("/best-times", h.BestTimes)

	e.GET("/healthz", h.Health)
}

func (h *ScheduleEchoHandler) Recommend(c echo.Context) error {
	req := &models.RecommendRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ev, err := h.scheduler.Recommend(c.Request().Context(), req)
	if err != nil {
		var verr *trend.ValidationError
		if errors.As(err, &verr) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(verr.Error()))
		}
		h.logger.Error("recommend usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, ev)
}

func (h *ScheduleEchoHandler) RecommendBatch(c echo.Context) error {
	req := &models.RecommendBatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.scheduler.RecommendBatch(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("recommend batch usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ScheduleEchoHandler) BestTimes(c echo.Context) error {
	req := &models.BestTimesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return xhttp.SuccessResponse(c, map[string]interface{}{
		"platform":   req.Platform,
		"best_times": h.scheduler.BestTimes(req.Platform),
	})
}

func (h *ScheduleEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
