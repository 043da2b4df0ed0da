package api

import (
	"net/http"
	"time"

	models "AgriPulse/internal/domain/models"
	domrepo "AgriPulse/internal/domain/repository"
	"AgriPulse/internal/usecase"
	xhttp "AgriPulse/pkg/http"
	xlogger "AgriPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReadingsEchoHandler serves the read API over the generation pipeline.
type ReadingsEchoHandler struct {
	logger  *xlogger.Logger
	gen     *usecase.ReadingGenerator
	latest  domrepo.LatestStore
	storage domrepo.Storage
}

func NewReadingsEchoHandler(
	logger *xlogger.Logger,
	gen *usecase.ReadingGenerator,
	latest domrepo.LatestStore,
	storage domrepo.Storage,
) *ReadingsEchoHandler {
	return &ReadingsEchoHandler{logger: logger, gen: gen, latest: latest, storage: storage}
}

func (h *ReadingsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/readings/latest", h.Latest)
	g.GET("/readings/history", h.History)
	g.GET("/status", h.Status)
	g.GET("/scenario", h.Scenario)
	e.GET("/healthz", h.Healthz)
}

// Latest returns the freshest reading per sensor from the cache.
func (h *ReadingsEchoHandler) Latest(c echo.Context) error {
	if h.latest == nil {
		return xhttp.NotFoundResponse(c, "latest cache is not enabled")
	}

	readings, err := h.latest.Latest(c.Request().Context())
	if err != nil {
		h.logger.Error("latest store error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, readings, int64(len(readings)))
}

// History returns stored readings for one sensor within a lookback window.
func (h *ReadingsEchoHandler) History(c echo.Context) error {
	if h.storage == nil {
		return xhttp.NotFoundResponse(c, "storage backend is not enabled")
	}

	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	to := time.Now().UTC()
	from := to.Add(-time.Duration(req.Hours) * time.Hour)

	readings, err := h.storage.History(c.Request().Context(), req.SensorID, from, to, req.Limit)
	if err != nil {
		h.logger.Error("history query error",
			xlogger.String("sensor_id", req.SensorID),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, readings, int64(len(readings)))
}

// Status returns the cumulative generation summary.
func (h *ReadingsEchoHandler) Status(c echo.Context) error {
	sum := h.gen.ReportStatus(c.Request().Context())
	return xhttp.SuccessResponse(c, sum)
}

// Scenario returns the active weather scenario.
func (h *ReadingsEchoHandler) Scenario(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.gen.ScenarioInfo())
}

// Healthz checks the storage connection when one is attached.
func (h *ReadingsEchoHandler) Healthz(c echo.Context) error {
	if h.storage != nil {
		if err := h.storage.Health(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
