package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/api/models"
	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/model"
)

// ChartHandler serves prepared charts. A chart that could not be prepared is
// still a 200: its status and message say why. Only bad input and unknown
// sites are HTTP errors.
type ChartHandler struct {
	svc *dashboard.Service
}

// NewChartHandler creates a new chart handler
func NewChartHandler(svc *dashboard.Service) *ChartHandler {
	return &ChartHandler{svc: svc}
}

// Monthly handles GET /api/v1/sites/:site/charts/monthly/:metric
func (h *ChartHandler) Monthly(c *gin.Context) {
	h.metricChart(c, h.svc.MonthlyForecast)
}

// Daily handles GET /api/v1/sites/:site/charts/daily/:metric
func (h *ChartHandler) Daily(c *gin.Context) {
	h.metricChart(c, h.svc.DailyForecast)
}

// Hourly handles GET /api/v1/sites/:site/charts/hourly/:metric
func (h *ChartHandler) Hourly(c *gin.Context) {
	h.metricChart(c, h.svc.HourlyProfile)
}

// Duration handles GET /api/v1/sites/:site/charts/duration/:month
func (h *ChartHandler) Duration(c *gin.Context) {
	site, ok := h.site(c)
	if !ok {
		return
	}
	month, ok := parseMonth(c)
	if !ok {
		return
	}
	h.respond(c, h.svc.DurationCurve(site, month))
}

// Distribution handles GET /api/v1/sites/:site/charts/distribution/:metric/:month
func (h *ChartHandler) Distribution(c *gin.Context) {
	site, ok := h.site(c)
	if !ok {
		return
	}
	m, ok := parseMetric(c)
	if !ok {
		return
	}
	month, ok := parseMonth(c)
	if !ok {
		return
	}
	h.respond(c, h.svc.Distribution(site, m, month))
}

// Combined handles GET /api/v1/sites/:site/charts/combined
func (h *ChartHandler) Combined(c *gin.Context) {
	site, ok := h.site(c)
	if !ok {
		return
	}
	h.respond(c, h.svc.Combined(site))
}

func (h *ChartHandler) metricChart(c *gin.Context, build func(string, model.Metric) *dashboard.Chart) {
	site, ok := h.site(c)
	if !ok {
		return
	}
	m, ok := parseMetric(c)
	if !ok {
		return
	}
	h.respond(c, build(site, m))
}

func (h *ChartHandler) site(c *gin.Context) (string, bool) {
	site := c.Param("site")
	if err := h.svc.Catalog().CheckSite(site); err != nil {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeSiteNotFound, err.Error()))
		return "", false
	}
	return site, true
}

func (h *ChartHandler) respond(c *gin.Context, chart *dashboard.Chart) {
	var req models.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}
	if req.Format != "csv" {
		c.JSON(http.StatusOK, chart)
		return
	}

	name := fmt.Sprintf("%s_%s.csv", chart.Site, chart.Kind)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := dashboard.EncodeChartCSV(c.Writer, chart); err != nil {
		_ = c.Error(err)
	}
}

func parseMetric(c *gin.Context) (model.Metric, bool) {
	m, err := model.ParseMetric(c.Param("metric"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidMetric, err.Error()))
		return "", false
	}
	return m, true
}

func parseMonth(c *gin.Context) (int, bool) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || !model.ValidMonth(month) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidMonth,
				Message: "month must be a number from 1 to 12",
				Details: map[string]interface{}{"month": c.Param("month")},
			},
		})
		return 0, false
	}
	return month, true
}
