package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-dashboard/internal/api/handlers"
	"portfolio-dashboard/internal/api/middleware"
	"portfolio-dashboard/internal/api/models"
	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/metrics"
)

// RouterOptions configure NewRouter.
type RouterOptions struct {
	PortfolioRoot  string
	AllowedOrigins []string
	Metrics        *metrics.Registry // nil disables /metrics
}

// NewRouter builds the HTTP surface over a dashboard service.
func NewRouter(svc *dashboard.Service, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	siteHandler := handlers.NewSiteHandler(svc)
	chartHandler := handlers.NewChartHandler(svc)

	router.GET("/health", func(c *gin.Context) {
		info, err := os.Stat(opts.PortfolioRoot)
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:        "ok",
			PortfolioRoot: opts.PortfolioRoot,
			RootPresent:   err == nil && info.IsDir(),
		})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics.Gatherer(), promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/selectors", handlers.ListSelectors)
		api.GET("/sites", siteHandler.ListSites)
		api.GET("/sites/:site", siteHandler.GetSite)
		api.GET("/sites/:site/overview", siteHandler.Overview)

		charts := api.Group("/sites/:site/charts")
		charts.GET("/monthly/:metric", chartHandler.Monthly)
		charts.GET("/daily/:metric", chartHandler.Daily)
		charts.GET("/hourly/:metric", chartHandler.Hourly)
		charts.GET("/duration/:month", chartHandler.Duration)
		charts.GET("/distribution/:metric/:month", chartHandler.Distribution)
		charts.GET("/combined", chartHandler.Combined)
	}

	router.NoRoute(func(c *gin.Context) {
		msg := "Not found"
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			msg = "Unknown API route " + c.Request.URL.Path
		}
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, msg))
	})
	return router
}
