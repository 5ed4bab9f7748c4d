package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-dashboard/internal/api/models"
	"portfolio-dashboard/internal/dashboard"
	"portfolio-dashboard/internal/data"
	"portfolio-dashboard/internal/model"
)

// SiteHandler serves the site catalog
type SiteHandler struct {
	svc *dashboard.Service
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(svc *dashboard.Service) *SiteHandler {
	return &SiteHandler{svc: svc}
}

// ListSites handles GET /api/v1/sites
func (h *SiteHandler) ListSites(c *gin.Context) {
	var req models.CatalogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}
	var filter model.Metric
	if req.Metric != "" {
		m, err := model.ParseMetric(req.Metric)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidMetric, err.Error()))
			return
		}
		filter = m
	}

	sites, err := h.svc.Catalog().Sites()
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			// An absent portfolio is an empty one.
			c.JSON(http.StatusOK, models.SitesResponse{Sites: []model.Site{}})
			return
		}
		log.Error().Err(err).Str("component", "api").Msg("Failed to list sites")
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeCatalogError, err.Error()))
		return
	}

	out := make([]model.Site, 0, len(sites))
	for _, s := range sites {
		if filter == "" || hasMetric(s, filter) {
			out = append(out, s)
		}
	}
	c.JSON(http.StatusOK, models.SitesResponse{Sites: out, Count: len(out)})
}

// GetSite handles GET /api/v1/sites/:site
func (h *SiteHandler) GetSite(c *gin.Context) {
	info, err := h.svc.SiteInfo(c.Param("site"))
	if err != nil {
		siteError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Overview handles GET /api/v1/sites/:site/overview
func (h *SiteHandler) Overview(c *gin.Context) {
	ov, err := h.svc.Overview(c.Param("site"))
	if err != nil {
		siteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ov)
}

// ListSelectors handles GET /api/v1/selectors
func ListSelectors(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.NewSelectors())
}

func hasMetric(s model.Site, m model.Metric) bool {
	for _, got := range s.Metrics {
		if got == m {
			return true
		}
	}
	return false
}

func siteError(c *gin.Context, err error) {
	if errors.Is(err, data.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeSiteNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, models.NewError(models.CodeCatalogError, err.Error()))
}
