package models

import (
	"portfolio-dashboard/internal/model"
)

// Error codes returned in ErrorDetail.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidMetric  = "INVALID_METRIC"
	CodeInvalidMonth   = "INVALID_MONTH"
	CodeSiteNotFound   = "SITE_NOT_FOUND"
	CodeCatalogError   = "CATALOG_ERROR"
	CodeExportError    = "EXPORT_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// SitesResponse represents the site list
type SitesResponse struct {
	Sites []model.Site `json:"sites"`
	Count int          `json:"count"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status        string `json:"status"`
	PortfolioRoot string `json:"portfolio_root"`
	RootPresent   bool   `json:"root_present"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
