package models

// ChartRequest holds the optional query parameters of chart endpoints.
type ChartRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv"` // default: json
}

// CatalogRequest filters the site list.
type CatalogRequest struct {
	Metric string `form:"metric,omitempty"` // only sites carrying this metric folder
}
