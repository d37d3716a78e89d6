package dto

import "time"

// CreateSiteRequest body para POST /api/sites.
type CreateSiteRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// UpdateSiteRequest body para PUT /api/sites/:id.
type UpdateSiteRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// SiteResponse representación de una sede.
type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteListResponse listado de sedes.
type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
	Total int            `json:"total"`
}

// CreateStockAreaRequest body para POST /api/stock-areas.
type CreateStockAreaRequest struct {
	Name   string `json:"name"`
	SiteID string `json:"site_id"`
}

// UpdateStockAreaRequest body para PUT /api/stock-areas/:id.
type UpdateStockAreaRequest struct {
	Name *string `json:"name,omitempty"`
}

// StockAreaResponse representación de un área de almacenamiento.
type StockAreaResponse struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockAreaListResponse listado de áreas.
type StockAreaListResponse struct {
	StockAreas []StockAreaResponse `json:"stock_areas"`
	Total      int                 `json:"total"`
}
