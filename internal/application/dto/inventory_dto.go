package dto

import "time"

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	ItemID           string `json:"item_id"`
	StockAreaID      string `json:"stock_area_id"`
	CurrentQuantity  int64  `json:"current_quantity"`
	MaxCapacity      *int64 `json:"max_capacity,omitempty"`
	ReorderThreshold *int64 `json:"reorder_threshold,omitempty"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:id.
// Sobrescritura absoluta de los campos presentes.
type UpdateInventoryRequest struct {
	CurrentQuantity  *int64 `json:"current_quantity,omitempty"`
	MaxCapacity      *int64 `json:"max_capacity,omitempty"`
	ReorderThreshold *int64 `json:"reorder_threshold,omitempty"`
}

// AdjustInventoryRequest body para POST /api/inventory/:id/adjust.
// Adjustment es un delta con signo distinto de cero.
type AdjustInventoryRequest struct {
	Adjustment int64  `json:"adjustment"`
	Reason     string `json:"reason,omitempty"`
}

// InventoryResponse registro de inventario unido con artículo y ubicación.
type InventoryResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"item_id"`
	ItemName         string    `json:"item_name"`
	ItemType         string    `json:"item_type"`
	DrugCode         string    `json:"drug_code,omitempty"`
	IsHazardous      bool      `json:"is_hazardous"`
	IsHighAlert      bool      `json:"is_high_alert"`
	IsLASA           bool      `json:"is_lasa"`
	StockAreaID      string    `json:"stock_area_id"`
	StockAreaName    string    `json:"stock_area_name"`
	SiteID           string    `json:"site_id"`
	SiteName         string    `json:"site_name"`
	CurrentQuantity  int64     `json:"current_quantity"`
	MaxCapacity      *int64    `json:"max_capacity,omitempty"`
	ReorderThreshold *int64    `json:"reorder_threshold,omitempty"`
	StockStatus      string    `json:"stock_status"` // OUT_OF_STOCK | LOW_STOCK | OK
	UpdatedAt        time.Time `json:"updated_at"`
}

// InventoryListResponse listado de registros de inventario.
type InventoryListResponse struct {
	Inventory []InventoryResponse `json:"inventory"`
	Total     int                 `json:"total"`
}
