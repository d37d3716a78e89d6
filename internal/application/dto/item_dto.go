package dto

import "time"

// CreateItemRequest body para POST /api/items.
// DrugCode es obligatorio cuando Type es MEDICATION.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	DrugCode    string `json:"drug_code,omitempty"`
	IsHazardous bool   `json:"is_hazardous"`
	IsHighAlert bool   `json:"is_high_alert"`
	IsLASA      bool   `json:"is_lasa"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos opcionales.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	DrugCode    *string `json:"drug_code,omitempty"`
	IsHazardous *bool   `json:"is_hazardous,omitempty"`
	IsHighAlert *bool   `json:"is_high_alert,omitempty"`
	IsLASA      *bool   `json:"is_lasa,omitempty"`
}

// ItemResponse representación de un artículo del catálogo.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	DrugCode    string    `json:"drug_code,omitempty"`
	IsHazardous bool      `json:"is_hazardous"`
	IsHighAlert bool      `json:"is_high_alert"`
	IsLASA      bool      `json:"is_lasa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse listado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// ItemStatsResponse conteos agregados del catálogo.
type ItemStatsResponse struct {
	Total       int `json:"total"`
	Medications int `json:"medications"`
	Supplies    int `json:"supplies"`
	Hazardous   int `json:"hazardous"`
	HighAlert   int `json:"high_alert"`
	LASA        int `json:"lasa"`
}
