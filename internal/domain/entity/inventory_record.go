package entity

import "time"

// InventoryRecord representa la existencia de un artículo en un área de
// almacenamiento: a lo sumo un registro por par (ItemID, StockAreaID).
// CurrentQuantity nunca es negativa. MaxCapacity es un objetivo blando
// (puede excederse temporalmente); ReorderThreshold dispara LOW_STOCK.
type InventoryRecord struct {
	ID               string
	ItemID           string
	StockAreaID      string
	CurrentQuantity  int64
	MaxCapacity      *int64
	ReorderThreshold *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
