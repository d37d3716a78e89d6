package entity

import "time"

// StockArea representa un área de almacenamiento dentro de una sede
// (ej. farmacia principal, carro de paro, bodega de insumos).
// Es la unidad atómica a la que se ata el inventario.
type StockArea struct {
	ID        string
	SiteID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
