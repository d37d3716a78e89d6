package entity

import "time"

// Site representa una sede física (hospital, clínica, farmacia central).
// Primer nivel de la jerarquía de ubicaciones: Site → StockArea.
type Site struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
