package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeRestock    = "RESTOCK"    // entrada (delta positivo)
	MovementTypeUsage      = "USAGE"      // dispensación (delta negativo)
	MovementTypeAdjustment = "ADJUSTMENT" // corrección absoluta vía setFields
)

// StockMovement es una entrada del log append-only de movimientos.
// Cada ajuste exitoso del inventario escribe exactamente una fila, en la
// misma transacción que muta la cantidad; la analítica de consumo y las
// tendencias se derivan de este log en vez de simularse.
type StockMovement struct {
	ID          string
	RecordID    string
	ItemID      string
	StockAreaID string
	Type        string
	Quantity    int64 // delta con signo aplicado al registro
	Reason      string
	CreatedAt   time.Time
	CreatedBy   string
}
