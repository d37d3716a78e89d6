package repository

import (
	"context"
	"time"

	"github.com/medstock/medstock-api/internal/domain/entity"
)

// ItemUsage consumo total dispensado de un artículo en una ventana de tiempo
// (suma de los deltas negativos del log, en valor absoluto).
type ItemUsage struct {
	ItemID         string
	TotalDispensed int64
	MovementCount  int
}

// DailyNetChange cambio neto de cantidad total de una empresa en un día.
type DailyNetChange struct {
	Day           time.Time
	NetChange     int64
	MovementCount int
}

// MovementDetail movimiento unido con artículo y ubicación para listados.
type MovementDetail struct {
	Movement      entity.StockMovement
	ItemName      string
	StockAreaName string
	SiteName      string
}

// StockMovementRepository define el puerto del log append-only de movimientos.
// Create se invoca dentro de la misma transacción que muta el registro de
// inventario; las consultas de lectura alimentan la analítica de consumo.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error

	// GetItemUsage agrega el consumo (deltas negativos) por artículo desde `since`.
	GetItemUsage(ctx context.Context, companyID string, since time.Time) ([]ItemUsage, error)

	// GetDailyNetChange agrega el delta neto diario de la empresa desde `since`.
	GetDailyNetChange(ctx context.Context, companyID string, since time.Time) ([]DailyNetChange, error)

	// ListRecent devuelve los últimos movimientos de la empresa, más reciente primero.
	ListRecent(ctx context.Context, companyID string, since time.Time, limit int) ([]MovementDetail, error)
}
