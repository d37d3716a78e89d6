package inventory

import (
	"context"

	"github.com/medstock/medstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el read-modify-write de un
// registro y su fila del log de movimientos sean atómicos: o se confirman
// juntos o no se observa ningún cambio parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
