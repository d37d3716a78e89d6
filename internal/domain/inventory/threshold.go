// Package inventory contiene servicios de dominio puros del libro de inventario.
package inventory

// StockStatus clasificación de existencias de un registro de inventario.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOK         StockStatus = "OK"
)

// Classify clasifica un registro según cantidad y umbral de reorden.
// Cantidad 0 siempre es OUT_OF_STOCK, sin importar el umbral.
// Con umbral definido y cantidad <= umbral es LOW_STOCK; si no, OK.
// Función total y determinista; segura sobre snapshots desactualizados.
func Classify(currentQuantity int64, reorderThreshold *int64) StockStatus {
	if currentQuantity == 0 {
		return StatusOutOfStock
	}
	if reorderThreshold != nil && currentQuantity <= *reorderThreshold {
		return StatusLowStock
	}
	return StatusOK
}

// IsBelowThreshold indica si el registro clasifica LOW_STOCK u OUT_OF_STOCK.
// Es el predicado del filtro lowStockOnly y de los conteos del dashboard.
func IsBelowThreshold(currentQuantity int64, reorderThreshold *int64) bool {
	return Classify(currentQuantity, reorderThreshold) != StatusOK
}
