package repository

import "github.com/medstock/medstock-api/internal/domain/entity"

// InventoryFilters filtros del listado de inventario. SiteID, StockAreaID e
// ItemType se resuelven en SQL; Search aplica ILIKE sobre nombre y
// descripción del artículo. LowStockOnly lo aplica el caso de uso con el
// clasificador de umbrales.
type InventoryFilters struct {
	SiteID       string
	StockAreaID  string
	ItemType     string
	Search       string
	LowStockOnly bool
}

// InventoryDetail es la vista de lectura de un registro unido con su
// artículo y su ubicación (registro + item + área + sede). La arma el
// repositorio en una sola consulta; el núcleo la trata como valor.
type InventoryDetail struct {
	Record          entity.InventoryRecord
	ItemName        string
	ItemDescription string
	ItemType        string
	DrugCode        string
	IsHazardous     bool
	IsHighAlert     bool
	IsLASA          bool
	StockAreaName   string
	SiteID          string
	SiteName        string
}

// InventoryRepository define el puerto de persistencia para InventoryRecord (DIP).
// Clave compuesta (item_id, stock_area_id) con constraint único; las lecturas
// por ID filtran por empresa vía stock_area → site.
type InventoryRepository interface {
	Create(record *entity.InventoryRecord) error
	GetByID(id, companyID string) (*entity.InventoryRecord, error)
	GetDetail(id, companyID string) (*InventoryDetail, error)
	GetByItemAndStockArea(itemID, stockAreaID string) (*entity.InventoryRecord, error)
	ListByCompany(companyID string, filters InventoryFilters) ([]InventoryDetail, error)
	Update(record *entity.InventoryRecord) error
	Delete(id string) error

	// GetForUpdate obtiene el registro bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(id, companyID string) (*entity.InventoryRecord, error)

	// CountByItem / CountByStockArea cuentan dependientes (bloqueo de borrado).
	CountByItem(itemID string) (int, error)
	CountByStockArea(stockAreaID string) (int, error)
}
