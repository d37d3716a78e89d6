package repository

import "github.com/medstock/medstock-api/internal/domain/entity"

// ItemFilters filtros de listado del catálogo. Las dimensiones se combinan
// con AND; la búsqueda de texto aplica OR sobre name, description y drug_code
// (case-insensitive).
type ItemFilters struct {
	Type        string // MEDICATION | SUPPLY | vacío = todos
	IsHazardous *bool
	IsHighAlert *bool
	IsLASA      *bool
	Search      string
}

// ItemStats conteos agregados del catálogo de una empresa.
type ItemStats struct {
	Total       int
	Medications int
	Supplies    int
	Hazardous   int
	HighAlert   int
	LASA        int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las lecturas filtran por companyID: un artículo de otra empresa
// es indistinguible de uno inexistente.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id, companyID string) (*entity.Item, error)
	ListByCompany(companyID string, filters ItemFilters) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error

	// ListMedicationsWithSafetyFlags devuelve los medicamentos con al menos
	// una bandera de seguridad activa, ordenados por nombre.
	ListMedicationsWithSafetyFlags(companyID string) ([]*entity.Item, error)
	GetStats(companyID string) (ItemStats, error)
}
