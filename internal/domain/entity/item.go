package entity

import "time"

// Tipos de artículo del catálogo.
const (
	ItemTypeMedication = "MEDICATION"
	ItemTypeSupply     = "SUPPLY"
)

// Item representa un artículo del catálogo: medicamento o insumo.
// DrugCode es obligatorio cuando Type es MEDICATION.
// Las tres banderas de seguridad son independientes entre sí
// (LASA = Look-Alike-Sound-Alike, nombres de fármacos confundibles).
type Item struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Type        string // MEDICATION | SUPPLY
	DrugCode    string
	IsHazardous bool
	IsHighAlert bool
	IsLASA      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasSafetyFlag indica si el artículo tiene al menos una bandera de seguridad activa.
func (i *Item) HasSafetyFlag() bool {
	return i.IsHazardous || i.IsHighAlert || i.IsLASA
}
