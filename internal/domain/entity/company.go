package entity

import "time"

// Company representa un cliente (hospital, clínica o farmacia).
// Es la frontera de aislamiento multi-tenant: toda entidad pertenece a una Company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
