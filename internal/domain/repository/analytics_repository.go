package repository

import "context"

// AnalyticsRepository define la lectura de snapshots para el motor de
// analítica. Las implementaciones son read-only: nunca mutan el inventario.
// El snapshot es consistente por llamada pero no transaccional respecto a
// escrituras concurrentes (la analítica es diagnóstica, no autoritativa).
type AnalyticsRepository interface {
	// GetInventorySnapshot devuelve todos los registros de la empresa unidos
	// con artículo y ubicación, ordenados por última actualización.
	GetInventorySnapshot(ctx context.Context, companyID string) ([]InventoryDetail, error)
}
