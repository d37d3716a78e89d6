package postgres

import (
	"context"
	"fmt"

	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo lectura de snapshots para el motor de analítica (read-only).
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventorySnapshot devuelve todos los registros de la empresa unidos con
// artículo y ubicación, ordenados por última actualización descendente.
func (r *AnalyticsRepo) GetInventorySnapshot(ctx context.Context, companyID string) ([]repository.InventoryDetail, error) {
	query := detailSelect + `
		WHERE s.company_id = $1
		ORDER BY r.updated_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("inventory snapshot: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}
