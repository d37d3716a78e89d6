package analytics

import (
	"context"
	"fmt"

	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen de la pantalla principal: estadísticas del
// inventario y conteos del catálogo, en paralelo.
type DashboardUseCase struct {
	analytics *UseCase
	itemRepo  repository.ItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analytics *UseCase, itemRepo repository.ItemRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, itemRepo: itemRepo}
}

// GetStats lanza las dos consultas en goroutines y combina los resultados.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) (*dto.DashboardStatsDTO, error) {
	type invResult struct {
		stats *dto.InventoryStatsDTO
		err   error
	}
	type itemResult struct {
		stats repository.ItemStats
		err   error
	}

	invCh := make(chan invResult, 1)
	itemCh := make(chan itemResult, 1)

	go func() {
		stats, err := uc.analytics.GetInventoryStats(ctx, companyID)
		invCh <- invResult{stats, err}
	}()
	go func() {
		stats, err := uc.itemRepo.GetStats(companyID)
		itemCh <- itemResult{stats, err}
	}()

	inv := <-invCh
	items := <-itemCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", inv.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", items.err)
	}

	return &dto.DashboardStatsDTO{
		Inventory: *inv.stats,
		Items: dto.ItemStatsResponse{
			Total:       items.stats.Total,
			Medications: items.stats.Medications,
			Supplies:    items.stats.Supplies,
			Hazardous:   items.stats.Hazardous,
			HighAlert:   items.stats.HighAlert,
			LASA:        items.stats.LASA,
		},
	}, nil
}
