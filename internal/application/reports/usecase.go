// Package reports genera reportes imprimibles a partir del snapshot de
// inventario (hoy: reporte de reposición de bajos y agotados).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/medstock/medstock-api/internal/domain"
	dominv "github.com/medstock/medstock-api/internal/domain/inventory"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

// UseCase caso de uso de reportes.
type UseCase struct {
	inventoryRepo repository.InventoryRepository
	companyRepo   repository.CompanyRepository
	generator     ReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	inventoryRepo repository.InventoryRepository,
	companyRepo repository.CompanyRepository,
	generator ReportGenerator,
) *UseCase {
	return &UseCase{inventoryRepo: inventoryRepo, companyRepo: companyRepo, generator: generator}
}

// GenerateLowStockPDF arma el reporte de registros LOW_STOCK y OUT_OF_STOCK
// de la empresa y devuelve los bytes del PDF.
func (uc *UseCase) GenerateLowStockPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.inventoryRepo.ListByCompany(companyID, repository.InventoryFilters{})
	if err != nil {
		return nil, fmt.Errorf("reporte: listar inventario: %w", err)
	}

	rows := make([]LowStockReportRow, 0)
	for i := range details {
		d := &details[i]
		status := dominv.Classify(d.Record.CurrentQuantity, d.Record.ReorderThreshold)
		if status == dominv.StatusOK {
			continue
		}
		rows = append(rows, LowStockReportRow{
			ItemName:         d.ItemName,
			ItemType:         d.ItemType,
			DrugCode:         d.DrugCode,
			SiteName:         d.SiteName,
			StockAreaName:    d.StockAreaName,
			CurrentQuantity:  d.Record.CurrentQuantity,
			ReorderThreshold: d.Record.ReorderThreshold,
			StockStatus:      string(status),
		})
	}

	data := LowStockReportData{
		CompanyName: company.Name,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Rows:        rows,
	}
	return uc.generator.GenerateLowStockReport(ctx, data)
}
