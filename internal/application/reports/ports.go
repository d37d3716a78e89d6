package reports

import "context"

// LowStockReportRow una línea del reporte de reposición.
type LowStockReportRow struct {
	ItemName         string
	ItemType         string
	DrugCode         string
	SiteName         string
	StockAreaName    string
	CurrentQuantity  int64
	ReorderThreshold *int64
	StockStatus      string
}

// LowStockReportData datos completos del reporte.
type LowStockReportData struct {
	CompanyName string
	GeneratedAt string
	Rows        []LowStockReportRow
}

// ReportGenerator genera la representación PDF del reporte de bajos/agotados.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, data LowStockReportData) ([]byte, error)
}
