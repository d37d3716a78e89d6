package dto

import "github.com/shopspring/decimal"

// InventoryStatsDTO estadísticas generales del inventario de una empresa.
type InventoryStatsDTO struct {
	TotalRecords    int             `json:"total_records"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	TotalQuantity   int64           `json:"total_quantity"`
	MeanQuantity    decimal.Decimal `json:"mean_quantity"`
}

// SafetyFlagsDTO banderas de seguridad de un medicamento.
type SafetyFlagsDTO struct {
	IsHazardous bool `json:"is_hazardous"`
	IsHighAlert bool `json:"is_high_alert"`
	IsLASA      bool `json:"is_lasa"`
}

// UsageAnalyticsDTO consumo estimado y proyección de agotamiento por artículo.
// PredictedDaysRemaining es -1 (NoDepletionForecast) cuando el consumo diario
// promedio es <= 0: el stock no está disminuyendo y no hay proyección.
type UsageAnalyticsDTO struct {
	ItemID                 string          `json:"item_id"`
	ItemName               string          `json:"item_name"`
	ItemType               string          `json:"item_type"`
	TotalDispensed         int64           `json:"total_dispensed"`
	AverageDailyUsage      decimal.Decimal `json:"average_daily_usage"`
	CurrentStock           int64           `json:"current_stock"`
	PredictedDaysRemaining int64           `json:"predicted_days_remaining"`
	IsHighUsage            bool            `json:"is_high_usage"`
	SafetyFlags            SafetyFlagsDTO  `json:"safety_flags"`
}

// CriticalAlertDTO alerta por medicamento de seguridad bajo o agotado.
type CriticalAlertDTO struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"` // HIGH | MEDIUM | LOW
	ItemID   string `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
}

// ComplianceMetricsDTO métricas de cumplimiento de medicamentos de seguridad.
// ComplianceScore es 0–100: fracción de medicamentos con banderas cuyo
// inventario clasifica OK (100 si no hay medicamentos con banderas).
type ComplianceMetricsDTO struct {
	TotalMedications int                `json:"total_medications"`
	HazardousCount   int                `json:"hazardous_count"`
	HighAlertCount   int                `json:"high_alert_count"`
	LASACount        int                `json:"lasa_count"`
	ComplianceScore  int                `json:"compliance_score"`
	CriticalAlerts   []CriticalAlertDTO `json:"critical_alerts"`
}

// SitePerformanceDTO desempeño de inventario por sede.
// EfficiencyScore = round(0.3*utilización de capacidad + 0.7*salud de stock).
type SitePerformanceDTO struct {
	SiteID              string          `json:"site_id"`
	SiteName            string          `json:"site_name"`
	TotalItems          int             `json:"total_items"`
	StockAreas          int             `json:"stock_areas"`
	LowStockItems       int             `json:"low_stock_items"`
	OutOfStockItems     int             `json:"out_of_stock_items"`
	CapacityUtilization decimal.Decimal `json:"capacity_utilization"`
	EfficiencyScore     int             `json:"efficiency_score"`
}

// PredictiveAlertDTO alerta de agotamiento proyectado dentro de 14 días.
type PredictiveAlertDTO struct {
	Type              string `json:"type"`
	Message           string `json:"message"`
	Priority          string `json:"priority"` // HIGH <=3d | MEDIUM <=7d | LOW
	DaysUntilCritical int64  `json:"days_until_critical"`
	ItemID            string `json:"item_id"`
	ItemName          string `json:"item_name"`
	CurrentStock      int64  `json:"current_stock"`
	PredictedRunOut   string `json:"predicted_run_out"` // yyyy-mm-dd
}

// TrendPointDTO punto diario de la serie de tendencias, reconstruido desde el
// log de movimientos (sin simulación).
type TrendPointDTO struct {
	Date          string `json:"date"` // yyyy-mm-dd
	TotalQuantity int64  `json:"total_quantity"`
	MovementCount int    `json:"movement_count"`
}

// MovementDTO movimiento reciente del log para el dashboard.
type MovementDTO struct {
	Date          string `json:"date"` // yyyy-mm-dd hh:mm
	Type          string `json:"type"`
	Quantity      int64  `json:"quantity"`
	ItemName      string `json:"item_name"`
	StockAreaName string `json:"stock_area_name"`
	SiteName      string `json:"site_name"`
	Reason        string `json:"reason,omitempty"`
}
