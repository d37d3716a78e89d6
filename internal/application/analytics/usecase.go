// Package analytics contiene el motor de analítica derivada: estadísticas de
// inventario, consumo estimado, métricas de cumplimiento, desempeño por sede,
// alertas predictivas y tendencias. Todas las vistas son funciones puras del
// snapshot leído (más el log de movimientos); nunca mutan el inventario.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain/entity"
	dominv "github.com/medstock/medstock-api/internal/domain/inventory"
	"github.com/medstock/medstock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	// usageWindowDays ventana del cálculo de consumo promedio diario.
	usageWindowDays = 30
	// predictiveWindowDays horizonte de las alertas de agotamiento.
	predictiveWindowDays = 14
	// NoDepletionForecast valor centinela de predicted_days_remaining cuando
	// el consumo promedio es <= 0: el stock no está disminuyendo.
	NoDepletionForecast int64 = -1
)

// highUsageDailyRate umbral fijo de consumo diario para marcar is_high_usage.
var highUsageDailyRate = decimal.NewFromFloat(3.5)

// UseCase motor de analítica. Lee snapshots vía AnalyticsRepository y el log
// de movimientos vía StockMovementRepository; catálogo y ubicaciones solo
// para enriquecer (conteos de sedes/áreas, medicamentos de seguridad).
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movementRepo  repository.StockMovementRepository
	itemRepo      repository.ItemRepository
	siteRepo      repository.SiteRepository
	areaRepo      repository.StockAreaRepository
}

// NewUseCase construye el motor de analítica.
func NewUseCase(
	analyticsRepo repository.AnalyticsRepository,
	movementRepo repository.StockMovementRepository,
	itemRepo repository.ItemRepository,
	siteRepo repository.SiteRepository,
	areaRepo repository.StockAreaRepository,
) *UseCase {
	return &UseCase{
		analyticsRepo: analyticsRepo,
		movementRepo:  movementRepo,
		itemRepo:      itemRepo,
		siteRepo:      siteRepo,
		areaRepo:      areaRepo,
	}
}

// GetInventoryStats calcula conteo total, bajos, agotados, suma y promedio
// de cantidades del snapshot actual.
func (uc *UseCase) GetInventoryStats(ctx context.Context, companyID string) (*dto.InventoryStatsDTO, error) {
	snapshot, err := uc.analyticsRepo.GetInventorySnapshot(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	return computeInventoryStats(snapshot), nil
}

// computeInventoryStats es la parte pura de GetInventoryStats.
func computeInventoryStats(snapshot []repository.InventoryDetail) *dto.InventoryStatsDTO {
	stats := &dto.InventoryStatsDTO{MeanQuantity: decimal.Zero}
	var total int64
	for i := range snapshot {
		rec := &snapshot[i].Record
		stats.TotalRecords++
		total += rec.CurrentQuantity
		switch dominv.Classify(rec.CurrentQuantity, rec.ReorderThreshold) {
		case dominv.StatusOutOfStock:
			stats.OutOfStockCount++
		case dominv.StatusLowStock:
			stats.LowStockCount++
		}
	}
	stats.TotalQuantity = total
	if stats.TotalRecords > 0 {
		stats.MeanQuantity = decimal.NewFromInt(total).
			Div(decimal.NewFromInt(int64(stats.TotalRecords))).Round(2)
	}
	return stats
}

// GetUsageAnalytics calcula, por artículo, el consumo dispensado en los
// últimos 30 días (deltas negativos del log), el promedio diario y la
// proyección de días restantes. Consumo <= 0 produce el centinela
// NoDepletionForecast en lugar de dividir por cero.
func (uc *UseCase) GetUsageAnalytics(ctx context.Context, companyID string) ([]dto.UsageAnalyticsDTO, error) {
	snapshot, err := uc.analyticsRepo.GetInventorySnapshot(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	since := time.Now().AddDate(0, 0, -usageWindowDays)
	usage, err := uc.movementRepo.GetItemUsage(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("analytics: consumo por artículo: %w", err)
	}
	return computeUsageAnalytics(snapshot, usage), nil
}

// computeUsageAnalytics agrega el snapshot por artículo y cruza con el
// consumo del log. Determinista para cualquier entrada de consumo.
func computeUsageAnalytics(snapshot []repository.InventoryDetail, usage []repository.ItemUsage) []dto.UsageAnalyticsDTO {
	dispensedByItem := make(map[string]int64, len(usage))
	for _, u := range usage {
		dispensedByItem[u.ItemID] = u.TotalDispensed
	}

	type itemAgg struct {
		dto dto.UsageAnalyticsDTO
	}
	byItem := make(map[string]*itemAgg)
	order := make([]string, 0)
	for i := range snapshot {
		d := &snapshot[i]
		agg, ok := byItem[d.Record.ItemID]
		if !ok {
			agg = &itemAgg{dto: dto.UsageAnalyticsDTO{
				ItemID:   d.Record.ItemID,
				ItemName: d.ItemName,
				ItemType: d.ItemType,
				SafetyFlags: dto.SafetyFlagsDTO{
					IsHazardous: d.IsHazardous,
					IsHighAlert: d.IsHighAlert,
					IsLASA:      d.IsLASA,
				},
			}}
			byItem[d.Record.ItemID] = agg
			order = append(order, d.Record.ItemID)
		}
		agg.dto.CurrentStock += d.Record.CurrentQuantity
	}

	out := make([]dto.UsageAnalyticsDTO, 0, len(order))
	days := decimal.NewFromInt(usageWindowDays)
	for _, itemID := range order {
		agg := byItem[itemID]
		dispensed := dispensedByItem[itemID]
		agg.dto.TotalDispensed = dispensed
		avg := decimal.NewFromInt(dispensed).Div(days).Round(2)
		agg.dto.AverageDailyUsage = avg
		if avg.IsPositive() {
			agg.dto.PredictedDaysRemaining = decimal.NewFromInt(agg.dto.CurrentStock).Div(avg).IntPart()
			agg.dto.IsHighUsage = avg.GreaterThan(highUsageDailyRate)
		} else {
			agg.dto.PredictedDaysRemaining = NoDepletionForecast
		}
		out = append(out, agg.dto)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDispensed > out[j].TotalDispensed
	})
	return out
}

// GetComplianceMetrics calcula el puntaje de cumplimiento 0–100 sobre los
// medicamentos con banderas de seguridad y una alerta crítica por cada
// registro de esos medicamentos que esté bajo o agotado.
func (uc *UseCase) GetComplianceMetrics(ctx context.Context, companyID string) (*dto.ComplianceMetricsDTO, error) {
	safetyMeds, err := uc.itemRepo.ListMedicationsWithSafetyFlags(companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: medicamentos de seguridad: %w", err)
	}
	itemStats, err := uc.itemRepo.GetStats(companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: stats de catálogo: %w", err)
	}
	snapshot, err := uc.analyticsRepo.GetInventorySnapshot(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}

	return computeComplianceMetrics(safetyMeds, itemStats.Medications, snapshot), nil
}

// computeComplianceMetrics es la parte pura de GetComplianceMetrics.
// Sin medicamentos con banderas el puntaje es 100 por definición.
func computeComplianceMetrics(safetyMeds []*entity.Item, totalMedications int, snapshot []repository.InventoryDetail) *dto.ComplianceMetricsDTO {
	metrics := &dto.ComplianceMetricsDTO{
		TotalMedications: totalMedications,
		CriticalAlerts:   []dto.CriticalAlertDTO{},
	}
	safetyIDs := make(map[string]bool, len(safetyMeds))
	for _, m := range safetyMeds {
		safetyIDs[m.ID] = true
		if m.IsHazardous {
			metrics.HazardousCount++
		}
		if m.IsHighAlert {
			metrics.HighAlertCount++
		}
		if m.IsLASA {
			metrics.LASACount++
		}
	}

	// Una alerta por registro bajo/agotado; el puntaje cuenta artículos.
	nonCompliant := make(map[string]bool)
	for i := range snapshot {
		d := &snapshot[i]
		if !safetyIDs[d.Record.ItemID] {
			continue
		}
		status := dominv.Classify(d.Record.CurrentQuantity, d.Record.ReorderThreshold)
		if status == dominv.StatusOK {
			continue
		}
		nonCompliant[d.Record.ItemID] = true
		metrics.CriticalAlerts = append(metrics.CriticalAlerts, buildCriticalAlert(d, status))
	}

	if len(safetyIDs) == 0 {
		metrics.ComplianceScore = 100
	} else {
		compliant := len(safetyIDs) - len(nonCompliant)
		metrics.ComplianceScore = int(decimal.NewFromInt(int64(compliant * 100)).
			Div(decimal.NewFromInt(int64(len(safetyIDs)))).Round(0).IntPart())
	}
	return metrics
}

func buildCriticalAlert(d *repository.InventoryDetail, status dominv.StockStatus) dto.CriticalAlertDTO {
	flag := "LASA"
	switch {
	case d.IsHighAlert:
		flag = "High Alert"
	case d.IsHazardous:
		flag = "Hazardous"
	}
	state := "low stock"
	priority := "MEDIUM"
	if status == dominv.StatusOutOfStock {
		state = "out of stock"
		priority = "HIGH"
	}
	return dto.CriticalAlertDTO{
		Type:     "LOW_STOCK_SAFETY_MEDICATION",
		Message:  fmt.Sprintf("%s medication %q is %s at %s", flag, d.ItemName, state, d.StockAreaName),
		Priority: priority,
		ItemID:   d.Record.ItemID,
		ItemName: d.ItemName,
	}
}

// GetSitePerformance calcula, por sede, conteos de registros y áreas, bajos y
// agotados, utilización de capacidad y el puntaje de eficiencia
// round(0.3*utilización + 0.7*salud de stock).
func (uc *UseCase) GetSitePerformance(ctx context.Context, companyID string) ([]dto.SitePerformanceDTO, error) {
	sites, err := uc.siteRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: sedes: %w", err)
	}
	areas, err := uc.areaRepo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: áreas: %w", err)
	}
	snapshot, err := uc.analyticsRepo.GetInventorySnapshot(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}

	return computeSitePerformance(sites, areas, snapshot), nil
}

// computeSitePerformance es la parte pura de GetSitePerformance. Una sede
// sin registros tiene salud 100 y utilización 0.
func computeSitePerformance(sites []*entity.Site, areas []*entity.StockArea, snapshot []repository.InventoryDetail) []dto.SitePerformanceDTO {
	areasBySite := make(map[string]int)
	for _, a := range areas {
		areasBySite[a.SiteID]++
	}

	type siteAgg struct {
		records  int
		low      int
		out      int
		totalQty int64
		totalCap int64
	}
	bySite := make(map[string]*siteAgg, len(sites))
	for i := range snapshot {
		d := &snapshot[i]
		agg, ok := bySite[d.SiteID]
		if !ok {
			agg = &siteAgg{}
			bySite[d.SiteID] = agg
		}
		agg.records++
		agg.totalQty += d.Record.CurrentQuantity
		if d.Record.MaxCapacity != nil {
			agg.totalCap += *d.Record.MaxCapacity
		}
		switch dominv.Classify(d.Record.CurrentQuantity, d.Record.ReorderThreshold) {
		case dominv.StatusOutOfStock:
			agg.out++
		case dominv.StatusLowStock:
			agg.low++
		}
	}

	hundred := decimal.NewFromInt(100)
	out := make([]dto.SitePerformanceDTO, 0, len(sites))
	for _, site := range sites {
		agg := bySite[site.ID]
		if agg == nil {
			agg = &siteAgg{}
		}
		utilization := decimal.Zero
		if agg.totalCap > 0 {
			utilization = decimal.NewFromInt(agg.totalQty).
				Div(decimal.NewFromInt(agg.totalCap)).Mul(hundred).Round(2)
		}
		health := hundred
		if agg.records > 0 {
			health = decimal.NewFromInt(int64(agg.records - agg.out)).
				Div(decimal.NewFromInt(int64(agg.records))).Mul(hundred)
		}
		efficiency := utilization.Mul(decimal.NewFromFloat(0.3)).
			Add(health.Mul(decimal.NewFromFloat(0.7))).Round(0).IntPart()
		out = append(out, dto.SitePerformanceDTO{
			SiteID:              site.ID,
			SiteName:            site.Name,
			TotalItems:          agg.records,
			StockAreas:          areasBySite[site.ID],
			LowStockItems:       agg.low,
			OutOfStockItems:     agg.out,
			CapacityUtilization: utilization,
			EfficiencyScore:     int(efficiency),
		})
	}
	return out
}

// GetPredictiveAlerts genera una alerta por artículo cuyo agotamiento
// proyectado cae dentro de 14 días (HIGH <=3, MEDIUM <=7, si no LOW),
// ordenadas por días restantes ascendente. El centinela NoDepletionForecast
// nunca alerta.
func (uc *UseCase) GetPredictiveAlerts(ctx context.Context, companyID string) ([]dto.PredictiveAlertDTO, error) {
	usage, err := uc.GetUsageAnalytics(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return computePredictiveAlerts(usage, time.Now()), nil
}

// computePredictiveAlerts es la parte pura de GetPredictiveAlerts.
func computePredictiveAlerts(usage []dto.UsageAnalyticsDTO, now time.Time) []dto.PredictiveAlertDTO {
	alerts := make([]dto.PredictiveAlertDTO, 0)
	for _, u := range usage {
		days := u.PredictedDaysRemaining
		if days <= 0 || days > predictiveWindowDays {
			continue
		}
		priority := "LOW"
		switch {
		case days <= 3:
			priority = "HIGH"
		case days <= 7:
			priority = "MEDIUM"
		}
		alerts = append(alerts, dto.PredictiveAlertDTO{
			Type:              "PREDICTED_STOCKOUT",
			Message:           fmt.Sprintf("%s predicted to run out in %d days", u.ItemName, days),
			Priority:          priority,
			DaysUntilCritical: days,
			ItemID:            u.ItemID,
			ItemName:          u.ItemName,
			CurrentStock:      u.CurrentStock,
			PredictedRunOut:   now.AddDate(0, 0, int(days)).Format("2006-01-02"),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilCritical < alerts[j].DaysUntilCritical
	})
	return alerts
}

// GetInventoryTrends reconstruye la serie diaria de cantidad total de los
// últimos `days` días aplicando en reversa los deltas del log de movimientos
// sobre el total actual. Determinista: sin jitter ni simulación.
func (uc *UseCase) GetInventoryTrends(ctx context.Context, companyID string, days int) ([]dto.TrendPointDTO, error) {
	if days <= 0 {
		days = usageWindowDays
	}
	snapshot, err := uc.analyticsRepo.GetInventorySnapshot(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	since := time.Now().AddDate(0, 0, -days)
	changes, err := uc.movementRepo.GetDailyNetChange(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("analytics: cambios diarios: %w", err)
	}
	var currentTotal int64
	for i := range snapshot {
		currentTotal += snapshot[i].Record.CurrentQuantity
	}
	return computeTrends(currentTotal, changes, days, time.Now()), nil
}

// computeTrends deriva el total al cierre de cada día: el total de ayer es el
// de hoy menos el cambio neto de hoy, y así hacia atrás.
func computeTrends(currentTotal int64, changes []repository.DailyNetChange, days int, now time.Time) []dto.TrendPointDTO {
	type dayChange struct {
		net   int64
		count int
	}
	byDay := make(map[string]dayChange, len(changes))
	for _, c := range changes {
		byDay[c.Day.Format("2006-01-02")] = dayChange{net: c.NetChange, count: c.MovementCount}
	}

	points := make([]dto.TrendPointDTO, days+1)
	total := currentTotal
	for i := 0; i <= days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		c := byDay[date]
		points[days-i] = dto.TrendPointDTO{
			Date:          date,
			TotalQuantity: total,
			MovementCount: c.count,
		}
		// El total al cierre del día anterior excluye los movimientos de este día.
		total -= c.net
	}
	return points
}

// GetRecentMovements lista los movimientos reales del log de los últimos
// `days` días, más reciente primero.
func (uc *UseCase) GetRecentMovements(ctx context.Context, companyID string, days, limit int) ([]dto.MovementDTO, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := uc.movementRepo.ListRecent(ctx, companyID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics: movimientos recientes: %w", err)
	}
	out := make([]dto.MovementDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementDTO{
			Date:          r.Movement.CreatedAt.Format("2006-01-02 15:04"),
			Type:          r.Movement.Type,
			Quantity:      r.Movement.Quantity,
			ItemName:      r.ItemName,
			StockAreaName: r.StockAreaName,
			SiteName:      r.SiteName,
			Reason:        r.Movement.Reason,
		})
	}
	return out, nil
}
