package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/medstock/medstock-api/internal/application/analytics"
	"github.com/medstock/medstock-api/internal/application/dto"
)

// AnalyticsHandler expone el motor de analítica (protegido, read-only).
type AnalyticsHandler struct {
	uc *appanalytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas agregadas del inventario
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsDTO
// @Router       /api/analytics/stats [get]
func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetInventoryStats(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Usage godoc
// @Summary      Analítica de consumo por artículo (ventana de 30 días)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsageAnalyticsDTO
// @Router       /api/analytics/usage [get]
func (h *AnalyticsHandler) Usage(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetUsageAnalytics(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Compliance godoc
// @Summary      Métricas de cumplimiento de medicamentos con banderas de seguridad
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComplianceMetricsDTO
// @Router       /api/analytics/compliance [get]
func (h *AnalyticsHandler) Compliance(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetComplianceMetrics(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Sites godoc
// @Summary      Desempeño por sede
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SitePerformanceDTO
// @Router       /api/analytics/sites [get]
func (h *AnalyticsHandler) Sites(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetSitePerformance(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PredictiveAlerts godoc
// @Summary      Alertas predictivas de agotamiento (horizonte de 14 días)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PredictiveAlertDTO
// @Router       /api/analytics/alerts [get]
func (h *AnalyticsHandler) PredictiveAlerts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.GetPredictiveAlerts(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Trends godoc
// @Summary      Tendencia de cantidad total (serie diaria)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás"  default(30)
// @Success      200  {array}  dto.TrendPointDTO
// @Router       /api/analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}
	out, err := h.uc.GetInventoryTrends(c.UserContext(), companyID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Movimientos recientes del libro
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Días hacia atrás"  default(7)
// @Param        limit  query  int  false  "Máximo de filas"   default(50)
// @Success      200  {array}  dto.MovementDTO
// @Router       /api/analytics/movements [get]
func (h *AnalyticsHandler) Movements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	days := c.QueryInt("days", 7)
	limit := c.QueryInt("limit", 50)
	if days <= 0 {
		days = 7
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	out, err := h.uc.GetRecentMovements(c.UserContext(), companyID, days, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
