package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/application/usecase"
	"github.com/medstock/medstock-api/internal/domain"
)

// StockAreaHandler maneja las peticiones HTTP para las áreas de
// almacenamiento (protegido).
type StockAreaHandler struct {
	uc *usecase.StockAreaUseCase
}

// NewStockAreaHandler construye el handler.
func NewStockAreaHandler(uc *usecase.StockAreaUseCase) *StockAreaHandler {
	return &StockAreaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear área de almacenamiento
// @Tags         stock-areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockAreaRequest  true  "Datos del área"
// @Success      201   {object}  dto.StockAreaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-areas [post]
func (h *StockAreaHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateStockAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sede no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener área por ID
// @Tags         stock-areas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {object}  dto.StockAreaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-areas/{id} [get]
func (h *StockAreaHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	out, err := h.uc.GetByID(c.Params("id"), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar áreas de almacenamiento
// @Tags         stock-areas
// @Security     Bearer
// @Produce      json
// @Param        site_id  query  string  false  "Filtrar por sede"
// @Success      200  {object}  dto.StockAreaListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-areas [get]
func (h *StockAreaHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var (
		out *dto.StockAreaListResponse
		err error
	)
	if siteID := c.Query("site_id"); siteID != "" {
		out, err = h.uc.ListBySite(siteID, companyID)
	} else {
		out, err = h.uc.ListByCompany(companyID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sede no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar área
// @Tags         stock-areas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.UpdateStockAreaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockAreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-areas/{id} [put]
func (h *StockAreaHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.UpdateStockAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar área
// @Tags         stock-areas
// @Security     Bearer
// @Param        id  path  string  true  "ID del área"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-areas/{id} [delete]
func (h *StockAreaHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if err := h.uc.Delete(c.Params("id"), companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el área tiene registros de inventario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
