package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

// StockAreaUseCase casos de uso CRUD para áreas de almacenamiento.
type StockAreaUseCase struct {
	areaRepo      repository.StockAreaRepository
	siteRepo      repository.SiteRepository
	inventoryRepo repository.InventoryRepository
}

// NewStockAreaUseCase construye el caso de uso.
func NewStockAreaUseCase(
	areaRepo repository.StockAreaRepository,
	siteRepo repository.SiteRepository,
	inventoryRepo repository.InventoryRepository,
) *StockAreaUseCase {
	return &StockAreaUseCase{areaRepo: areaRepo, siteRepo: siteRepo, inventoryRepo: inventoryRepo}
}

// Create crea un área dentro de una sede. Si la sede no existe o pertenece a
// otra empresa, ErrNotFound.
func (uc *StockAreaUseCase) Create(companyID string, in dto.CreateStockAreaRequest) (*dto.StockAreaResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.SiteID == "" {
		return nil, domain.ErrInvalidInput
	}
	site, err := uc.siteRepo.GetByID(in.SiteID, companyID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	area := &entity.StockArea{
		ID:        uuid.New().String(),
		SiteID:    in.SiteID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.areaRepo.Create(area); err != nil {
		return nil, err
	}
	return toStockAreaResponse(area), nil
}

// GetByID obtiene un área de la empresa (resuelta vía su sede).
func (uc *StockAreaUseCase) GetByID(id, companyID string) (*dto.StockAreaResponse, error) {
	area, err := uc.areaRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	return toStockAreaResponse(area), nil
}

// ListBySite lista las áreas de una sede, validando primero que la sede
// pertenezca a la empresa.
func (uc *StockAreaUseCase) ListBySite(siteID, companyID string) (*dto.StockAreaListResponse, error) {
	site, err := uc.siteRepo.GetByID(siteID, companyID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	areas, err := uc.areaRepo.ListBySite(siteID)
	if err != nil {
		return nil, err
	}
	return toStockAreaList(areas), nil
}

// ListByCompany lista todas las áreas de la empresa.
func (uc *StockAreaUseCase) ListByCompany(companyID string) (*dto.StockAreaListResponse, error) {
	areas, err := uc.areaRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return toStockAreaList(areas), nil
}

// Update actualiza los campos presentes de un área.
func (uc *StockAreaUseCase) Update(id, companyID string, in dto.UpdateStockAreaRequest) (*dto.StockAreaResponse, error) {
	area, err := uc.areaRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		area.Name = *in.Name
	}
	area.UpdatedAt = time.Now()
	if err := uc.areaRepo.Update(area); err != nil {
		return nil, err
	}
	return toStockAreaResponse(area), nil
}

// Delete elimina un área. Falla con ErrConflict si aún tiene inventario.
func (uc *StockAreaUseCase) Delete(id, companyID string) error {
	area, err := uc.areaRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if area == nil {
		return domain.ErrNotFound
	}
	count, err := uc.inventoryRepo.CountByStockArea(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.areaRepo.Delete(id)
}

func toStockAreaResponse(area *entity.StockArea) *dto.StockAreaResponse {
	return &dto.StockAreaResponse{
		ID:        area.ID,
		SiteID:    area.SiteID,
		Name:      area.Name,
		CreatedAt: area.CreatedAt,
		UpdatedAt: area.UpdatedAt,
	}
}

func toStockAreaList(areas []*entity.StockArea) *dto.StockAreaListResponse {
	out := make([]dto.StockAreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, *toStockAreaResponse(a))
	}
	return &dto.StockAreaListResponse{StockAreas: out, Total: len(out)}
}
