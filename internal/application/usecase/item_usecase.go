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

// ItemUseCase casos de uso del catálogo de artículos (medicamentos e insumos).
type ItemUseCase struct {
	itemRepo      repository.ItemRepository
	inventoryRepo repository.InventoryRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, inventoryRepo repository.InventoryRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, inventoryRepo: inventoryRepo}
}

// validateItemKind valida tipo y la regla de medicamentos: todo MEDICATION
// debe tener drug_code no vacío.
func validateItemKind(itemType, drugCode string) error {
	if itemType != entity.ItemTypeMedication && itemType != entity.ItemTypeSupply {
		return domain.ErrInvalidInput
	}
	if itemType == entity.ItemTypeMedication && strings.TrimSpace(drugCode) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un artículo del catálogo.
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateItemKind(in.Type, in.DrugCode); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		DrugCode:    in.DrugCode,
		IsHazardous: in.IsHazardous,
		IsHighAlert: in.IsHighAlert,
		IsLASA:      in.IsLASA,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo de la empresa. Artículos de otra empresa
// resuelven ErrNotFound, igual que los inexistentes.
func (uc *ItemUseCase) GetByID(id, companyID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista artículos de la empresa aplicando los filtros del catálogo.
func (uc *ItemUseCase) List(companyID string, filters repository.ItemFilters) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.ListByCompany(companyID, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Update actualiza los campos presentes. La regla MEDICATION → drug_code se
// valida sobre el resultado de aplicar los cambios.
func (uc *ItemUseCase) Update(id, companyID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.DrugCode != nil {
		item.DrugCode = *in.DrugCode
	}
	if in.IsHazardous != nil {
		item.IsHazardous = *in.IsHazardous
	}
	if in.IsHighAlert != nil {
		item.IsHighAlert = *in.IsHighAlert
	}
	if in.IsLASA != nil {
		item.IsLASA = *in.IsLASA
	}
	if err := validateItemKind(item.Type, item.DrugCode); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo. Falla con ErrConflict si algún registro de
// inventario lo referencia.
func (uc *ItemUseCase) Delete(id, companyID string) error {
	item, err := uc.itemRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	count, err := uc.inventoryRepo.CountByItem(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.itemRepo.Delete(id)
}

// ListSafetyMedications devuelve los medicamentos con al menos una bandera
// de seguridad activa (hazardous, high-alert o LASA).
func (uc *ItemUseCase) ListSafetyMedications(companyID string) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.ListMedicationsWithSafetyFlags(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Stats devuelve los conteos agregados del catálogo.
func (uc *ItemUseCase) Stats(companyID string) (*dto.ItemStatsResponse, error) {
	stats, err := uc.itemRepo.GetStats(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.ItemStatsResponse{
		Total:       stats.Total,
		Medications: stats.Medications,
		Supplies:    stats.Supplies,
		Hazardous:   stats.Hazardous,
		HighAlert:   stats.HighAlert,
		LASA:        stats.LASA,
	}, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Type:        item.Type,
		DrugCode:    item.DrugCode,
		IsHazardous: item.IsHazardous,
		IsHighAlert: item.IsHighAlert,
		IsLASA:      item.IsLASA,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
