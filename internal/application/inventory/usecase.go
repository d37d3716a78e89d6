package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain"
	"github.com/medstock/medstock-api/internal/domain/entity"
	dominv "github.com/medstock/medstock-api/internal/domain/inventory"
	"github.com/medstock/medstock-api/internal/domain/repository"
	"github.com/medstock/medstock-api/pkg/metrics"
)

// UseCase es el motor del libro de inventario: creación del registro por par
// (artículo, área), ajustes relativos atómicos, sobrescritura de campos,
// listados filtrados y borrado. Toda mutación de cantidad pasa por una
// transacción con bloqueo de fila (SELECT FOR UPDATE) y deja una entrada en
// el log de movimientos.
type UseCase struct {
	txRunner      TxRunner
	inventoryRepo repository.InventoryRepository
	itemRepo      repository.ItemRepository
	areaRepo      repository.StockAreaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	inventoryRepo repository.InventoryRepository,
	itemRepo repository.ItemRepository,
	areaRepo repository.StockAreaRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		inventoryRepo: inventoryRepo,
		itemRepo:      itemRepo,
		areaRepo:      areaRepo,
	}
}

// Create crea el registro de inventario para un par (artículo, área).
// Artículo y área deben resolver bajo la empresa (si no, ErrNotFound);
// la cantidad inicial no puede ser negativa; un registro ya existente para
// el par devuelve ErrDuplicate (constraint único como respaldo ante carreras).
func (uc *UseCase) Create(companyID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ItemID == "" || in.StockAreaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxCapacity != nil && *in.MaxCapacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderThreshold != nil && *in.ReorderThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.ItemID, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	area, err := uc.areaRepo.GetByID(in.StockAreaID, companyID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.inventoryRepo.GetByItemAndStockArea(in.ItemID, in.StockAreaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	record := &entity.InventoryRecord{
		ID:               uuid.New().String(),
		ItemID:           in.ItemID,
		StockAreaID:      in.StockAreaID,
		CurrentQuantity:  in.CurrentQuantity,
		MaxCapacity:      in.MaxCapacity,
		ReorderThreshold: in.ReorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.inventoryRepo.Create(record); err != nil {
		return nil, err
	}
	metrics.RecordsCreatedTotal.Inc()
	return uc.detailResponse(record.ID, companyID)
}

// Adjust aplica un delta con signo al registro, de forma atómica. El delta no
// puede ser cero; si el resultado fuera negativo, ErrInsufficientStock y el
// registro queda intacto. Dos ajustes concurrentes sobre el mismo registro se
// serializan por el bloqueo de fila: el total final es la suma de los deltas.
func (uc *UseCase) Adjust(ctx context.Context, recordID, companyID, userID string, delta int64, reason string) (*dto.InventoryResponse, error) {
	if recordID == "" || delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error {
		record, err := invRepo.GetForUpdate(recordID, companyID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		newQuantity := record.CurrentQuantity + delta
		if newQuantity < 0 {
			metrics.InsufficientStockTotal.Inc()
			return domain.ErrInsufficientStock
		}
		record.CurrentQuantity = newQuantity
		record.UpdatedAt = time.Now()
		if err := invRepo.Update(record); err != nil {
			return err
		}
		movType := entity.MovementTypeRestock
		if delta < 0 {
			movType = entity.MovementTypeUsage
		}
		return movRepo.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			RecordID:    record.ID,
			ItemID:      record.ItemID,
			StockAreaID: record.StockAreaID,
			Type:        movType,
			Quantity:    delta,
			Reason:      reason,
			CreatedAt:   record.UpdatedAt,
			CreatedBy:   userID,
		})
	})
	if err != nil {
		return nil, err
	}

	if delta > 0 {
		metrics.AdjustmentsTotal.WithLabelValues("restock").Inc()
	} else {
		metrics.AdjustmentsTotal.WithLabelValues("usage").Inc()
	}
	return uc.detailResponse(recordID, companyID)
}

// SetFields sobrescribe los campos presentes del registro. Rechaza cantidades
// negativas y capacidades no positivas. Si cambia la cantidad, se registra un
// movimiento ADJUSTMENT con el delta resultante, en la misma transacción.
func (uc *UseCase) SetFields(ctx context.Context, recordID, companyID, userID string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if recordID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentQuantity == nil && in.MaxCapacity == nil && in.ReorderThreshold == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentQuantity != nil && *in.CurrentQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxCapacity != nil && *in.MaxCapacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderThreshold != nil && *in.ReorderThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error {
		record, err := invRepo.GetForUpdate(recordID, companyID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		var delta int64
		if in.CurrentQuantity != nil {
			delta = *in.CurrentQuantity - record.CurrentQuantity
			record.CurrentQuantity = *in.CurrentQuantity
		}
		if in.MaxCapacity != nil {
			record.MaxCapacity = in.MaxCapacity
		}
		if in.ReorderThreshold != nil {
			record.ReorderThreshold = in.ReorderThreshold
		}
		record.UpdatedAt = time.Now()
		if err := invRepo.Update(record); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			RecordID:    record.ID,
			ItemID:      record.ItemID,
			StockAreaID: record.StockAreaID,
			Type:        entity.MovementTypeAdjustment,
			Quantity:    delta,
			Reason:      "absolute overwrite",
			CreatedAt:   record.UpdatedAt,
			CreatedBy:   userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.detailResponse(recordID, companyID)
}

// GetByID obtiene la vista unida (registro + artículo + ubicación).
func (uc *UseCase) GetByID(recordID, companyID string) (*dto.InventoryResponse, error) {
	return uc.detailResponse(recordID, companyID)
}

// List lista el inventario de la empresa. SiteID, StockAreaID, ItemType y el
// texto libre se resuelven en SQL; LowStockOnly se aplica aquí con el
// clasificador de umbrales sobre el snapshot.
func (uc *UseCase) List(companyID string, filters repository.InventoryFilters) (*dto.InventoryListResponse, error) {
	details, err := uc.inventoryRepo.ListByCompany(companyID, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		if filters.LowStockOnly && !dominv.IsBelowThreshold(d.Record.CurrentQuantity, d.Record.ReorderThreshold) {
			continue
		}
		out = append(out, *toInventoryResponse(d))
	}
	return &dto.InventoryListResponse{Inventory: out, Total: len(out)}, nil
}

// ListLowStock devuelve los registros LOW_STOCK u OUT_OF_STOCK de la empresa.
func (uc *UseCase) ListLowStock(companyID string) (*dto.InventoryListResponse, error) {
	return uc.List(companyID, repository.InventoryFilters{LowStockOnly: true})
}

// Delete elimina un registro tras verificar pertenencia. Sin dependientes:
// el borrado es incondicional.
func (uc *UseCase) Delete(recordID, companyID string) error {
	record, err := uc.inventoryRepo.GetByID(recordID, companyID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.inventoryRepo.Delete(recordID)
}

func (uc *UseCase) detailResponse(recordID, companyID string) (*dto.InventoryResponse, error) {
	detail, err := uc.inventoryRepo.GetDetail(recordID, companyID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(detail), nil
}

// toInventoryResponse arma el DTO de salida clasificando el registro.
func toInventoryResponse(d *repository.InventoryDetail) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:               d.Record.ID,
		ItemID:           d.Record.ItemID,
		ItemName:         d.ItemName,
		ItemType:         d.ItemType,
		DrugCode:         d.DrugCode,
		IsHazardous:      d.IsHazardous,
		IsHighAlert:      d.IsHighAlert,
		IsLASA:           d.IsLASA,
		StockAreaID:      d.Record.StockAreaID,
		StockAreaName:    d.StockAreaName,
		SiteID:           d.SiteID,
		SiteName:         d.SiteName,
		CurrentQuantity:  d.Record.CurrentQuantity,
		MaxCapacity:      d.Record.MaxCapacity,
		ReorderThreshold: d.Record.ReorderThreshold,
		StockStatus:      string(dominv.Classify(d.Record.CurrentQuantity, d.Record.ReorderThreshold)),
		UpdatedAt:        d.Record.UpdatedAt,
	}
}
