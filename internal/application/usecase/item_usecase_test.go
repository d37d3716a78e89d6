package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

const (
	companyA = "company-a"
	companyB = "company-b"
)

func strPtr(s string) *string { return &s }

// fakeItemRepo catálogo en memoria con aislamiento por empresa.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id, companyID string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok || it.CompanyID != companyID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) ListByCompany(companyID string, _ repository.ItemFilters) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.CompanyID == companyID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) ListMedicationsWithSafetyFlags(companyID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.CompanyID != companyID || it.Type != entity.ItemTypeMedication {
			continue
		}
		if it.IsHazardous || it.IsHighAlert || it.IsLASA {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetStats(companyID string) (repository.ItemStats, error) {
	var stats repository.ItemStats
	for _, it := range r.items {
		if it.CompanyID != companyID {
			continue
		}
		stats.Total++
		switch it.Type {
		case entity.ItemTypeMedication:
			stats.Medications++
		case entity.ItemTypeSupply:
			stats.Supplies++
		}
		if it.IsHazardous {
			stats.Hazardous++
		}
		if it.IsHighAlert {
			stats.HighAlert++
		}
		if it.IsLASA {
			stats.LASA++
		}
	}
	return stats, nil
}

// fakeCountingInventoryRepo solo responde los conteos de referencias; el
// resto de la interfaz no se usa desde estos casos de uso.
type fakeCountingInventoryRepo struct {
	countsByItem map[string]int
	countsByArea map[string]int
}

func (r *fakeCountingInventoryRepo) Create(*entity.InventoryRecord) error { return nil }
func (r *fakeCountingInventoryRepo) GetByID(string, string) (*entity.InventoryRecord, error) {
	return nil, nil
}
func (r *fakeCountingInventoryRepo) GetDetail(string, string) (*repository.InventoryDetail, error) {
	return nil, nil
}
func (r *fakeCountingInventoryRepo) GetByItemAndStockArea(string, string) (*entity.InventoryRecord, error) {
	return nil, nil
}
func (r *fakeCountingInventoryRepo) ListByCompany(string, repository.InventoryFilters) ([]repository.InventoryDetail, error) {
	return nil, nil
}
func (r *fakeCountingInventoryRepo) Update(*entity.InventoryRecord) error { return nil }
func (r *fakeCountingInventoryRepo) Delete(string) error                  { return nil }
func (r *fakeCountingInventoryRepo) GetForUpdate(string, string) (*entity.InventoryRecord, error) {
	return nil, nil
}
func (r *fakeCountingInventoryRepo) CountByItem(itemID string) (int, error) {
	return r.countsByItem[itemID], nil
}
func (r *fakeCountingInventoryRepo) CountByStockArea(areaID string) (int, error) {
	return r.countsByArea[areaID], nil
}

func newItemFixture() (*ItemUseCase, *fakeItemRepo, *fakeCountingInventoryRepo) {
	items := newFakeItemRepo()
	inv := &fakeCountingInventoryRepo{countsByItem: make(map[string]int)}
	return NewItemUseCase(items, inv), items, inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_MedicamentoRequiereCodigo(t *testing.T) {
	uc, _, _ := newItemFixture()

	_, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Insulin Regular", Type: entity.ItemTypeMedication,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(companyA, dto.CreateItemRequest{
		Name: "Insulin Regular", Type: entity.ItemTypeMedication, DrugCode: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "drug_code de solo espacios no cuenta")

	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Insulin Regular", Type: entity.ItemTypeMedication, DrugCode: "INS001",
		IsHighAlert: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsHighAlert)
}

func TestItemCreate_InsumoNoRequiereCodigo(t *testing.T) {
	uc, _, _ := newItemFixture()

	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Nitrile Gloves", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemTypeSupply, created.Type)
}

func TestItemCreate_ValidaNombreYTipo(t *testing.T) {
	uc, _, _ := newItemFixture()

	_, err := uc.Create(companyA, dto.CreateItemRequest{Name: "  ", Type: entity.ItemTypeSupply})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(companyA, dto.CreateItemRequest{Name: "Algo", Type: "GADGET"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestItemGetByID_OtraEmpresaEsNotFound(t *testing.T) {
	uc, _, _ := newItemFixture()
	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Saline 0.9%", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)

	_, err = uc.GetByID(created.ID, companyB)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(created.ID, companyA)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestItemUpdate_ValidaElResultadoCombinado(t *testing.T) {
	uc, _, _ := newItemFixture()
	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Gauze Pads", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)

	// Cambiar a MEDICATION sin aportar drug_code viola la regla del catálogo.
	_, err = uc.Update(created.ID, companyA, dto.UpdateItemRequest{
		Type: strPtr(entity.ItemTypeMedication),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := uc.Update(created.ID, companyA, dto.UpdateItemRequest{
		Type:     strPtr(entity.ItemTypeMedication),
		DrugCode: strPtr("GPD001"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemTypeMedication, updated.Type)
	assert.Equal(t, "GPD001", updated.DrugCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestItemDelete_BloqueadoPorInventario(t *testing.T) {
	uc, items, inv := newItemFixture()
	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Heparin", Type: entity.ItemTypeMedication, DrugCode: "HEP001",
	})
	require.NoError(t, err)

	inv.countsByItem[created.ID] = 2
	err = uc.Delete(created.ID, companyA)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, ok := items.items[created.ID]
	assert.True(t, ok, "el artículo referenciado no debe borrarse")

	inv.countsByItem[created.ID] = 0
	require.NoError(t, uc.Delete(created.ID, companyA))
	_, ok = items.items[created.ID]
	assert.False(t, ok)
}

func TestItemDelete_OtraEmpresaEsNotFound(t *testing.T) {
	uc, _, _ := newItemFixture()
	created, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Syringes 5ml", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)

	err = uc.Delete(created.ID, companyB)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Safety / Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestItemListSafetyMedications_FiltraBanderas(t *testing.T) {
	uc, _, _ := newItemFixture()
	mk := func(name, code string, haz, high, lasa bool) {
		_, err := uc.Create(companyA, dto.CreateItemRequest{
			Name: name, Type: entity.ItemTypeMedication, DrugCode: code,
			IsHazardous: haz, IsHighAlert: high, IsLASA: lasa,
		})
		require.NoError(t, err)
	}
	mk("Cisplatin", "CIS001", true, false, false)
	mk("Morphine", "MOR001", false, true, false)
	mk("Amoxicillin", "AMX001", false, false, false) // sin banderas
	_, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Nitrile Gloves", Type: entity.ItemTypeSupply, IsHazardous: true,
	})
	require.NoError(t, err)

	list, err := uc.ListSafetyMedications(companyA)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total, "solo medicamentos con alguna bandera")
}

func TestItemStats_CuentaPorTipoYBandera(t *testing.T) {
	uc, _, _ := newItemFixture()
	_, err := uc.Create(companyA, dto.CreateItemRequest{
		Name: "Warfarin 5mg", Type: entity.ItemTypeMedication, DrugCode: "WAR001",
		IsHighAlert: true, IsLASA: true,
	})
	require.NoError(t, err)
	_, err = uc.Create(companyA, dto.CreateItemRequest{
		Name: "Nitrile Gloves", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)
	_, err = uc.Create(companyB, dto.CreateItemRequest{
		Name: "Ajeno", Type: entity.ItemTypeSupply,
	})
	require.NoError(t, err)

	stats, err := uc.Stats(companyA)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Medications)
	assert.Equal(t, 1, stats.Supplies)
	assert.Equal(t, 0, stats.Hazardous)
	assert.Equal(t, 1, stats.HighAlert)
	assert.Equal(t, 1, stats.LASA)
}
