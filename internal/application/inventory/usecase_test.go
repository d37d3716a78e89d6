package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medstock/medstock-api/internal/application/dto"
	"github.com/medstock/medstock-api/internal/domain"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base: artículos, áreas (con su empresa vía sede) y
// registros. Su mutex protege los mapas frente a lecturas fuera de la
// "transacción" (el GetDetail posterior al commit); el mutex del txRunner
// serializa las transacciones igual que el bloqueo de fila en PostgreSQL.
type memStore struct {
	mu          sync.Mutex
	items       map[string]*entity.Item
	areas       map[string]*entity.StockArea
	areaCompany map[string]string // areaID -> companyID
	records     map[string]*entity.InventoryRecord
	movements   []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		items:       map[string]*entity.Item{},
		areas:       map[string]*entity.StockArea{},
		areaCompany: map[string]string{},
		records:     map[string]*entity.InventoryRecord{},
	}
}

func (s *memStore) recordCompany(r *entity.InventoryRecord) string {
	return s.areaCompany[r.StockAreaID]
}

type fakeItemRepo struct{ s *memStore }

func (f *fakeItemRepo) Create(item *entity.Item) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.items[item.ID] = item
	return nil
}
func (f *fakeItemRepo) GetByID(id, companyID string) (*entity.Item, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	it, ok := f.s.items[id]
	if !ok || it.CompanyID != companyID {
		return nil, nil
	}
	return it, nil
}
func (f *fakeItemRepo) ListByCompany(string, repository.ItemFilters) ([]*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(*entity.Item) error { return nil }
func (f *fakeItemRepo) Delete(string) error       { return nil }
func (f *fakeItemRepo) ListMedicationsWithSafetyFlags(string) ([]*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) GetStats(string) (repository.ItemStats, error) {
	return repository.ItemStats{}, nil
}

type fakeAreaRepo struct{ s *memStore }

func (f *fakeAreaRepo) Create(a *entity.StockArea) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.areas[a.ID] = a
	return nil
}
func (f *fakeAreaRepo) GetByID(id, companyID string) (*entity.StockArea, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	a, ok := f.s.areas[id]
	if !ok || f.s.areaCompany[id] != companyID {
		return nil, nil
	}
	return a, nil
}
func (f *fakeAreaRepo) ListBySite(string) ([]*entity.StockArea, error)    { return nil, nil }
func (f *fakeAreaRepo) ListByCompany(string) ([]*entity.StockArea, error) { return nil, nil }
func (f *fakeAreaRepo) Update(*entity.StockArea) error                    { return nil }
func (f *fakeAreaRepo) Delete(string) error                               { return nil }
func (f *fakeAreaRepo) CountBySite(string) (int, error)                   { return 0, nil }

type fakeInventoryRepo struct{ s *memStore }

func (f *fakeInventoryRepo) Create(r *entity.InventoryRecord) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, ex := range f.s.records {
		if ex.ItemID == r.ItemID && ex.StockAreaID == r.StockAreaID {
			return domain.ErrDuplicate
		}
	}
	cp := *r
	f.s.records[r.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) get(id, companyID string) *entity.InventoryRecord {
	r, ok := f.s.records[id]
	if !ok || f.s.recordCompany(r) != companyID {
		return nil
	}
	return r
}

// getCopy requiere el mutex del store tomado.
func (f *fakeInventoryRepo) getCopy(id, companyID string) (*entity.InventoryRecord, error) {
	r := f.get(id, companyID)
	if r == nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeInventoryRepo) GetByID(id, companyID string) (*entity.InventoryRecord, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.getCopy(id, companyID)
}

func (f *fakeInventoryRepo) GetForUpdate(id, companyID string) (*entity.InventoryRecord, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.getCopy(id, companyID)
}

func (f *fakeInventoryRepo) GetDetail(id, companyID string) (*repository.InventoryDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r := f.get(id, companyID)
	if r == nil {
		return nil, nil
	}
	return f.detail(r), nil
}

func (f *fakeInventoryRepo) detail(r *entity.InventoryRecord) *repository.InventoryDetail {
	item := f.s.items[r.ItemID]
	area := f.s.areas[r.StockAreaID]
	d := &repository.InventoryDetail{Record: *r}
	if item != nil {
		d.ItemName = item.Name
		d.ItemType = item.Type
		d.DrugCode = item.DrugCode
		d.IsHazardous = item.IsHazardous
		d.IsHighAlert = item.IsHighAlert
		d.IsLASA = item.IsLASA
	}
	if area != nil {
		d.StockAreaName = area.Name
		d.SiteID = area.SiteID
	}
	return d
}

func (f *fakeInventoryRepo) GetByItemAndStockArea(itemID, stockAreaID string) (*entity.InventoryRecord, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, r := range f.s.records {
		if r.ItemID == itemID && r.StockAreaID == stockAreaID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) ListByCompany(companyID string, _ repository.InventoryFilters) ([]repository.InventoryDetail, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []repository.InventoryDetail
	for _, r := range f.s.records {
		if f.s.recordCompany(r) == companyID {
			out = append(out, *f.detail(r))
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Update(r *entity.InventoryRecord) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *r
	f.s.records[r.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.records, id)
	return nil
}

func (f *fakeInventoryRepo) CountByItem(itemID string) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n := 0
	for _, r := range f.s.records {
		if r.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (f *fakeInventoryRepo) CountByStockArea(areaID string) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n := 0
	for _, r := range f.s.records {
		if r.StockAreaID == areaID {
			n++
		}
	}
	return n, nil
}

type fakeMovementRepo struct{ s *memStore }

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.movements = append(f.s.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetItemUsage(context.Context, string, time.Time) ([]repository.ItemUsage, error) {
	return nil, nil
}
func (f *fakeMovementRepo) GetDailyNetChange(context.Context, string, time.Time) ([]repository.DailyNetChange, error) {
	return nil, nil
}
func (f *fakeMovementRepo) ListRecent(context.Context, string, time.Time, int) ([]repository.MovementDetail, error) {
	return nil, nil
}

// fakeTxRunner serializa las transacciones con un mutex, emulando el bloqueo
// de fila: ningún fn ve estado intermedio de otro.
type fakeTxRunner struct {
	mu  sync.Mutex
	inv *fakeInventoryRepo
	mov *fakeMovementRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.InventoryRepository, repository.StockMovementRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.inv, f.mov)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
	testUser = "user-1"
)

type fixture struct {
	s   *memStore
	uc  *UseCase
	mov *fakeMovementRepo
}

func newFixture() *fixture {
	s := newMemStore()
	inv := &fakeInventoryRepo{s: s}
	mov := &fakeMovementRepo{s: s}
	tx := &fakeTxRunner{inv: inv, mov: mov}
	uc := NewUseCase(tx, inv, &fakeItemRepo{s: s}, &fakeAreaRepo{s: s})
	return &fixture{s: s, uc: uc, mov: mov}
}

// seedItem registra un artículo del catálogo de la empresa.
func (fx *fixture) seedItem(companyID, name string) *entity.Item {
	item := &entity.Item{
		ID: uuid.NewString(), CompanyID: companyID,
		Name: name, Type: entity.ItemTypeMedication, DrugCode: "DRG001",
	}
	fx.s.items[item.ID] = item
	return item
}

// seedArea registra un área perteneciente a la empresa.
func (fx *fixture) seedArea(companyID, name string) *entity.StockArea {
	area := &entity.StockArea{ID: uuid.NewString(), SiteID: "site-" + companyID, Name: name}
	fx.s.areas[area.ID] = area
	fx.s.areaCompany[area.ID] = companyID
	return area
}

// seedRecord crea un registro directamente en el store.
func (fx *fixture) seedRecord(item *entity.Item, area *entity.StockArea, qty int64, threshold *int64) *entity.InventoryRecord {
	rec := &entity.InventoryRecord{
		ID: uuid.NewString(), ItemID: item.ID, StockAreaID: area.ID,
		CurrentQuantity: qty, ReorderThreshold: threshold,
	}
	fx.s.records[rec.ID] = rec
	return rec
}

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistraParUnico(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Warfarin 5mg")
	area := fx.seedArea(companyA, "Main Pharmacy")

	out, err := fx.uc.Create(companyA, dto.CreateInventoryRequest{
		ItemID: item.ID, StockAreaID: area.ID,
		CurrentQuantity: 40, ReorderThreshold: ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), out.CurrentQuantity)
	assert.Equal(t, "Warfarin 5mg", out.ItemName)
	assert.Equal(t, "OK", out.StockStatus)

	// Segundo registro para el mismo par → duplicado
	_, err = fx.uc.Create(companyA, dto.CreateInventoryRequest{
		ItemID: item.ID, StockAreaID: area.ID, CurrentQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_ValidaEntradas(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Insulin")
	area := fx.seedArea(companyA, "ICU Med Room")

	cases := []struct {
		name string
		in   dto.CreateInventoryRequest
	}{
		{"sin item", dto.CreateInventoryRequest{StockAreaID: area.ID}},
		{"sin área", dto.CreateInventoryRequest{ItemID: item.ID}},
		{"cantidad negativa", dto.CreateInventoryRequest{ItemID: item.ID, StockAreaID: area.ID, CurrentQuantity: -1}},
		{"capacidad cero", dto.CreateInventoryRequest{ItemID: item.ID, StockAreaID: area.ID, MaxCapacity: ptr(0)}},
		{"umbral negativo", dto.CreateInventoryRequest{ItemID: item.ID, StockAreaID: area.ID, ReorderThreshold: ptr(-5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.Create(companyA, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_ArticuloDeOtraEmpresaEsNotFound(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyB, "Morphine")
	area := fx.seedArea(companyA, "Main Pharmacy")

	_, err := fx.uc.Create(companyA, dto.CreateInventoryRequest{
		ItemID: item.ID, StockAreaID: area.ID, CurrentQuantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_AplicaDeltaYRegistraMovimiento(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Heparin")
	area := fx.seedArea(companyA, "ICU Med Room")
	rec := fx.seedRecord(item, area, 20, ptr(10))

	out, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, -8, "dispensación turno noche")
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.CurrentQuantity)

	require.Len(t, fx.s.movements, 1)
	mov := fx.s.movements[0]
	assert.Equal(t, entity.MovementTypeUsage, mov.Type)
	assert.Equal(t, int64(-8), mov.Quantity)
	assert.Equal(t, testUser, mov.CreatedBy)
	assert.Equal(t, rec.ID, mov.RecordID)

	// Reposición → RESTOCK
	out, err = fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, 30, "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.CurrentQuantity)
	assert.Equal(t, entity.MovementTypeRestock, fx.s.movements[1].Type)
}

func TestAdjust_DeltaCeroEsInvalido(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Insulin")
	area := fx.seedArea(companyA, "Main Pharmacy")
	rec := fx.seedRecord(item, area, 10, nil)

	_, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_InsuficienteDejaRegistroIntacto(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Morphine")
	area := fx.seedArea(companyA, "ICU Med Room")
	rec := fx.seedRecord(item, area, 5, nil)

	_, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, -6, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Cantidad intacta, sin movimiento
	assert.Equal(t, int64(5), fx.s.records[rec.ID].CurrentQuantity)
	assert.Empty(t, fx.s.movements)

	// Vaciar exactamente sí es válido
	out, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, -5, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.CurrentQuantity)
	assert.Equal(t, "OUT_OF_STOCK", out.StockStatus)
}

func TestAdjust_RegistroDeOtraEmpresaEsNotFound(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyB, "Heparin")
	area := fx.seedArea(companyB, "Main Pharmacy")
	rec := fx.seedRecord(item, area, 10, nil)

	_, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, -1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), fx.s.records[rec.ID].CurrentQuantity)
}

// El total final de ajustes concurrentes debe ser la suma de los deltas:
// las transacciones se serializan y ningún ajuste se pierde.
func TestAdjust_ConcurrenteNoPierdeAjustes(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Acetaminophen")
	area := fx.seedArea(companyA, "General Storage")
	rec := fx.seedRecord(item, area, 100, nil)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		delta := int64(1)
		if i%2 == 0 {
			delta = -1
		}
		go func(d int64) {
			defer wg.Done()
			_, err := fx.uc.Adjust(context.Background(), rec.ID, companyA, testUser, d, "")
			assert.NoError(t, err)
		}(delta)
	}
	wg.Wait()

	// 25 × (+1) y 25 × (−1) → neto 0
	assert.Equal(t, int64(100), fx.s.records[rec.ID].CurrentQuantity)
	assert.Len(t, fx.s.movements, workers)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetFields
// ──────────────────────────────────────────────────────────────────────────────

func TestSetFields_SobrescribeYRegistraAjuste(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Warfarin 5mg")
	area := fx.seedArea(companyA, "Main Pharmacy")
	rec := fx.seedRecord(item, area, 40, ptr(10))

	out, err := fx.uc.SetFields(context.Background(), rec.ID, companyA, testUser, dto.UpdateInventoryRequest{
		CurrentQuantity: ptr(25), ReorderThreshold: ptr(30),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), out.CurrentQuantity)
	// 25 <= 30 → LOW_STOCK con el nuevo umbral
	assert.Equal(t, "LOW_STOCK", out.StockStatus)

	require.Len(t, fx.s.movements, 1)
	mov := fx.s.movements[0]
	assert.Equal(t, entity.MovementTypeAdjustment, mov.Type)
	assert.Equal(t, int64(-15), mov.Quantity)
}

func TestSetFields_SinCambioDeCantidadNoRegistraMovimiento(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyA, "Insulin")
	area := fx.seedArea(companyA, "ICU Med Room")
	rec := fx.seedRecord(item, area, 10, nil)

	_, err := fx.uc.SetFields(context.Background(), rec.ID, companyA, testUser, dto.UpdateInventoryRequest{
		MaxCapacity: ptr(100),
	})
	require.NoError(t, err)
	assert.Empty(t, fx.s.movements)
	assert.Equal(t, int64(100), *fx.s.records[rec.ID].MaxCapacity)
}

func TestSetFields_SinCamposEsInvalido(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.SetFields(context.Background(), "x", companyA, testUser, dto.UpdateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestList_LowStockOnlyFiltraConElClasificador(t *testing.T) {
	fx := newFixture()
	area := fx.seedArea(companyA, "Main Pharmacy")
	ok := fx.seedItem(companyA, "Metformin")
	low := fx.seedItem(companyA, "Lisinopril")
	out := fx.seedItem(companyA, "Omeprazole")
	fx.seedRecord(ok, area, 50, ptr(10))
	fx.seedRecord(low, area, 10, ptr(10)) // igual al umbral → bajo
	fx.seedRecord(out, area, 0, nil)      // cero → agotado

	resp, err := fx.uc.ListLowStock(companyA)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	for _, r := range resp.Inventory {
		assert.NotEqual(t, "OK", r.StockStatus)
	}
}

func TestDelete_VerificaPertenencia(t *testing.T) {
	fx := newFixture()
	item := fx.seedItem(companyB, "Heparin")
	area := fx.seedArea(companyB, "Main Pharmacy")
	rec := fx.seedRecord(item, area, 10, nil)

	assert.ErrorIs(t, fx.uc.Delete(rec.ID, companyA), domain.ErrNotFound)
	require.NoError(t, fx.uc.Delete(rec.ID, companyB))
	assert.NotContains(t, fx.s.records, rec.ID)
}
