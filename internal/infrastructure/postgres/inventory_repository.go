package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/medstock/medstock-api/internal/domain"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// El par (item_id, stock_area_id) tiene constraint único; la pertenencia a
// empresa se resuelve con JOIN stock_areas → sites.
type InventoryRepo struct {
	q Querier
}

func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const recordColumns = `r.id, r.item_id, r.stock_area_id, r.current_quantity,
	r.max_capacity, r.reorder_threshold, r.created_at, r.updated_at`

// detailSelect une registro + artículo + área + sede en una sola consulta.
const detailSelect = `
	SELECT ` + recordColumns + `,
	       i.name, i.description, i.type, i.drug_code,
	       i.is_hazardous, i.is_high_alert, i.is_lasa,
	       sa.name, s.id, s.name
	FROM inventory_records r
	JOIN items i ON i.id = r.item_id
	JOIN stock_areas sa ON sa.id = r.stock_area_id
	JOIN sites s ON s.id = sa.site_id`

// Create persiste un registro de inventario. Un par (item, área) duplicado
// devuelve domain.ErrDuplicate (constraint único como respaldo de la
// verificación previa del caso de uso).
func (r *InventoryRepo) Create(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records
			(id, item_id, stock_area_id, current_quantity, max_capacity, reorder_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ItemID, record.StockAreaID, record.CurrentQuantity,
		record.MaxCapacity, record.ReorderThreshold, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID dentro de la empresa.
func (r *InventoryRepo) GetByID(id, companyID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM inventory_records r
		JOIN stock_areas sa ON sa.id = r.stock_area_id
		JOIN sites s ON s.id = sa.site_id
		WHERE r.id = $1 AND s.company_id = $2`
	return scanRecord(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetDetail obtiene la vista unida de un registro dentro de la empresa.
func (r *InventoryRepo) GetDetail(id, companyID string) (*repository.InventoryDetail, error) {
	query := detailSelect + ` WHERE r.id = $1 AND s.company_id = $2`
	d, err := scanDetail(r.q.QueryRow(context.Background(), query, id, companyID))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetByItemAndStockArea busca el registro del par. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByItemAndStockArea(itemID, stockAreaID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM inventory_records r
		WHERE r.item_id = $1 AND r.stock_area_id = $2`
	return scanRecord(r.q.QueryRow(context.Background(), query, itemID, stockAreaID))
}

// ListByCompany lista la vista unida aplicando filtros de SQL. LowStockOnly
// no se resuelve aquí: lo aplica el caso de uso con el clasificador.
func (r *InventoryRepo) ListByCompany(companyID string, filters repository.InventoryFilters) ([]repository.InventoryDetail, error) {
	var sb strings.Builder
	sb.WriteString(detailSelect)
	sb.WriteString(" WHERE s.company_id = $1")
	args := []interface{}{companyID}

	if filters.SiteID != "" {
		args = append(args, filters.SiteID)
		sb.WriteString(" AND s.id = $" + strconv.Itoa(len(args)))
	}
	if filters.StockAreaID != "" {
		args = append(args, filters.StockAreaID)
		sb.WriteString(" AND sa.id = $" + strconv.Itoa(len(args)))
	}
	if filters.ItemType != "" {
		args = append(args, filters.ItemType)
		sb.WriteString(" AND i.type = $" + strconv.Itoa(len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(" AND (i.name ILIKE $" + n + " OR i.description ILIKE $" + n + ")")
	}
	sb.WriteString(" ORDER BY i.name ASC, sa.name ASC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// Update persiste cantidad, capacidad y umbral de un registro.
func (r *InventoryRepo) Update(record *entity.InventoryRecord) error {
	query := `
		UPDATE inventory_records
		SET current_quantity = $1, max_capacity = $2, reorder_threshold = $3, updated_at = $4
		WHERE id = $5`
	_, err := r.q.Exec(context.Background(), query,
		record.CurrentQuantity, record.MaxCapacity, record.ReorderThreshold,
		record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("update inventory record: %w", err)
	}
	return nil
}

// Delete elimina un registro de inventario.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory record: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el registro bloqueando la fila. Serializa los ajustes
// concurrentes sobre el mismo registro; solo tiene sentido dentro de una
// transacción abierta por TxRunner.
func (r *InventoryRepo) GetForUpdate(id, companyID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM inventory_records r
		JOIN stock_areas sa ON sa.id = r.stock_area_id
		JOIN sites s ON s.id = sa.site_id
		WHERE r.id = $1 AND s.company_id = $2
		FOR UPDATE OF r`
	return scanRecord(r.q.QueryRow(context.Background(), query, id, companyID))
}

// CountByItem cuenta los registros de inventario de un artículo.
func (r *InventoryRepo) CountByItem(itemID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory_records WHERE item_id = $1`, itemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inventory by item: %w", err)
	}
	return n, nil
}

// CountByStockArea cuenta los registros de inventario de un área.
func (r *InventoryRepo) CountByStockArea(stockAreaID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory_records WHERE stock_area_id = $1`, stockAreaID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inventory by stock area: %w", err)
	}
	return n, nil
}

func scanRecord(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.ItemID, &rec.StockAreaID, &rec.CurrentQuantity,
		&rec.MaxCapacity, &rec.ReorderThreshold, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inventory record: %w", err)
	}
	return &rec, nil
}

func scanDetail(row pgx.Row) (*repository.InventoryDetail, error) {
	var d repository.InventoryDetail
	err := row.Scan(
		&d.Record.ID, &d.Record.ItemID, &d.Record.StockAreaID, &d.Record.CurrentQuantity,
		&d.Record.MaxCapacity, &d.Record.ReorderThreshold, &d.Record.CreatedAt, &d.Record.UpdatedAt,
		&d.ItemName, &d.ItemDescription, &d.ItemType, &d.DrugCode,
		&d.IsHazardous, &d.IsHighAlert, &d.IsLASA,
		&d.StockAreaName, &d.SiteID, &d.SiteName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan inventory detail: %w", err)
	}
	return &d, nil
}

func scanDetails(rows pgx.Rows) ([]repository.InventoryDetail, error) {
	var out []repository.InventoryDetail
	for rows.Next() {
		var d repository.InventoryDetail
		err := rows.Scan(
			&d.Record.ID, &d.Record.ItemID, &d.Record.StockAreaID, &d.Record.CurrentQuantity,
			&d.Record.MaxCapacity, &d.Record.ReorderThreshold, &d.Record.CreatedAt, &d.Record.UpdatedAt,
			&d.ItemName, &d.ItemDescription, &d.ItemType, &d.DrugCode,
			&d.IsHazardous, &d.IsHighAlert, &d.IsLASA,
			&d.StockAreaName, &d.SiteID, &d.SiteName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventory detail: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
