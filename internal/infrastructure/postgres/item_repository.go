package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, name, description, type, drug_code,
	is_hazardous, is_high_alert, is_lasa, created_at, updated_at`

// Create persiste un artículo del catálogo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Name, item.Description, item.Type,
		item.DrugCode, item.IsHazardous, item.IsHighAlert, item.IsLASA,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID dentro de la empresa.
// Un artículo de otra empresa devuelve (nil, nil), igual que uno inexistente.
func (r *ItemRepo) GetByID(id, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND company_id = $2`
	return scanItem(r.q.QueryRow(context.Background(), query, id, companyID))
}

// ListByCompany lista el catálogo de la empresa aplicando filtros.
// Las dimensiones se combinan con AND; Search aplica ILIKE sobre
// name, description y drug_code.
func (r *ItemRepo) ListByCompany(companyID string, filters repository.ItemFilters) ([]*entity.Item, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + itemColumns + ` FROM items WHERE company_id = $1`)
	args := []interface{}{companyID}

	if filters.Type != "" {
		args = append(args, filters.Type)
		sb.WriteString(" AND type = $" + strconv.Itoa(len(args)))
	}
	if filters.IsHazardous != nil {
		args = append(args, *filters.IsHazardous)
		sb.WriteString(" AND is_hazardous = $" + strconv.Itoa(len(args)))
	}
	if filters.IsHighAlert != nil {
		args = append(args, *filters.IsHighAlert)
		sb.WriteString(" AND is_high_alert = $" + strconv.Itoa(len(args)))
	}
	if filters.IsLASA != nil {
		args = append(args, *filters.IsLASA)
		sb.WriteString(" AND is_lasa = $" + strconv.Itoa(len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(" AND (name ILIKE $" + n + " OR description ILIKE $" + n + " OR drug_code ILIKE $" + n + ")")
	}
	sb.WriteString(" ORDER BY name ASC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// Update actualiza un artículo existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $1, description = $2, type = $3, drug_code = $4,
		    is_hazardous = $5, is_high_alert = $6, is_lasa = $7, updated_at = $8
		WHERE id = $9 AND company_id = $10`
	_, err := r.q.Exec(context.Background(), query,
		item.Name, item.Description, item.Type, item.DrugCode,
		item.IsHazardous, item.IsHighAlert, item.IsLASA, item.UpdatedAt,
		item.ID, item.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo. El caso de uso verifica antes que no tenga
// registros de inventario.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ListMedicationsWithSafetyFlags devuelve los medicamentos con al menos una
// bandera de seguridad activa, ordenados por nombre.
func (r *ItemRepo) ListMedicationsWithSafetyFlags(companyID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE company_id = $1 AND type = $2
		  AND (is_hazardous OR is_high_alert OR is_lasa)
		ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, entity.ItemTypeMedication)
	if err != nil {
		return nil, fmt.Errorf("list safety medications: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// GetStats conteos agregados del catálogo en una sola consulta.
func (r *ItemRepo) GetStats(companyID string) (repository.ItemStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE type = 'MEDICATION'),
			COUNT(*) FILTER (WHERE type = 'SUPPLY'),
			COUNT(*) FILTER (WHERE is_hazardous),
			COUNT(*) FILTER (WHERE is_high_alert),
			COUNT(*) FILTER (WHERE is_lasa)
		FROM items WHERE company_id = $1`
	var s repository.ItemStats
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.Total, &s.Medications, &s.Supplies, &s.Hazardous, &s.HighAlert, &s.LASA,
	)
	if err != nil {
		return repository.ItemStats{}, fmt.Errorf("item stats: %w", err)
	}
	return s, nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.Name, &it.Description, &it.Type, &it.DrugCode,
		&it.IsHazardous, &it.IsHighAlert, &it.IsLASA, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var out []*entity.Item
	for rows.Next() {
		var it entity.Item
		err := rows.Scan(
			&it.ID, &it.CompanyID, &it.Name, &it.Description, &it.Type, &it.DrugCode,
			&it.IsHazardous, &it.IsHighAlert, &it.IsLASA, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
