package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.StockAreaRepository = (*StockAreaRepo)(nil)

// StockAreaRepo implementación del puerto StockAreaRepository sobre PostgreSQL.
// La pertenencia a empresa se resuelve con JOIN a sites.
type StockAreaRepo struct {
	q Querier
}

func NewStockAreaRepository(q Querier) *StockAreaRepo {
	return &StockAreaRepo{q: q}
}

// Create persiste un área de almacenamiento.
func (r *StockAreaRepo) Create(area *entity.StockArea) error {
	query := `
		INSERT INTO stock_areas (id, site_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		area.ID, area.SiteID, area.Name, area.CreatedAt, area.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID dentro de la empresa (vía su sede).
func (r *StockAreaRepo) GetByID(id, companyID string) (*entity.StockArea, error) {
	query := `
		SELECT sa.id, sa.site_id, sa.name, sa.created_at, sa.updated_at
		FROM stock_areas sa
		JOIN sites s ON s.id = sa.site_id
		WHERE sa.id = $1 AND s.company_id = $2`
	var a entity.StockArea
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&a.ID, &a.SiteID, &a.Name, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock area: %w", err)
	}
	return &a, nil
}

// ListBySite lista las áreas de una sede ordenadas por nombre.
func (r *StockAreaRepo) ListBySite(siteID string) ([]*entity.StockArea, error) {
	query := `
		SELECT id, site_id, name, created_at, updated_at
		FROM stock_areas WHERE site_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, siteID)
	if err != nil {
		return nil, fmt.Errorf("list stock areas: %w", err)
	}
	defer rows.Close()
	return scanStockAreas(rows)
}

// ListByCompany lista todas las áreas de la empresa (vía sus sedes).
func (r *StockAreaRepo) ListByCompany(companyID string) ([]*entity.StockArea, error) {
	query := `
		SELECT sa.id, sa.site_id, sa.name, sa.created_at, sa.updated_at
		FROM stock_areas sa
		JOIN sites s ON s.id = sa.site_id
		WHERE s.company_id = $1
		ORDER BY sa.name ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock areas: %w", err)
	}
	defer rows.Close()
	return scanStockAreas(rows)
}

// Update actualiza un área existente.
func (r *StockAreaRepo) Update(area *entity.StockArea) error {
	query := `UPDATE stock_areas SET name = $1, updated_at = $2 WHERE id = $3`
	_, err := r.q.Exec(context.Background(), query, area.Name, area.UpdatedAt, area.ID)
	if err != nil {
		return fmt.Errorf("update stock area: %w", err)
	}
	return nil
}

// Delete elimina un área. El caso de uso verifica antes que no tenga inventario.
func (r *StockAreaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock area: %w", err)
	}
	return nil
}

// CountBySite cuenta las áreas de una sede.
func (r *StockAreaRepo) CountBySite(siteID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_areas WHERE site_id = $1`, siteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock areas: %w", err)
	}
	return n, nil
}

func scanStockAreas(rows pgx.Rows) ([]*entity.StockArea, error) {
	var out []*entity.StockArea
	for rows.Next() {
		var a entity.StockArea
		if err := rows.Scan(&a.ID, &a.SiteID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock area: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
