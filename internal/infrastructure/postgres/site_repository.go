package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medstock/medstock-api/internal/domain/entity"
	"github.com/medstock/medstock-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación del puerto SiteRepository sobre PostgreSQL.
type SiteRepo struct {
	q Querier
}

func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

// Create persiste una sede.
func (r *SiteRepo) Create(site *entity.Site) error {
	query := `
		INSERT INTO sites (id, company_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		site.ID, site.CompanyID, site.Name, site.Address, site.CreatedAt, site.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID dentro de la empresa.
func (r *SiteRepo) GetByID(id, companyID string) (*entity.Site, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM sites WHERE id = $1 AND company_id = $2`
	var s entity.Site
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &s, nil
}

// ListByCompany lista las sedes de la empresa ordenadas por nombre.
func (r *SiteRepo) ListByCompany(companyID string) ([]*entity.Site, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM sites WHERE company_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	var out []*entity.Site
	for rows.Next() {
		var s entity.Site
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update actualiza una sede existente.
func (r *SiteRepo) Update(site *entity.Site) error {
	query := `
		UPDATE sites SET name = $1, address = $2, updated_at = $3
		WHERE id = $4 AND company_id = $5`
	_, err := r.q.Exec(context.Background(), query,
		site.Name, site.Address, site.UpdatedAt, site.ID, site.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}

// Delete elimina una sede. El caso de uso verifica antes que no tenga áreas.
func (r *SiteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}
