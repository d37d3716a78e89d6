package repository

import "github.com/medstock/medstock-api/internal/domain/entity"

// SiteRepository define el puerto de persistencia para Site (DIP).
type SiteRepository interface {
	Create(site *entity.Site) error
	GetByID(id, companyID string) (*entity.Site, error)
	ListByCompany(companyID string) ([]*entity.Site, error)
	Update(site *entity.Site) error
	Delete(id string) error
}
