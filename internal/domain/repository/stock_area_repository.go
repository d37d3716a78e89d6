package repository

import "github.com/medstock/medstock-api/internal/domain/entity"

// StockAreaRepository define el puerto de persistencia para StockArea (DIP).
// La pertenencia a empresa se resuelve vía el Site padre (join), de modo que
// un área de otra empresa se comporta como inexistente.
type StockAreaRepository interface {
	Create(area *entity.StockArea) error
	GetByID(id, companyID string) (*entity.StockArea, error)
	ListBySite(siteID string) ([]*entity.StockArea, error)
	ListByCompany(companyID string) ([]*entity.StockArea, error)
	Update(area *entity.StockArea) error
	Delete(id string) error

	// CountBySite cuenta las áreas de una sede (bloqueo de borrado de Site).
	CountBySite(siteID string) (int, error)
}
