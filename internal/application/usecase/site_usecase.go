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

// SiteUseCase casos de uso CRUD para sedes.
type SiteUseCase struct {
	siteRepo repository.SiteRepository
	areaRepo repository.StockAreaRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(siteRepo repository.SiteRepository, areaRepo repository.StockAreaRepository) *SiteUseCase {
	return &SiteUseCase{siteRepo: siteRepo, areaRepo: areaRepo}
}

// Create crea una sede.
func (uc *SiteUseCase) Create(companyID string, in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	site := &entity.Site{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.siteRepo.Create(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// GetByID obtiene una sede de la empresa.
func (uc *SiteUseCase) GetByID(id, companyID string) (*dto.SiteResponse, error) {
	site, err := uc.siteRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	return toSiteResponse(site), nil
}

// List lista las sedes de la empresa.
func (uc *SiteUseCase) List(companyID string) (*dto.SiteListResponse, error) {
	sites, err := uc.siteRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, *toSiteResponse(s))
	}
	return &dto.SiteListResponse{Sites: out, Total: len(out)}, nil
}

// Update actualiza los campos presentes de una sede.
func (uc *SiteUseCase) Update(id, companyID string, in dto.UpdateSiteRequest) (*dto.SiteResponse, error) {
	site, err := uc.siteRepo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		site.Name = *in.Name
	}
	if in.Address != nil {
		site.Address = *in.Address
	}
	site.UpdatedAt = time.Now()
	if err := uc.siteRepo.Update(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// Delete elimina una sede. Falla con ErrConflict si aún tiene áreas de
// almacenamiento.
func (uc *SiteUseCase) Delete(id, companyID string) error {
	site, err := uc.siteRepo.GetByID(id, companyID)
	if err != nil {
		return err
	}
	if site == nil {
		return domain.ErrNotFound
	}
	count, err := uc.areaRepo.CountBySite(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.siteRepo.Delete(id)
}

func toSiteResponse(site *entity.Site) *dto.SiteResponse {
	return &dto.SiteResponse{
		ID:        site.ID,
		Name:      site.Name,
		Address:   site.Address,
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
	}
}
