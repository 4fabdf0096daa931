package services

import (
	"database/sql"
	"errors"
	"fmt"

	"salon_backend/internal/models"
	"salon_backend/internal/repositories"
)

// --- Custom Service Errors for the Service Catalog ---
var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrServiceVariantNotFound = errors.New("service variant not found")
	ErrBlockTimeNotFound      = errors.New("blocked time for service not found")
	ErrServiceMissingBlock    = errors.New("service has no blocked time row")
)

// --- Catalog DTOs ---

// GenerateServiceRequest creates a service together with its blocked-time
// row and its variants.
type GenerateServiceRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description *string                  `json:"description"`
	IsActive    int64                    `json:"is_active"`
	Category    *string                  `json:"category"`
	BeforeTime  *string                  `json:"before_time"`
	AfterTime   *string                  `json:"after_time"`
	Variants    []GenerateVariantRequest `json:"variants"`
}

type GenerateVariantRequest struct {
	Price    float64 `json:"price"`
	Duration *string `json:"duration"`
}

type ServiceUpdateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsActive    int64   `json:"is_active"`
	Category    *string `json:"category"`
}

// VariantUpdateRequest replaces a variant's columns, including the service it
// points at.
type VariantUpdateRequest struct {
	ServiceID int64   `json:"service_id"`
	Price     float64 `json:"price"`
	Duration  *string `json:"duration"`
}

type BlockTimeRequest struct {
	BeforeTime *string `json:"before_time"`
	AfterTime  *string `json:"after_time"`
}

// UpdateFullServiceRequest updates the service row, its blocked time and a
// list of existing variants in one call.
type UpdateFullServiceRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description *string                  `json:"description"`
	IsActive    int64                    `json:"is_active"`
	Category    *string                  `json:"category"`
	BeforeTime  *string                  `json:"before_time"`
	AfterTime   *string                  `json:"after_time"`
	Variants    []ExistingVariantRequest `json:"variants"`
}

type ExistingVariantRequest struct {
	ServiceVariantID int64   `json:"service_variant_id"`
	Price            float64 `json:"price"`
	Duration         *string `json:"duration"`
}

// --- CatalogService Interface ---
type CatalogService interface {
	GetFullServices() ([]models.FullService, error)
	GetFullService(serviceID int64) (*models.FullService, error)
	CreateService(req GenerateServiceRequest) (*models.Service, error)
	UpdateService(serviceID int64, req ServiceUpdateRequest) (*models.Service, error)
	UpdateServiceVariant(variantID int64, req VariantUpdateRequest) (*models.ServiceVariant, error)
	UpdateBlockTime(serviceID int64, req BlockTimeRequest) (*models.BlockExtraTime, error)
	UpdateFullService(serviceID int64, req UpdateFullServiceRequest) (*models.Service, error)
	DeleteService(serviceID int64) (int64, error)
}

// --- catalogService Implementation ---
type catalogService struct {
	serviceRepo repositories.ServiceRepository
	db          *sql.DB
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(svr repositories.ServiceRepository, db *sql.DB) CatalogService {
	return &catalogService{
		serviceRepo: svr,
		db:          db,
	}
}

// GetFullServices loads all services, all blocked-time rows and all variants
// in three queries, then stitches the aggregates by service id. A service
// without a blocked-time row is reported as a data-integrity error rather
// than being skipped.
func (s *catalogService) GetFullServices() ([]models.FullService, error) {
	allServices, err := s.serviceRepo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	allBlocks, err := s.serviceRepo.GetAllBlockTimes()
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked times: %w", err)
	}

	allVariants, err := s.serviceRepo.GetAllServiceVariants()
	if err != nil {
		return nil, fmt.Errorf("failed to get variants: %w", err)
	}

	blockByService := make(map[int64]models.BlockExtraTime, len(allBlocks))
	for _, block := range allBlocks {
		blockByService[block.ServiceID] = block
	}

	variantsByService := make(map[int64][]models.ServiceVariant, len(allServices))
	for _, variant := range allVariants {
		variantsByService[variant.ServiceID] = append(variantsByService[variant.ServiceID], variant)
	}

	fullServices := make([]models.FullService, 0, len(allServices))
	for _, service := range allServices {
		block, ok := blockByService[service.ID]
		if !ok {
			return nil, fmt.Errorf("%w: service ID %d", ErrServiceMissingBlock, service.ID)
		}

		variants := variantsByService[service.ID]
		if variants == nil {
			variants = []models.ServiceVariant{}
		}

		fullServices = append(fullServices, models.FullService{
			Service:     service,
			BlockedTime: block,
			Variants:    variants,
		})
	}
	return fullServices, nil
}

func (s *catalogService) GetFullService(serviceID int64) (*models.FullService, error) {
	service, err := s.serviceRepo.GetServiceByID(serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service by ID: %w", err)
	}

	block, err := s.serviceRepo.GetBlockTimeByService(serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlockTimeNotFound
		}
		return nil, fmt.Errorf("failed to get blocked time for service: %w", err)
	}

	variants, err := s.serviceRepo.GetServiceVariants(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get variants for service: %w", err)
	}

	return &models.FullService{
		Service:     *service,
		BlockedTime: *block,
		Variants:    variants,
	}, nil
}

// CreateService inserts the service row, its blocked-time row and its
// variants in a single transaction, so the one-block-per-service invariant
// cannot be broken by a partial failure.
func (s *catalogService) CreateService(req GenerateServiceRequest) (*models.Service, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for service creation: %w", err)
	}
	defer tx.Rollback()

	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		Category:    req.Category,
	}
	created, err := s.serviceRepo.CreateService(tx, service)
	if err != nil {
		return nil, fmt.Errorf("failed to create service in repository: %w", err)
	}

	block := &models.BlockExtraTime{
		ServiceID:  created.ID,
		BeforeTime: req.BeforeTime,
		AfterTime:  req.AfterTime,
	}
	if _, err := s.serviceRepo.CreateBlockTime(tx, block); err != nil {
		return nil, fmt.Errorf("failed to create blocked time: %w", err)
	}

	for _, variantReq := range req.Variants {
		variant := &models.ServiceVariant{
			ServiceID: created.ID,
			Price:     variantReq.Price,
			Duration:  variantReq.Duration,
		}
		if _, err := s.serviceRepo.CreateServiceVariant(tx, variant); err != nil {
			return nil, fmt.Errorf("failed to create service variant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit service creation: %w", err)
	}
	return created, nil
}

func (s *catalogService) UpdateService(serviceID int64, req ServiceUpdateRequest) (*models.Service, error) {
	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		Category:    req.Category,
	}

	updated, err := s.serviceRepo.UpdateService(s.db, serviceID, service)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service in repository: %w", err)
	}
	return updated, nil
}

func (s *catalogService) UpdateServiceVariant(variantID int64, req VariantUpdateRequest) (*models.ServiceVariant, error) {
	variant := &models.ServiceVariant{
		ServiceID: req.ServiceID,
		Price:     req.Price,
		Duration:  req.Duration,
	}

	updated, err := s.serviceRepo.UpdateServiceVariant(s.db, variantID, variant)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceVariantNotFound
		}
		return nil, fmt.Errorf("failed to update service variant in repository: %w", err)
	}
	return updated, nil
}

func (s *catalogService) UpdateBlockTime(serviceID int64, req BlockTimeRequest) (*models.BlockExtraTime, error) {
	block := &models.BlockExtraTime{
		BeforeTime: req.BeforeTime,
		AfterTime:  req.AfterTime,
	}

	updated, err := s.serviceRepo.UpdateBlockTimeByService(s.db, serviceID, block)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlockTimeNotFound
		}
		return nil, fmt.Errorf("failed to update blocked time in repository: %w", err)
	}
	return updated, nil
}

// UpdateFullService updates the service row, each listed variant by its own
// id (re-pointing its service_id at this service) and the blocked-time row,
// all in one transaction.
func (s *catalogService) UpdateFullService(serviceID int64, req UpdateFullServiceRequest) (*models.Service, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for full service update: %w", err)
	}
	defer tx.Rollback()

	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		Category:    req.Category,
	}
	updated, err := s.serviceRepo.UpdateService(tx, serviceID, service)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	for _, variantReq := range req.Variants {
		variant := &models.ServiceVariant{
			ServiceID: serviceID,
			Price:     variantReq.Price,
			Duration:  variantReq.Duration,
		}
		if _, err := s.serviceRepo.UpdateServiceVariant(tx, variantReq.ServiceVariantID, variant); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: variant %d", ErrServiceVariantNotFound, variantReq.ServiceVariantID)
			}
			return nil, fmt.Errorf("failed to update variant %d: %w", variantReq.ServiceVariantID, err)
		}
	}

	block := &models.BlockExtraTime{
		BeforeTime: req.BeforeTime,
		AfterTime:  req.AfterTime,
	}
	if _, err := s.serviceRepo.UpdateBlockTimeByService(tx, serviceID, block); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlockTimeNotFound
		}
		return nil, fmt.Errorf("failed to update blocked time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit full service update: %w", err)
	}
	return updated, nil
}

// DeleteService removes the variants, the blocked-time row and the service
// row in one transaction and reports the service-row deletion count.
func (s *catalogService) DeleteService(serviceID int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for service deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.serviceRepo.DeleteServiceVariantsByService(tx, serviceID); err != nil {
		return 0, fmt.Errorf("failed to delete service variants: %w", err)
	}
	if _, err := s.serviceRepo.DeleteBlockTimeByService(tx, serviceID); err != nil {
		return 0, fmt.Errorf("failed to delete blocked time: %w", err)
	}

	deleted, err := s.serviceRepo.DeleteService(tx, serviceID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete service: %w", err)
	}
	if deleted == 0 {
		return 0, ErrServiceNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit service deletion: %w", err)
	}
	return deleted, nil
}
