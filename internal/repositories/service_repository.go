package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"salon_backend/internal/models"
)

// ServiceRepository defines the interface for service-catalog, variant and
// blocked-time database operations.
type ServiceRepository interface {
	// Service methods
	GetServices() ([]models.Service, error)
	GetServiceByID(id int64) (*models.Service, error)
	CreateService(executor SQLExecutor, service *models.Service) (*models.Service, error)
	UpdateService(executor SQLExecutor, id int64, service *models.Service) (*models.Service, error)
	DeleteService(executor SQLExecutor, id int64) (int64, error)

	// Variant methods
	GetAllServiceVariants() ([]models.ServiceVariant, error)
	GetServiceVariants(serviceID int64) ([]models.ServiceVariant, error)
	GetServiceVariantByID(variantID int64) (*models.ServiceVariant, error)
	CreateServiceVariant(executor SQLExecutor, variant *models.ServiceVariant) (*models.ServiceVariant, error)
	UpdateServiceVariant(executor SQLExecutor, variantID int64, variant *models.ServiceVariant) (*models.ServiceVariant, error)
	DeleteServiceVariantsByService(executor SQLExecutor, serviceID int64) (int64, error)

	// Blocked-time methods
	GetAllBlockTimes() ([]models.BlockExtraTime, error)
	GetBlockTimeByService(serviceID int64) (*models.BlockExtraTime, error)
	CreateBlockTime(executor SQLExecutor, block *models.BlockExtraTime) (*models.BlockExtraTime, error)
	UpdateBlockTimeByService(executor SQLExecutor, serviceID int64, block *models.BlockExtraTime) (*models.BlockExtraTime, error)
	DeleteBlockTimeByService(executor SQLExecutor, serviceID int64) (int64, error)
}

type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db *sql.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// --- Service Methods ---

func scanServiceRow(row scanner) (*models.Service, error) {
	var service models.Service
	var description, category sql.NullString

	err := row.Scan(&service.ID, &service.Name, &description, &service.IsActive, &category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning service: %v", ErrDatabaseError, err)
	}

	service.Description = fromNullString(description)
	service.Category = fromNullString(category)
	return &service, nil
}

func (r *serviceRepository) GetServices() ([]models.Service, error) {
	serviceList := []models.Service{}
	query := `SELECT service_id, name, description, is_active, category
	          FROM service
	          ORDER BY service_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying services: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		service, err := scanServiceRow(rows)
		if err != nil {
			return nil, err
		}
		serviceList = append(serviceList, *service)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating service rows: %v", ErrDatabaseError, err)
	}
	return serviceList, nil
}

func (r *serviceRepository) GetServiceByID(id int64) (*models.Service, error) {
	query := `SELECT service_id, name, description, is_active, category
	          FROM service
	          WHERE service_id = $1`
	return scanServiceRow(r.db.QueryRow(query, id))
}

func (r *serviceRepository) CreateService(executor SQLExecutor, service *models.Service) (*models.Service, error) {
	query := `INSERT INTO service (name, description, is_active, category)
	          VALUES ($1, $2, $3, $4)
	          RETURNING service_id`

	err := executor.QueryRow(query,
		service.Name, toNullString(service.Description), service.IsActive, toNullString(service.Category),
	).Scan(&service.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating service")
	}
	return service, nil
}

func (r *serviceRepository) UpdateService(executor SQLExecutor, id int64, service *models.Service) (*models.Service, error) {
	query := `UPDATE service SET name = $1, description = $2, is_active = $3, category = $4
	          WHERE service_id = $5
	          RETURNING service_id`

	err := executor.QueryRow(query,
		service.Name, toNullString(service.Description), service.IsActive, toNullString(service.Category), id,
	).Scan(&service.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating service ID %d: %v", ErrDatabaseError, id, err)
	}
	return service, nil
}

func (r *serviceRepository) DeleteService(executor SQLExecutor, id int64) (int64, error) {
	query := `DELETE FROM service WHERE service_id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting service ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Variant Methods ---

func scanServiceVariants(rows *sql.Rows) ([]models.ServiceVariant, error) {
	variants := []models.ServiceVariant{}
	for rows.Next() {
		var variant models.ServiceVariant
		var duration sql.NullString
		if err := rows.Scan(&variant.ID, &variant.ServiceID, &variant.Price, &duration); err != nil {
			return nil, fmt.Errorf("%w: scanning service variant: %v", ErrDatabaseError, err)
		}
		variant.Duration = fromNullString(duration)
		variants = append(variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating service variant rows: %v", ErrDatabaseError, err)
	}
	return variants, nil
}

func (r *serviceRepository) GetAllServiceVariants() ([]models.ServiceVariant, error) {
	query := `SELECT service_variant_id, service_id, price, duration
	          FROM service_variant
	          ORDER BY service_id ASC, service_variant_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all service variants: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	return scanServiceVariants(rows)
}

func (r *serviceRepository) GetServiceVariants(serviceID int64) ([]models.ServiceVariant, error) {
	query := `SELECT service_variant_id, service_id, price, duration
	          FROM service_variant
	          WHERE service_id = $1
	          ORDER BY service_variant_id ASC`

	rows, err := r.db.Query(query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying variants for service ID %d: %v", ErrDatabaseError, serviceID, err)
	}
	defer rows.Close()
	return scanServiceVariants(rows)
}

func (r *serviceRepository) GetServiceVariantByID(variantID int64) (*models.ServiceVariant, error) {
	var variant models.ServiceVariant
	var duration sql.NullString

	query := `SELECT service_variant_id, service_id, price, duration
	          FROM service_variant
	          WHERE service_variant_id = $1`

	err := r.db.QueryRow(query, variantID).Scan(&variant.ID, &variant.ServiceID, &variant.Price, &duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting service variant ID %d: %v", ErrDatabaseError, variantID, err)
	}

	variant.Duration = fromNullString(duration)
	return &variant, nil
}

func (r *serviceRepository) CreateServiceVariant(executor SQLExecutor, variant *models.ServiceVariant) (*models.ServiceVariant, error) {
	query := `INSERT INTO service_variant (service_id, price, duration)
	          VALUES ($1, $2, $3)
	          RETURNING service_variant_id`

	err := executor.QueryRow(query,
		variant.ServiceID, variant.Price, toNullString(variant.Duration),
	).Scan(&variant.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating service variant")
	}
	return variant, nil
}

func (r *serviceRepository) UpdateServiceVariant(executor SQLExecutor, variantID int64, variant *models.ServiceVariant) (*models.ServiceVariant, error) {
	query := `UPDATE service_variant SET service_id = $1, price = $2, duration = $3
	          WHERE service_variant_id = $4
	          RETURNING service_variant_id`

	err := executor.QueryRow(query,
		variant.ServiceID, variant.Price, toNullString(variant.Duration), variantID,
	).Scan(&variant.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating service variant ID %d: %v", ErrDatabaseError, variantID, err)
	}
	return variant, nil
}

func (r *serviceRepository) DeleteServiceVariantsByService(executor SQLExecutor, serviceID int64) (int64, error) {
	query := `DELETE FROM service_variant WHERE service_id = $1`
	result, err := executor.Exec(query, serviceID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting variants for service ID %d: %v", ErrDatabaseError, serviceID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Blocked-Time Methods ---

func scanBlockTimeRow(row scanner) (*models.BlockExtraTime, error) {
	var block models.BlockExtraTime
	var beforeTime, afterTime sql.NullString

	err := row.Scan(&block.ID, &block.ServiceID, &beforeTime, &afterTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning blocked time: %v", ErrDatabaseError, err)
	}

	block.BeforeTime = fromNullString(beforeTime)
	block.AfterTime = fromNullString(afterTime)
	return &block, nil
}

func (r *serviceRepository) GetAllBlockTimes() ([]models.BlockExtraTime, error) {
	blocks := []models.BlockExtraTime{}
	query := `SELECT block_extra_time_id, service_id, before_time, after_time
	          FROM block_extra_time
	          ORDER BY service_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying blocked times: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		block, err := scanBlockTimeRow(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *block)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating blocked time rows: %v", ErrDatabaseError, err)
	}
	return blocks, nil
}

func (r *serviceRepository) GetBlockTimeByService(serviceID int64) (*models.BlockExtraTime, error) {
	query := `SELECT block_extra_time_id, service_id, before_time, after_time
	          FROM block_extra_time
	          WHERE service_id = $1`
	return scanBlockTimeRow(r.db.QueryRow(query, serviceID))
}

func (r *serviceRepository) CreateBlockTime(executor SQLExecutor, block *models.BlockExtraTime) (*models.BlockExtraTime, error) {
	query := `INSERT INTO block_extra_time (service_id, before_time, after_time)
	          VALUES ($1, $2, $3)
	          RETURNING block_extra_time_id`

	err := executor.QueryRow(query,
		block.ServiceID, toNullString(block.BeforeTime), toNullString(block.AfterTime),
	).Scan(&block.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating blocked time")
	}
	return block, nil
}

func (r *serviceRepository) UpdateBlockTimeByService(executor SQLExecutor, serviceID int64, block *models.BlockExtraTime) (*models.BlockExtraTime, error) {
	query := `UPDATE block_extra_time SET before_time = $1, after_time = $2
	          WHERE service_id = $3
	          RETURNING block_extra_time_id`

	err := executor.QueryRow(query,
		toNullString(block.BeforeTime), toNullString(block.AfterTime), serviceID,
	).Scan(&block.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating blocked time for service ID %d: %v", ErrDatabaseError, serviceID, err)
	}
	block.ServiceID = serviceID
	return block, nil
}

func (r *serviceRepository) DeleteBlockTimeByService(executor SQLExecutor, serviceID int64) (int64, error) {
	query := `DELETE FROM block_extra_time WHERE service_id = $1`
	result, err := executor.Exec(query, serviceID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting blocked time for service ID %d: %v", ErrDatabaseError, serviceID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
