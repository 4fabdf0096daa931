package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"salon_backend/internal/models"
)

// StoreRepository defines the interface for store, address and opening-hours
// database operations.
type StoreRepository interface {
	// Store methods
	GetStores() ([]models.Store, error)
	GetStoreByID(id int64) (*models.Store, error)
	CreateStore(executor SQLExecutor, name string) (*models.Store, error)
	UpdateStore(executor SQLExecutor, id int64, name string) (*models.Store, error)
	DeleteStore(executor SQLExecutor, id int64) (int64, error)

	// Address methods
	GetStoreAddress(storeID int64) (*models.StoreAddress, error)
	CreateStoreAddress(executor SQLExecutor, address *models.StoreAddress) (*models.StoreAddress, error)
	UpdateStoreAddress(executor SQLExecutor, storeID int64, address *models.StoreAddress) (*models.StoreAddress, error)
	DeleteStoreAddressByStore(executor SQLExecutor, storeID int64) (int64, error)

	// Hours methods
	GetAllStoreHours() ([]models.StoreHours, error)
	GetStoreHoursByStore(storeID int64) ([]models.StoreHours, error)
	SeedStoreHours(executor SQLExecutor, storeID int64) error
	UpdateStoreHour(executor SQLExecutor, hourID int64, hour *models.StoreHours) (*models.StoreHours, error)
	UpdateStoreHourByDay(executor SQLExecutor, storeID, dayOfWeek int64, startTime, endTime *string) error
	DeleteStoreHoursByStore(executor SQLExecutor, storeID int64) (int64, error)
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new instance of StoreRepository.
func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

// --- Store Methods ---

func (r *storeRepository) GetStores() ([]models.Store, error) {
	stores := []models.Store{}
	query := `SELECT store_id, name FROM store ORDER BY store_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying stores: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var store models.Store
		if err := rows.Scan(&store.ID, &store.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning store: %v", ErrDatabaseError, err)
		}
		stores = append(stores, store)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating store rows: %v", ErrDatabaseError, err)
	}
	return stores, nil
}

func (r *storeRepository) GetStoreByID(id int64) (*models.Store, error) {
	var store models.Store
	query := `SELECT store_id, name FROM store WHERE store_id = $1`

	err := r.db.QueryRow(query, id).Scan(&store.ID, &store.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting store by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &store, nil
}

func (r *storeRepository) CreateStore(executor SQLExecutor, name string) (*models.Store, error) {
	store := &models.Store{Name: name}
	query := `INSERT INTO store (name) VALUES ($1) RETURNING store_id`

	if err := executor.QueryRow(query, name).Scan(&store.ID); err != nil {
		return nil, wrapWriteError(err, "creating store")
	}
	return store, nil
}

func (r *storeRepository) UpdateStore(executor SQLExecutor, id int64, name string) (*models.Store, error) {
	store := &models.Store{ID: id, Name: name}
	query := `UPDATE store SET name = $1 WHERE store_id = $2 RETURNING store_id`

	err := executor.QueryRow(query, name, id).Scan(&store.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating store ID %d: %v", ErrDatabaseError, id, err)
	}
	return store, nil
}

func (r *storeRepository) DeleteStore(executor SQLExecutor, id int64) (int64, error) {
	query := `DELETE FROM store WHERE store_id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting store ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Address Methods ---

func scanStoreAddressRow(row scanner) (*models.StoreAddress, error) {
	var address models.StoreAddress
	err := row.Scan(
		&address.ID, &address.StoreID, &address.Street, &address.City,
		&address.State, &address.Zip, &address.Phone, &address.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning store address: %v", ErrDatabaseError, err)
	}
	return &address, nil
}

func (r *storeRepository) GetStoreAddress(storeID int64) (*models.StoreAddress, error) {
	query := `SELECT store_address_id, store_id, street_address, city, state, zip, phone, email
	          FROM store_address
	          WHERE store_id = $1`
	return scanStoreAddressRow(r.db.QueryRow(query, storeID))
}

func (r *storeRepository) CreateStoreAddress(executor SQLExecutor, address *models.StoreAddress) (*models.StoreAddress, error) {
	query := `INSERT INTO store_address (store_id, street_address, city, state, zip, phone, email)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING store_address_id`

	err := executor.QueryRow(query,
		address.StoreID, address.Street, address.City, address.State,
		address.Zip, address.Phone, address.Email,
	).Scan(&address.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating store address")
	}
	return address, nil
}

func (r *storeRepository) UpdateStoreAddress(executor SQLExecutor, storeID int64, address *models.StoreAddress) (*models.StoreAddress, error) {
	query := `UPDATE store_address SET
	            street_address = $1, city = $2, state = $3, zip = $4, phone = $5, email = $6
	          WHERE store_id = $7
	          RETURNING store_address_id`

	err := executor.QueryRow(query,
		address.Street, address.City, address.State, address.Zip,
		address.Phone, address.Email, storeID,
	).Scan(&address.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating address for store ID %d: %v", ErrDatabaseError, storeID, err)
	}
	address.StoreID = storeID
	return address, nil
}

func (r *storeRepository) DeleteStoreAddressByStore(executor SQLExecutor, storeID int64) (int64, error) {
	query := `DELETE FROM store_address WHERE store_id = $1`
	result, err := executor.Exec(query, storeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting address for store ID %d: %v", ErrDatabaseError, storeID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Hours Methods ---

func scanStoreHours(rows *sql.Rows) ([]models.StoreHours, error) {
	hours := []models.StoreHours{}
	for rows.Next() {
		var hour models.StoreHours
		var startTime, endTime sql.NullString
		if err := rows.Scan(&hour.ID, &hour.StoreID, &hour.DayOfWeek, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("%w: scanning store hours: %v", ErrDatabaseError, err)
		}
		hour.StartTime = fromNullString(startTime)
		hour.EndTime = fromNullString(endTime)
		hours = append(hours, hour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating store hours rows: %v", ErrDatabaseError, err)
	}
	return hours, nil
}

func (r *storeRepository) GetAllStoreHours() ([]models.StoreHours, error) {
	query := `SELECT store_hours_id, store_id, day_of_week, start_time, end_time
	          FROM store_hours
	          ORDER BY store_id ASC, day_of_week ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all store hours: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	return scanStoreHours(rows)
}

func (r *storeRepository) GetStoreHoursByStore(storeID int64) ([]models.StoreHours, error) {
	query := `SELECT store_hours_id, store_id, day_of_week, start_time, end_time
	          FROM store_hours
	          WHERE store_id = $1
	          ORDER BY day_of_week ASC`

	rows, err := r.db.Query(query, storeID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying hours for store ID %d: %v", ErrDatabaseError, storeID, err)
	}
	defer rows.Close()
	return scanStoreHours(rows)
}

// SeedStoreHours inserts the seven weekday rows for a freshly created store
// in one batch, with both times NULL.
func (r *storeRepository) SeedStoreHours(executor SQLExecutor, storeID int64) error {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO store_hours (store_id, day_of_week, start_time, end_time) VALUES `)

	var values []string
	var args []interface{}
	argCount := 1
	for day := 0; day < 7; day++ {
		values = append(values, fmt.Sprintf("($%d, $%d, NULL, NULL)", argCount, argCount+1))
		args = append(args, storeID, day)
		argCount += 2
	}
	queryBuilder.WriteString(strings.Join(values, ", "))

	if _, err := executor.Exec(queryBuilder.String(), args...); err != nil {
		return wrapWriteError(err, fmt.Sprintf("seeding hours for store ID %d", storeID))
	}
	return nil
}

func (r *storeRepository) UpdateStoreHour(executor SQLExecutor, hourID int64, hour *models.StoreHours) (*models.StoreHours, error) {
	query := `UPDATE store_hours SET day_of_week = $1, start_time = $2, end_time = $3
	          WHERE store_hours_id = $4
	          RETURNING store_hours_id, store_id`

	err := executor.QueryRow(query,
		hour.DayOfWeek, toNullString(hour.StartTime), toNullString(hour.EndTime), hourID,
	).Scan(&hour.ID, &hour.StoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating store hours ID %d: %v", ErrDatabaseError, hourID, err)
	}
	return hour, nil
}

func (r *storeRepository) UpdateStoreHourByDay(executor SQLExecutor, storeID, dayOfWeek int64, startTime, endTime *string) error {
	query := `UPDATE store_hours SET start_time = $1, end_time = $2
	          WHERE store_id = $3 AND day_of_week = $4`

	result, err := executor.Exec(query, toNullString(startTime), toNullString(endTime), storeID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("%w: updating hours for store ID %d day %d: %v", ErrDatabaseError, storeID, dayOfWeek, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *storeRepository) DeleteStoreHoursByStore(executor SQLExecutor, storeID int64) (int64, error) {
	query := `DELETE FROM store_hours WHERE store_id = $1`
	result, err := executor.Exec(query, storeID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting hours for store ID %d: %v", ErrDatabaseError, storeID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
