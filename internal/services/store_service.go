package services

import (
	"database/sql"
	"errors"
	"fmt"

	"salon_backend/internal/models"
	"salon_backend/internal/repositories"
)

// --- Custom Service Errors for Store ---
var (
	ErrStoreNotFound        = errors.New("store not found")
	ErrStoreAddressNotFound = errors.New("store address not found")
	ErrStoreHoursNotFound   = errors.New("store hours row not found")
)

// --- Store DTOs ---

type CreateStoreRequest struct {
	Name string `json:"name" binding:"required"`
}

type StoreAddressRequest struct {
	StoreID int64  `json:"store_id"`
	Street  string `json:"street_address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     int64  `json:"zip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// StoreHoursRequest carries one weekday's hours. In the bulk update the row
// is matched by (store_id, day_of_week); in the by-id update the path id wins.
type StoreHoursRequest struct {
	StoreID   int64   `json:"store_id"`
	DayOfWeek int64   `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// --- StoreService Interface ---
type StoreService interface {
	GetStores() ([]models.Store, error)
	GetStore(storeID int64) (*models.Store, error)
	GetStoreInfo(storeID int64) (*models.StoreInfo, error)
	GetAllStoreHours() ([]models.StoreWithHours, error)
	GetStoreHours(storeID int64) (*models.StoreWithHours, error)
	GetStoreAddress(storeID int64) (*models.StoreAddress, error)
	CreateStore(req CreateStoreRequest) (*models.Store, error)
	CreateStoreAddress(req StoreAddressRequest) (*models.StoreAddress, error)
	UpdateStore(storeID int64, req CreateStoreRequest) (*models.Store, error)
	UpdateStoreAddress(storeID int64, req StoreAddressRequest) (*models.StoreAddress, error)
	UpdateStoreHour(hourID int64, req StoreHoursRequest) (*models.StoreHours, error)
	UpdateStoreHours(reqs []StoreHoursRequest) error
	DeleteStore(storeID int64) (int64, error)
}

// --- storeService Implementation ---
type storeService struct {
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewStoreService creates a new instance of StoreService.
func NewStoreService(sr repositories.StoreRepository, db *sql.DB) StoreService {
	return &storeService{
		storeRepo: sr,
		db:        db,
	}
}

func (s *storeService) GetStores() ([]models.Store, error) {
	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to get stores: %w", err)
	}
	return stores, nil
}

func (s *storeService) GetStore(storeID int64) (*models.Store, error) {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store by ID: %w", err)
	}
	return store, nil
}

// GetStoreInfo assembles the single-store aggregate from three independent
// lookups: the store row, its address row and its hours rows. Hours may
// legitimately be empty; a missing store or address is an error.
func (s *storeService) GetStoreInfo(storeID int64) (*models.StoreInfo, error) {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store for info: %w", err)
	}

	address, err := s.storeRepo.GetStoreAddress(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreAddressNotFound
		}
		return nil, fmt.Errorf("failed to get address for store info: %w", err)
	}

	hours, err := s.storeRepo.GetStoreHoursByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for store info: %w", err)
	}

	return &models.StoreInfo{
		Name:    store.Name,
		Address: *address,
		Hours:   hours,
	}, nil
}

// GetAllStoreHours loads every store and every hours row, then pairs them by
// store id. Grouping is keyed, so list order cannot skew the pairing.
func (s *storeService) GetAllStoreHours() ([]models.StoreWithHours, error) {
	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to get stores for hours listing: %w", err)
	}

	allHours, err := s.storeRepo.GetAllStoreHours()
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for hours listing: %w", err)
	}

	hoursByStore := make(map[int64][]models.StoreHours, len(stores))
	for _, hour := range allHours {
		hoursByStore[hour.StoreID] = append(hoursByStore[hour.StoreID], hour)
	}

	result := make([]models.StoreWithHours, 0, len(stores))
	for _, store := range stores {
		hours := hoursByStore[store.ID]
		if hours == nil {
			hours = []models.StoreHours{}
		}
		result = append(result, models.StoreWithHours{Store: store, Hours: hours})
	}
	return result, nil
}

func (s *storeService) GetStoreHours(storeID int64) (*models.StoreWithHours, error) {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store for hours: %w", err)
	}

	hours, err := s.storeRepo.GetStoreHoursByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for store: %w", err)
	}

	return &models.StoreWithHours{Store: *store, Hours: hours}, nil
}

func (s *storeService) GetStoreAddress(storeID int64) (*models.StoreAddress, error) {
	address, err := s.storeRepo.GetStoreAddress(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreAddressNotFound
		}
		return nil, fmt.Errorf("failed to get store address: %w", err)
	}
	return address, nil
}

// CreateStore inserts the store row and seeds its seven hours rows in a
// single transaction, so a store never exists with a partial week.
func (s *storeService) CreateStore(req CreateStoreRequest) (*models.Store, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for store creation: %w", err)
	}
	defer tx.Rollback()

	store, err := s.storeRepo.CreateStore(tx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create store in repository: %w", err)
	}

	if err := s.storeRepo.SeedStoreHours(tx, store.ID); err != nil {
		return nil, fmt.Errorf("failed to seed store hours: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit store creation: %w", err)
	}
	return store, nil
}

// CreateStoreAddress is an independent insert; the original API does not
// verify that the store exists or that no address is already present.
func (s *storeService) CreateStoreAddress(req StoreAddressRequest) (*models.StoreAddress, error) {
	address := &models.StoreAddress{
		StoreID: req.StoreID,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	created, err := s.storeRepo.CreateStoreAddress(s.db, address)
	if err != nil {
		return nil, fmt.Errorf("failed to create store address in repository: %w", err)
	}
	return created, nil
}

func (s *storeService) UpdateStore(storeID int64, req CreateStoreRequest) (*models.Store, error) {
	store, err := s.storeRepo.UpdateStore(s.db, storeID, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to update store in repository: %w", err)
	}
	return store, nil
}

func (s *storeService) UpdateStoreAddress(storeID int64, req StoreAddressRequest) (*models.StoreAddress, error) {
	address := &models.StoreAddress{
		Street: req.Street,
		City:   req.City,
		State:  req.State,
		Zip:    req.Zip,
		Phone:  req.Phone,
		Email:  req.Email,
	}

	updated, err := s.storeRepo.UpdateStoreAddress(s.db, storeID, address)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreAddressNotFound
		}
		return nil, fmt.Errorf("failed to update store address in repository: %w", err)
	}
	return updated, nil
}

func (s *storeService) UpdateStoreHour(hourID int64, req StoreHoursRequest) (*models.StoreHours, error) {
	hour := &models.StoreHours{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	updated, err := s.storeRepo.UpdateStoreHour(s.db, hourID, hour)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreHoursNotFound
		}
		return nil, fmt.Errorf("failed to update store hours in repository: %w", err)
	}
	return updated, nil
}

// UpdateStoreHours applies a batch of per-day updates, each matched by
// (store_id, day_of_week), inside one transaction. Any entry that matches no
// row aborts the whole batch.
func (s *storeService) UpdateStoreHours(reqs []StoreHoursRequest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk hours update: %w", err)
	}
	defer tx.Rollback()

	for _, req := range reqs {
		err := s.storeRepo.UpdateStoreHourByDay(tx, req.StoreID, req.DayOfWeek, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: store %d day %d", ErrStoreHoursNotFound, req.StoreID, req.DayOfWeek)
			}
			return fmt.Errorf("failed to update hours for store %d day %d: %w", req.StoreID, req.DayOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk hours update: %w", err)
	}
	return nil
}

// DeleteStore removes the hours rows, the address row and the store row in
// one transaction and reports the store-row deletion count.
func (s *storeService) DeleteStore(storeID int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for store deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.storeRepo.DeleteStoreHoursByStore(tx, storeID); err != nil {
		return 0, fmt.Errorf("failed to delete store hours: %w", err)
	}
	if _, err := s.storeRepo.DeleteStoreAddressByStore(tx, storeID); err != nil {
		return 0, fmt.Errorf("failed to delete store address: %w", err)
	}

	deleted, err := s.storeRepo.DeleteStore(tx, storeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete store: %w", err)
	}
	if deleted == 0 {
		return 0, ErrStoreNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit store deletion: %w", err)
	}
	return deleted, nil
}
