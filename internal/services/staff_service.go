package services

import (
	"database/sql"
	"errors"
	"fmt"

	"salon_backend/internal/models"
	"salon_backend/internal/repositories"
	"salon_backend/pkg/utils"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound           = errors.New("staff member not found")
	ErrStaffHoursNotFound      = errors.New("staff hours row not found")
	ErrStaffAssignmentNotFound = errors.New("staff service assignment not found")
)

// --- Staff DTOs ---

type CreateStaffRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Password      string  `json:"password" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Phone         *string `json:"phone"`
	Access        *string `json:"access"`
	CalendarColor *string `json:"calendar_color"`
}

// StaffHoursRequest carries one weekday's working hours. In the bulk update
// the row is matched by (staff_id, day_of_week).
type StaffHoursRequest struct {
	StaffID   int64   `json:"staff_id"`
	DayOfWeek int64   `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// StaffServiceRequest assigns a staff member to one service variant. The
// service id is resolved from the variant, not taken from the client.
type StaffServiceRequest struct {
	StaffID          int64 `json:"staff_id"`
	ServiceVariantID int64 `json:"service_variant_id"`
}

// --- StaffService Interface ---
type StaffService interface {
	GetStaff() ([]models.Staff, error)
	GetStaffMember(staffID int64) (*models.Staff, error)
	GetStaffBasic(staffID int64) (*models.BasicStaffInfo, error)
	GetAllStaffHours() ([]models.StaffWithHours, error)
	GetStaffHours(staffID int64) (*models.StaffWithHours, error)
	GetStaffServices(staffID int64) (*models.StaffWithServices, error)
	GetStaffWithService(serviceID int64) ([]models.StaffService, error)
	CreateStaff(req CreateStaffRequest) (*models.Staff, error)
	AddStaffService(req StaffServiceRequest) (*models.StaffService, error)
	UpdateStaff(staffID int64, req CreateStaffRequest) (*models.Staff, error)
	UpdateStaffHour(hourID int64, req StaffHoursRequest) (*models.StaffHours, error)
	UpdateStaffHours(reqs []StaffHoursRequest) error
	UpdateStaffServices(staffID int64, reqs []StaffServiceRequest) error
	DeleteStaff(staffID int64) (int64, error)
	DeleteStaffService(assignmentID int64) (int64, error)
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo   repositories.StaffRepository
	serviceRepo repositories.ServiceRepository
	db          *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(sr repositories.StaffRepository, svr repositories.ServiceRepository, db *sql.DB) StaffService {
	return &staffService{
		staffRepo:   sr,
		serviceRepo: svr,
		db:          db,
	}
}

func (s *staffService) GetStaff() ([]models.Staff, error) {
	staffList, err := s.staffRepo.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return staffList, nil
}

func (s *staffService) GetStaffMember(staffID int64) (*models.Staff, error) {
	staff, err := s.staffRepo.GetStaffByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffBasic(staffID int64) (*models.BasicStaffInfo, error) {
	info, err := s.staffRepo.GetStaffBasicByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get basic staff info: %w", err)
	}
	return info, nil
}

// GetAllStaffHours pairs every staff member with their hours rows, keyed by
// staff id.
func (s *staffService) GetAllStaffHours() ([]models.StaffWithHours, error) {
	staffList, err := s.staffRepo.GetStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff for hours listing: %w", err)
	}

	allHours, err := s.staffRepo.GetAllStaffHours()
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for hours listing: %w", err)
	}

	hoursByStaff := make(map[int64][]models.StaffHours, len(staffList))
	for _, hour := range allHours {
		hoursByStaff[hour.StaffID] = append(hoursByStaff[hour.StaffID], hour)
	}

	result := make([]models.StaffWithHours, 0, len(staffList))
	for _, staff := range staffList {
		hours := hoursByStaff[staff.ID]
		if hours == nil {
			hours = []models.StaffHours{}
		}
		result = append(result, models.StaffWithHours{Staff: staff, Hours: hours})
	}
	return result, nil
}

func (s *staffService) GetStaffHours(staffID int64) (*models.StaffWithHours, error) {
	staff, err := s.staffRepo.GetStaffByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member for hours: %w", err)
	}

	hours, err := s.staffRepo.GetStaffHoursByStaff(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for staff member: %w", err)
	}

	return &models.StaffWithHours{Staff: *staff, Hours: hours}, nil
}

// GetStaffServices assembles the staff member's assigned services. For each
// assignment row it loads the variant, the service and its blocked time, and
// builds a FullService carrying only the assigned variant.
func (s *staffService) GetStaffServices(staffID int64) (*models.StaffWithServices, error) {
	staff, err := s.staffRepo.GetStaffByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member for services: %w", err)
	}

	assignments, err := s.staffRepo.GetStaffServices(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments for staff member: %w", err)
	}

	fullServices := make([]models.FullService, 0, len(assignments))
	for _, assignment := range assignments {
		variant, err := s.serviceRepo.GetServiceVariantByID(assignment.ServiceVariantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get variant %d for assignment %d: %w",
				assignment.ServiceVariantID, assignment.ID, err)
		}

		service, err := s.serviceRepo.GetServiceByID(variant.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to get service %d for assignment %d: %w",
				variant.ServiceID, assignment.ID, err)
		}

		block, err := s.serviceRepo.GetBlockTimeByService(service.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get blocked time for service %d: %w", service.ID, err)
		}

		fullServices = append(fullServices, models.FullService{
			Service:     *service,
			BlockedTime: *block,
			Variants:    []models.ServiceVariant{*variant},
		})
	}

	return &models.StaffWithServices{Staff: *staff, Services: fullServices}, nil
}

func (s *staffService) GetStaffWithService(serviceID int64) ([]models.StaffService, error) {
	assignments, err := s.staffRepo.GetStaffByServiceID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff for service: %w", err)
	}
	return assignments, nil
}

// CreateStaff hashes the password, inserts the staff row and seeds the seven
// hours rows in a single transaction.
func (s *staffService) CreateStaff(req CreateStaffRequest) (*models.Staff, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash staff password: %w", err)
	}

	staff := &models.Staff{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      hashed,
		Email:         req.Email,
		Phone:         req.Phone,
		Access:        req.Access,
		CalendarColor: req.CalendarColor,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for staff creation: %w", err)
	}
	defer tx.Rollback()

	created, err := s.staffRepo.CreateStaff(tx, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}

	if err := s.staffRepo.SeedStaffHours(tx, created.ID); err != nil {
		return nil, fmt.Errorf("failed to seed staff hours: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit staff creation: %w", err)
	}
	return created, nil
}

// AddStaffService inserts one assignment row with is_active set. The service
// id comes from the variant row; duplicate assignments are not prevented.
func (s *staffService) AddStaffService(req StaffServiceRequest) (*models.StaffService, error) {
	variant, err := s.serviceRepo.GetServiceVariantByID(req.ServiceVariantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceVariantNotFound
		}
		return nil, fmt.Errorf("failed to resolve variant for assignment: %w", err)
	}

	active := int64(1)
	assignment := &models.StaffService{
		StaffID:          req.StaffID,
		ServiceID:        variant.ServiceID,
		ServiceVariantID: variant.ID,
		IsActive:         &active,
	}

	created, err := s.staffRepo.CreateStaffService(s.db, assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment in repository: %w", err)
	}
	return created, nil
}

// UpdateStaff replaces every staff column, hashing the incoming password
// before storage.
func (s *staffService) UpdateStaff(staffID int64, req CreateStaffRequest) (*models.Staff, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash staff password: %w", err)
	}

	staff := &models.Staff{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      hashed,
		Email:         req.Email,
		Phone:         req.Phone,
		Access:        req.Access,
		CalendarColor: req.CalendarColor,
	}

	updated, err := s.staffRepo.UpdateStaff(s.db, staffID, staff)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to update staff member in repository: %w", err)
	}
	return updated, nil
}

func (s *staffService) UpdateStaffHour(hourID int64, req StaffHoursRequest) (*models.StaffHours, error) {
	hour := &models.StaffHours{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	updated, err := s.staffRepo.UpdateStaffHour(s.db, hourID, hour)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffHoursNotFound
		}
		return nil, fmt.Errorf("failed to update staff hours in repository: %w", err)
	}
	return updated, nil
}

// UpdateStaffHours applies a batch of per-day updates matched by
// (staff_id, day_of_week) in one transaction. Any non-matching entry aborts
// the whole batch.
func (s *staffService) UpdateStaffHours(reqs []StaffHoursRequest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for bulk hours update: %w", err)
	}
	defer tx.Rollback()

	for _, req := range reqs {
		err := s.staffRepo.UpdateStaffHourByDay(tx, req.StaffID, req.DayOfWeek, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: staff %d day %d", ErrStaffHoursNotFound, req.StaffID, req.DayOfWeek)
			}
			return fmt.Errorf("failed to update hours for staff %d day %d: %w", req.StaffID, req.DayOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk hours update: %w", err)
	}
	return nil
}

// UpdateStaffServices replaces the staff member's assignments: every row for
// the staff id is deleted and the new list inserted, in one transaction.
func (s *staffService) UpdateStaffServices(staffID int64, reqs []StaffServiceRequest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for assignment replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.staffRepo.DeleteStaffServicesByStaff(tx, staffID); err != nil {
		return fmt.Errorf("failed to clear assignments for staff %d: %w", staffID, err)
	}

	active := int64(1)
	for _, req := range reqs {
		variant, err := s.serviceRepo.GetServiceVariantByID(req.ServiceVariantID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: variant %d", ErrServiceVariantNotFound, req.ServiceVariantID)
			}
			return fmt.Errorf("failed to resolve variant %d: %w", req.ServiceVariantID, err)
		}

		isActive := active
		assignment := &models.StaffService{
			StaffID:          staffID,
			ServiceID:        variant.ServiceID,
			ServiceVariantID: variant.ID,
			IsActive:         &isActive,
		}
		if _, err := s.staffRepo.CreateStaffService(tx, assignment); err != nil {
			return fmt.Errorf("failed to insert assignment for staff %d: %w", staffID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignment replace: %w", err)
	}
	return nil
}

// DeleteStaff removes the hours rows and the staff row in one transaction
// and reports the staff-row deletion count.
func (s *staffService) DeleteStaff(staffID int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for staff deletion: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.staffRepo.DeleteStaffHoursByStaff(tx, staffID); err != nil {
		return 0, fmt.Errorf("failed to delete staff hours: %w", err)
	}

	deleted, err := s.staffRepo.DeleteStaff(tx, staffID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete staff member: %w", err)
	}
	if deleted == 0 {
		return 0, ErrStaffNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit staff deletion: %w", err)
	}
	return deleted, nil
}

func (s *staffService) DeleteStaffService(assignmentID int64) (int64, error) {
	deleted, err := s.staffRepo.DeleteStaffService(s.db, assignmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assignment: %w", err)
	}
	if deleted == 0 {
		return 0, ErrStaffAssignmentNotFound
	}
	return deleted, nil
}
