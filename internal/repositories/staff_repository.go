package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"salon_backend/internal/models"
)

// StaffRepository defines the interface for staff, working-hours and
// service-assignment database operations.
type StaffRepository interface {
	// Staff methods
	GetStaff() ([]models.Staff, error)
	GetStaffByID(id int64) (*models.Staff, error)
	GetStaffBasicByID(id int64) (*models.BasicStaffInfo, error)
	CreateStaff(executor SQLExecutor, staff *models.Staff) (*models.Staff, error)
	UpdateStaff(executor SQLExecutor, id int64, staff *models.Staff) (*models.Staff, error)
	DeleteStaff(executor SQLExecutor, id int64) (int64, error)

	// Hours methods
	GetAllStaffHours() ([]models.StaffHours, error)
	GetStaffHoursByStaff(staffID int64) ([]models.StaffHours, error)
	SeedStaffHours(executor SQLExecutor, staffID int64) error
	UpdateStaffHour(executor SQLExecutor, hourID int64, hour *models.StaffHours) (*models.StaffHours, error)
	UpdateStaffHourByDay(executor SQLExecutor, staffID, dayOfWeek int64, startTime, endTime *string) error
	DeleteStaffHoursByStaff(executor SQLExecutor, staffID int64) (int64, error)

	// Service assignment methods
	GetStaffServices(staffID int64) ([]models.StaffService, error)
	GetStaffByServiceID(serviceID int64) ([]models.StaffService, error)
	CreateStaffService(executor SQLExecutor, assignment *models.StaffService) (*models.StaffService, error)
	DeleteStaffServicesByStaff(executor SQLExecutor, staffID int64) (int64, error)
	DeleteStaffService(executor SQLExecutor, assignmentID int64) (int64, error)
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

// --- Staff Methods ---

func scanStaffRow(row scanner) (*models.Staff, error) {
	var staff models.Staff
	var phone, access, calendarColor sql.NullString

	err := row.Scan(
		&staff.ID, &staff.FirstName, &staff.LastName, &staff.Password,
		&staff.Email, &phone, &access, &calendarColor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
	}

	staff.Phone = fromNullString(phone)
	staff.Access = fromNullString(access)
	staff.CalendarColor = fromNullString(calendarColor)
	return &staff, nil
}

func (r *staffRepository) GetStaff() ([]models.Staff, error) {
	staffList := []models.Staff{}
	query := `SELECT staff_id, first_name, last_name, password, email, phone, access, calendar_color
	          FROM staff
	          ORDER BY staff_id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		staff, err := scanStaffRow(rows)
		if err != nil {
			return nil, err
		}
		staffList = append(staffList, *staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff rows: %v", ErrDatabaseError, err)
	}
	return staffList, nil
}

func (r *staffRepository) GetStaffByID(id int64) (*models.Staff, error) {
	query := `SELECT staff_id, first_name, last_name, password, email, phone, access, calendar_color
	          FROM staff
	          WHERE staff_id = $1`
	return scanStaffRow(r.db.QueryRow(query, id))
}

func (r *staffRepository) GetStaffBasicByID(id int64) (*models.BasicStaffInfo, error) {
	var info models.BasicStaffInfo
	var phone, calendarColor sql.NullString

	query := `SELECT staff_id, first_name, last_name, email, phone, calendar_color
	          FROM staff
	          WHERE staff_id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&info.ID, &info.FirstName, &info.LastName, &info.Email, &phone, &calendarColor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting basic staff info for ID %d: %v", ErrDatabaseError, id, err)
	}

	info.Phone = fromNullString(phone)
	info.CalendarColor = fromNullString(calendarColor)
	return &info, nil
}

func (r *staffRepository) CreateStaff(executor SQLExecutor, staff *models.Staff) (*models.Staff, error) {
	query := `INSERT INTO staff (first_name, last_name, password, email, phone, access, calendar_color)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING staff_id`

	err := executor.QueryRow(query,
		staff.FirstName, staff.LastName, staff.Password, staff.Email,
		toNullString(staff.Phone), toNullString(staff.Access), toNullString(staff.CalendarColor),
	).Scan(&staff.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating staff member")
	}
	return staff, nil
}

func (r *staffRepository) UpdateStaff(executor SQLExecutor, id int64, staff *models.Staff) (*models.Staff, error) {
	query := `UPDATE staff SET
	            first_name = $1, last_name = $2, password = $3, email = $4,
	            phone = $5, access = $6, calendar_color = $7
	          WHERE staff_id = $8
	          RETURNING staff_id`

	err := executor.QueryRow(query,
		staff.FirstName, staff.LastName, staff.Password, staff.Email,
		toNullString(staff.Phone), toNullString(staff.Access), toNullString(staff.CalendarColor), id,
	).Scan(&staff.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	return staff, nil
}

func (r *staffRepository) DeleteStaff(executor SQLExecutor, id int64) (int64, error) {
	query := `DELETE FROM staff WHERE staff_id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Hours Methods ---

func scanStaffHours(rows *sql.Rows) ([]models.StaffHours, error) {
	hours := []models.StaffHours{}
	for rows.Next() {
		var hour models.StaffHours
		var startTime, endTime sql.NullString
		if err := rows.Scan(&hour.ID, &hour.StaffID, &hour.DayOfWeek, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("%w: scanning staff hours: %v", ErrDatabaseError, err)
		}
		hour.StartTime = fromNullString(startTime)
		hour.EndTime = fromNullString(endTime)
		hours = append(hours, hour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff hours rows: %v", ErrDatabaseError, err)
	}
	return hours, nil
}

func (r *staffRepository) GetAllStaffHours() ([]models.StaffHours, error) {
	query := `SELECT staff_hours_id, staff_id, day_of_week, start_time, end_time
	          FROM staff_hours
	          ORDER BY staff_id ASC, day_of_week ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all staff hours: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	return scanStaffHours(rows)
}

func (r *staffRepository) GetStaffHoursByStaff(staffID int64) ([]models.StaffHours, error) {
	query := `SELECT staff_hours_id, staff_id, day_of_week, start_time, end_time
	          FROM staff_hours
	          WHERE staff_id = $1
	          ORDER BY day_of_week ASC`

	rows, err := r.db.Query(query, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying hours for staff ID %d: %v", ErrDatabaseError, staffID, err)
	}
	defer rows.Close()
	return scanStaffHours(rows)
}

// SeedStaffHours inserts the seven weekday rows for a freshly created staff
// member in one batch, with both times NULL.
func (r *staffRepository) SeedStaffHours(executor SQLExecutor, staffID int64) error {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO staff_hours (staff_id, day_of_week, start_time, end_time) VALUES `)

	var values []string
	var args []interface{}
	argCount := 1
	for day := 0; day < 7; day++ {
		values = append(values, fmt.Sprintf("($%d, $%d, NULL, NULL)", argCount, argCount+1))
		args = append(args, staffID, day)
		argCount += 2
	}
	queryBuilder.WriteString(strings.Join(values, ", "))

	if _, err := executor.Exec(queryBuilder.String(), args...); err != nil {
		return wrapWriteError(err, fmt.Sprintf("seeding hours for staff ID %d", staffID))
	}
	return nil
}

func (r *staffRepository) UpdateStaffHour(executor SQLExecutor, hourID int64, hour *models.StaffHours) (*models.StaffHours, error) {
	query := `UPDATE staff_hours SET day_of_week = $1, start_time = $2, end_time = $3
	          WHERE staff_hours_id = $4
	          RETURNING staff_hours_id, staff_id`

	err := executor.QueryRow(query,
		hour.DayOfWeek, toNullString(hour.StartTime), toNullString(hour.EndTime), hourID,
	).Scan(&hour.ID, &hour.StaffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating staff hours ID %d: %v", ErrDatabaseError, hourID, err)
	}
	return hour, nil
}

func (r *staffRepository) UpdateStaffHourByDay(executor SQLExecutor, staffID, dayOfWeek int64, startTime, endTime *string) error {
	query := `UPDATE staff_hours SET start_time = $1, end_time = $2
	          WHERE staff_id = $3 AND day_of_week = $4`

	result, err := executor.Exec(query, toNullString(startTime), toNullString(endTime), staffID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("%w: updating hours for staff ID %d day %d: %v", ErrDatabaseError, staffID, dayOfWeek, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffRepository) DeleteStaffHoursByStaff(executor SQLExecutor, staffID int64) (int64, error) {
	query := `DELETE FROM staff_hours WHERE staff_id = $1`
	result, err := executor.Exec(query, staffID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting hours for staff ID %d: %v", ErrDatabaseError, staffID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

// --- Service Assignment Methods ---

func scanStaffServices(rows *sql.Rows) ([]models.StaffService, error) {
	assignments := []models.StaffService{}
	for rows.Next() {
		var assignment models.StaffService
		var isActive sql.NullInt64
		err := rows.Scan(
			&assignment.ID, &assignment.StaffID, &assignment.ServiceID,
			&assignment.ServiceVariantID, &isActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning staff service assignment: %v", ErrDatabaseError, err)
		}
		if isActive.Valid {
			v := isActive.Int64
			assignment.IsActive = &v
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff service rows: %v", ErrDatabaseError, err)
	}
	return assignments, nil
}

func (r *staffRepository) GetStaffServices(staffID int64) ([]models.StaffService, error) {
	query := `SELECT staff_service_id, staff_id, service_id, service_variant_id, is_active
	          FROM staff_service
	          WHERE staff_id = $1
	          ORDER BY staff_service_id ASC`

	rows, err := r.db.Query(query, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying assignments for staff ID %d: %v", ErrDatabaseError, staffID, err)
	}
	defer rows.Close()
	return scanStaffServices(rows)
}

func (r *staffRepository) GetStaffByServiceID(serviceID int64) ([]models.StaffService, error) {
	query := `SELECT staff_service_id, staff_id, service_id, service_variant_id, is_active
	          FROM staff_service
	          WHERE service_id = $1
	          ORDER BY staff_service_id ASC`

	rows, err := r.db.Query(query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying assignments for service ID %d: %v", ErrDatabaseError, serviceID, err)
	}
	defer rows.Close()
	return scanStaffServices(rows)
}

func (r *staffRepository) CreateStaffService(executor SQLExecutor, assignment *models.StaffService) (*models.StaffService, error) {
	query := `INSERT INTO staff_service (staff_id, service_id, service_variant_id, is_active)
	          VALUES ($1, $2, $3, $4)
	          RETURNING staff_service_id`

	var isActive sql.NullInt64
	if assignment.IsActive != nil {
		isActive = sql.NullInt64{Int64: *assignment.IsActive, Valid: true}
	}

	err := executor.QueryRow(query,
		assignment.StaffID, assignment.ServiceID, assignment.ServiceVariantID, isActive,
	).Scan(&assignment.ID)
	if err != nil {
		return nil, wrapWriteError(err, "creating staff service assignment")
	}
	return assignment, nil
}

// DeleteStaffServicesByStaff removes every assignment belonging to the given
// staff member. The filter is the staff_id column, not the row's own id.
func (r *staffRepository) DeleteStaffServicesByStaff(executor SQLExecutor, staffID int64) (int64, error) {
	query := `DELETE FROM staff_service WHERE staff_id = $1`
	result, err := executor.Exec(query, staffID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting assignments for staff ID %d: %v", ErrDatabaseError, staffID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func (r *staffRepository) DeleteStaffService(executor SQLExecutor, assignmentID int64) (int64, error) {
	query := `DELETE FROM staff_service WHERE staff_service_id = $1`
	result, err := executor.Exec(query, assignmentID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting assignment ID %d: %v", ErrDatabaseError, assignmentID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
