package models

// Staff represents an employee. The password column stores a bcrypt hash and
// is never serialized into API responses.
type Staff struct {
	ID            int64   `json:"staff_id" db:"staff_id"`
	FirstName     string  `json:"first_name" db:"first_name"`
	LastName      string  `json:"last_name" db:"last_name"`
	Password      string  `json:"-" db:"password"`
	Email         string  `json:"email" db:"email"`
	Phone         *string `json:"phone" db:"phone"`
	Access        *string `json:"access" db:"access"`
	CalendarColor *string `json:"calendar_color" db:"calendar_color"`
}

// BasicStaffInfo is the public projection of a staff member, without
// credentials or access level.
type BasicStaffInfo struct {
	ID            int64   `json:"staff_id" db:"staff_id"`
	FirstName     string  `json:"first_name" db:"first_name"`
	LastName      string  `json:"last_name" db:"last_name"`
	Email         string  `json:"email" db:"email"`
	Phone         *string `json:"phone" db:"phone"`
	CalendarColor *string `json:"calendar_color" db:"calendar_color"`
}

// StaffHours is one weekday's working hours for a staff member, seeded like
// StoreHours at creation time.
type StaffHours struct {
	ID        int64   `json:"staff_hours_id" db:"staff_hours_id"`
	StaffID   int64   `json:"staff_id" db:"staff_id"`
	DayOfWeek int64   `json:"day_of_week" db:"day_of_week"`
	StartTime *string `json:"start_time" db:"start_time"`
	EndTime   *string `json:"end_time" db:"end_time"`
}

// StaffService is the join row assigning a staff member to one variant of a
// service.
type StaffService struct {
	ID               int64  `json:"staff_service_id" db:"staff_service_id"`
	StaffID          int64  `json:"staff_id" db:"staff_id"`
	ServiceID        int64  `json:"service_id" db:"service_id"`
	ServiceVariantID int64  `json:"service_variant_id" db:"service_variant_id"`
	IsActive         *int64 `json:"is_active" db:"is_active"`
}

// StaffWithHours pairs a staff member with their hours rows.
type StaffWithHours struct {
	Staff Staff        `json:"staff"`
	Hours []StaffHours `json:"hours"`
}

// StaffWithServices is the aggregate of a staff member and the services they
// are assigned to. Each FullService carries only the assigned variant.
type StaffWithServices struct {
	Staff    Staff         `json:"staff"`
	Services []FullService `json:"services"`
}
