package models

// Service is a catalog entry. is_active is a plain flag; list and find
// queries do not filter by it.
type Service struct {
	ID          int64   `json:"service_id" db:"service_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	IsActive    int64   `json:"is_active" db:"is_active"`
	Category    *string `json:"category" db:"category"`
}

// ServiceVariant is one price/duration option of a service.
type ServiceVariant struct {
	ID        int64   `json:"service_variant_id" db:"service_variant_id"`
	ServiceID int64   `json:"service_id" db:"service_id"`
	Price     float64 `json:"price" db:"price"`
	Duration  *string `json:"duration" db:"duration"`
}

// BlockExtraTime is the buffer blocked before/after appointments for a
// service. Exactly one row per service, created with it.
type BlockExtraTime struct {
	ID         int64   `json:"block_extra_time_id" db:"block_extra_time_id"`
	ServiceID  int64   `json:"service_id" db:"service_id"`
	BeforeTime *string `json:"before_time" db:"before_time"`
	AfterTime  *string `json:"after_time" db:"after_time"`
}

// FullService is the aggregate view of a service with its blocked time and
// variants.
type FullService struct {
	Service     Service          `json:"service"`
	BlockedTime BlockExtraTime   `json:"blocked_time"`
	Variants    []ServiceVariant `json:"variants"`
}
