package models

// Store represents a physical store location.
type Store struct {
	ID   int64  `json:"store_id" db:"store_id"`
	Name string `json:"name" db:"name"`
}

// StoreAddress holds the contact details for a store. One row is expected
// per store, created separately after the store itself.
type StoreAddress struct {
	ID      int64  `json:"store_address_id" db:"store_address_id"`
	StoreID int64  `json:"store_id" db:"store_id"`
	Street  string `json:"street_address" db:"street_address"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	Zip     int64  `json:"zip" db:"zip"`
	Phone   string `json:"phone" db:"phone"`
	Email   string `json:"email" db:"email"`
}

// StoreHours is one weekday's opening hours for a store. Seven rows
// (day_of_week 0..6) are seeded when the store is created. Times are carried
// as "HH:MM[:SS]" strings and are NULL until set.
type StoreHours struct {
	ID        int64   `json:"store_hours_id" db:"store_hours_id"`
	StoreID   int64   `json:"store_id" db:"store_id"`
	DayOfWeek int64   `json:"day_of_week" db:"day_of_week"`
	StartTime *string `json:"start_time" db:"start_time"`
	EndTime   *string `json:"end_time" db:"end_time"`
}

// StoreInfo is the aggregate view of a single store: identity, address and
// the full week of opening hours.
type StoreInfo struct {
	Name    string       `json:"name"`
	Address StoreAddress `json:"address"`
	Hours   []StoreHours `json:"hours"`
}

// StoreWithHours pairs a store with its hours rows, used by the
// all-stores-hours listing.
type StoreWithHours struct {
	Store Store        `json:"store"`
	Hours []StoreHours `json:"hours"`
}
