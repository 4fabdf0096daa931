package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func strPtr(s string) *string {
	return &s
}

func TestGetStoreByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	rows := sqlmock.NewRows([]string{"store_id", "name"}).AddRow(int64(3), "Downtown")
	mock.ExpectQuery(`SELECT store_id, name FROM store WHERE store_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	store, err := repo.GetStoreByID(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ID != 3 || store.Name != "Downtown" {
		t.Errorf("got store %+v, want ID=3 Name=Downtown", store)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetStoreByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectQuery(`SELECT store_id, name FROM store WHERE store_id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"store_id", "name"}))

	_, err = repo.GetStoreByID(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateStoreReturnsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectQuery(`INSERT INTO store \(name\) VALUES \(\$1\) RETURNING store_id`).
		WithArgs("Uptown").
		WillReturnRows(sqlmock.NewRows([]string{"store_id"}).AddRow(int64(7)))

	store, err := repo.CreateStore(db, "Uptown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ID != 7 || store.Name != "Uptown" {
		t.Errorf("got store %+v, want ID=7 Name=Uptown", store)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStoreReturnsUpdatedName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectQuery(`UPDATE store SET name = \$1 WHERE store_id = \$2 RETURNING store_id`).
		WithArgs("Renamed", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"store_id"}).AddRow(int64(7)))

	store, err := repo.UpdateStore(db, 7, "Renamed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ID != 7 || store.Name != "Renamed" {
		t.Errorf("got store %+v, want ID=7 Name=Renamed", store)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedStoreHoursInsertsSevenDays(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectExec(`INSERT INTO store_hours \(store_id, day_of_week, start_time, end_time\) VALUES`).
		WithArgs(
			int64(5), 0, int64(5), 1, int64(5), 2, int64(5), 3,
			int64(5), 4, int64(5), 5, int64(5), 6,
		).
		WillReturnResult(sqlmock.NewResult(0, 7))

	if err := repo.SeedStoreHours(db, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStoreHourByDayNoMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectExec(`UPDATE store_hours SET start_time = \$1, end_time = \$2 WHERE store_id = \$3 AND day_of_week = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStoreHourByDay(db, 1, 9, strPtr("09:00"), strPtr("17:00"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetStoreHoursByStoreScansNullTimes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	rows := sqlmock.NewRows([]string{"store_hours_id", "store_id", "day_of_week", "start_time", "end_time"}).
		AddRow(int64(1), int64(2), int64(0), "09:00:00", "17:00:00").
		AddRow(int64(2), int64(2), int64(1), nil, nil)
	mock.ExpectQuery(`SELECT store_hours_id, store_id, day_of_week, start_time, end_time FROM store_hours WHERE store_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	hours, err := repo.GetStoreHoursByStore(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hours) != 2 {
		t.Fatalf("got %d hours rows, want 2", len(hours))
	}
	if hours[0].StartTime == nil || *hours[0].StartTime != "09:00:00" {
		t.Errorf("got start time %v, want 09:00:00", hours[0].StartTime)
	}
	if hours[1].StartTime != nil || hours[1].EndTime != nil {
		t.Errorf("expected nil times on closed day, got %v / %v", hours[1].StartTime, hours[1].EndTime)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteStoreReportsRowCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewStoreRepository(db)

	mock.ExpectExec(`DELETE FROM store WHERE store_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteStore(db, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("got %d deleted rows, want 1", deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
