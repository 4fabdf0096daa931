package services

import (
	"errors"
	"testing"

	"salon_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCatalogServiceWithMock(t *testing.T) (CatalogService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	svc := NewCatalogService(repositories.NewServiceRepository(db), db)
	return svc, mock, func() { db.Close() }
}

func TestGetFullServicesStitchesByServiceID(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT service_id, name, description, is_active, category FROM service ORDER BY service_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "name", "description", "is_active", "category"}).
			AddRow(int64(1), "Haircut", nil, int64(1), "hair").
			AddRow(int64(2), "Manicure", "Full set", int64(1), nil))
	// Blocks come back in reverse order; stitching must key on service_id.
	mock.ExpectQuery(`SELECT block_extra_time_id, service_id, before_time, after_time FROM block_extra_time ORDER BY service_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"block_extra_time_id", "service_id", "before_time", "after_time"}).
			AddRow(int64(20), int64(2), nil, "00:10:00").
			AddRow(int64(10), int64(1), "00:05:00", nil))
	mock.ExpectQuery(`SELECT service_variant_id, service_id, price, duration FROM service_variant ORDER BY service_id ASC, service_variant_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"service_variant_id", "service_id", "price", "duration"}).
			AddRow(int64(100), int64(1), 40.0, "00:30:00").
			AddRow(int64(101), int64(1), 60.0, "01:00:00"))

	fullServices, err := svc.GetFullServices()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fullServices) != 2 {
		t.Fatalf("got %d services, want 2", len(fullServices))
	}
	if fullServices[0].BlockedTime.ID != 10 || fullServices[1].BlockedTime.ID != 20 {
		t.Errorf("blocked times paired wrongly: %+v / %+v", fullServices[0].BlockedTime, fullServices[1].BlockedTime)
	}
	if len(fullServices[0].Variants) != 2 {
		t.Errorf("got %d variants for service 1, want 2", len(fullServices[0].Variants))
	}
	if fullServices[1].Variants == nil || len(fullServices[1].Variants) != 0 {
		t.Errorf("expected empty variants slice for service 2, got %v", fullServices[1].Variants)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetFullServicesMissingBlockIsAnError(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT service_id, name, description, is_active, category FROM service ORDER BY service_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "name", "description", "is_active", "category"}).
			AddRow(int64(1), "Haircut", nil, int64(1), nil))
	mock.ExpectQuery(`SELECT block_extra_time_id, service_id, before_time, after_time FROM block_extra_time ORDER BY service_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"block_extra_time_id", "service_id", "before_time", "after_time"}))
	mock.ExpectQuery(`SELECT service_variant_id, service_id, price, duration FROM service_variant ORDER BY service_id ASC, service_variant_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"service_variant_id", "service_id", "price", "duration"}))

	_, err := svc.GetFullServices()
	if !errors.Is(err, ErrServiceMissingBlock) {
		t.Errorf("got error %v, want ErrServiceMissingBlock", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateServiceWritesAggregateInOneTransaction(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service \(name, description, is_active, category\)`).
		WithArgs("Coloring", nil, int64(1), "hair").
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(int64(12)))
	mock.ExpectQuery(`INSERT INTO block_extra_time \(service_id, before_time, after_time\)`).
		WithArgs(int64(12), "00:10:00", nil).
		WillReturnRows(sqlmock.NewRows([]string{"block_extra_time_id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO service_variant \(service_id, price, duration\)`).
		WithArgs(int64(12), 90.0, "01:30:00").
		WillReturnRows(sqlmock.NewRows([]string{"service_variant_id"}).AddRow(int64(40)))
	mock.ExpectQuery(`INSERT INTO service_variant \(service_id, price, duration\)`).
		WithArgs(int64(12), 120.0, "02:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"service_variant_id"}).AddRow(int64(41)))
	mock.ExpectCommit()

	category := "hair"
	created, err := svc.CreateService(GenerateServiceRequest{
		Name:       "Coloring",
		IsActive:   1,
		Category:   &category,
		BeforeTime: strPtr("00:10:00"),
		Variants: []GenerateVariantRequest{
			{Price: 90.0, Duration: strPtr("01:30:00")},
			{Price: 120.0, Duration: strPtr("02:00:00")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 12 {
		t.Errorf("got service ID %d, want 12", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateServiceRollsBackOnVariantFailure(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO service \(name, description, is_active, category\)`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(int64(12)))
	mock.ExpectQuery(`INSERT INTO block_extra_time \(service_id, before_time, after_time\)`).
		WillReturnRows(sqlmock.NewRows([]string{"block_extra_time_id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO service_variant \(service_id, price, duration\)`).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	_, err := svc.CreateService(GenerateServiceRequest{
		Name:     "Coloring",
		Variants: []GenerateVariantRequest{{Price: 90.0}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateFullServiceUnknownVariantAbortsTransaction(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE service SET name = \$1, description = \$2, is_active = \$3, category = \$4 WHERE service_id = \$5 RETURNING service_id`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(int64(7)))
	mock.ExpectQuery(`UPDATE service_variant SET service_id = \$1, price = \$2, duration = \$3 WHERE service_variant_id = \$4 RETURNING service_variant_id`).
		WillReturnRows(sqlmock.NewRows([]string{"service_variant_id"}))
	mock.ExpectRollback()

	_, err := svc.UpdateFullService(7, UpdateFullServiceRequest{
		Name:     "Haircut",
		Variants: []ExistingVariantRequest{{ServiceVariantID: 404, Price: 50.0}},
	})
	if !errors.Is(err, ErrServiceVariantNotFound) {
		t.Errorf("got error %v, want ErrServiceVariantNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteServiceRemovesDependentsFirst(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM service_variant WHERE service_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM block_extra_time WHERE service_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM service WHERE service_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := svc.DeleteService(7)
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

func TestDeleteServiceMissingService(t *testing.T) {
	svc, mock, closeDB := newCatalogServiceWithMock(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM service_variant WHERE service_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM block_extra_time WHERE service_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM service WHERE service_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.DeleteService(99)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("got error %v, want ErrServiceNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
