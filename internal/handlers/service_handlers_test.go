package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salon_backend/internal/models"
	"salon_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type fakeCatalogService struct {
	getFullServicesFn      func() ([]models.FullService, error)
	getFullServiceFn       func(serviceID int64) (*models.FullService, error)
	createServiceFn        func(req services.GenerateServiceRequest) (*models.Service, error)
	updateServiceFn        func(serviceID int64, req services.ServiceUpdateRequest) (*models.Service, error)
	updateServiceVariantFn func(variantID int64, req services.VariantUpdateRequest) (*models.ServiceVariant, error)
	updateBlockTimeFn      func(serviceID int64, req services.BlockTimeRequest) (*models.BlockExtraTime, error)
	updateFullServiceFn    func(serviceID int64, req services.UpdateFullServiceRequest) (*models.Service, error)
	deleteServiceFn        func(serviceID int64) (int64, error)
}

func (f *fakeCatalogService) GetFullServices() ([]models.FullService, error) {
	return f.getFullServicesFn()
}
func (f *fakeCatalogService) GetFullService(serviceID int64) (*models.FullService, error) {
	return f.getFullServiceFn(serviceID)
}
func (f *fakeCatalogService) CreateService(req services.GenerateServiceRequest) (*models.Service, error) {
	return f.createServiceFn(req)
}
func (f *fakeCatalogService) UpdateService(serviceID int64, req services.ServiceUpdateRequest) (*models.Service, error) {
	return f.updateServiceFn(serviceID, req)
}
func (f *fakeCatalogService) UpdateServiceVariant(variantID int64, req services.VariantUpdateRequest) (*models.ServiceVariant, error) {
	return f.updateServiceVariantFn(variantID, req)
}
func (f *fakeCatalogService) UpdateBlockTime(serviceID int64, req services.BlockTimeRequest) (*models.BlockExtraTime, error) {
	return f.updateBlockTimeFn(serviceID, req)
}
func (f *fakeCatalogService) UpdateFullService(serviceID int64, req services.UpdateFullServiceRequest) (*models.Service, error) {
	return f.updateFullServiceFn(serviceID, req)
}
func (f *fakeCatalogService) DeleteService(serviceID int64) (int64, error) {
	return f.deleteServiceFn(serviceID)
}

func newServiceTestRouter(svc services.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewServiceHandler(svc)
	engine.GET("/full_service/:service_id", h.GetFullService)
	engine.POST("/service", h.CreateService)
	engine.PUT("/full_service/:service_id", h.UpdateFullService)
	engine.DELETE("/service/:service_id", h.DeleteService)
	return engine
}

func TestGetFullServiceOK(t *testing.T) {
	duration := "00:30:00"
	svc := &fakeCatalogService{
		getFullServiceFn: func(serviceID int64) (*models.FullService, error) {
			return &models.FullService{
				Service:     models.Service{ID: serviceID, Name: "Haircut", IsActive: 1},
				BlockedTime: models.BlockExtraTime{ID: 2, ServiceID: serviceID},
				Variants: []models.ServiceVariant{
					{ID: 10, ServiceID: serviceID, Price: 40.0, Duration: &duration},
				},
			}, nil
		},
	}
	engine := newServiceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/full_service/7", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var full models.FullService
	if err := json.Unmarshal(w.Body.Bytes(), &full); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if full.Service.ID != 7 || len(full.Variants) != 1 {
		t.Errorf("got aggregate %+v, want service 7 with one variant", full)
	}
}

func TestGetFullServiceNotFoundMapsTo404(t *testing.T) {
	svc := &fakeCatalogService{
		getFullServiceFn: func(serviceID int64) (*models.FullService, error) {
			return nil, services.ErrServiceNotFound
		},
	}
	engine := newServiceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/full_service/99", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestCreateServiceReturns201(t *testing.T) {
	svc := &fakeCatalogService{
		createServiceFn: func(req services.GenerateServiceRequest) (*models.Service, error) {
			return &models.Service{ID: 12, Name: req.Name, IsActive: req.IsActive}, nil
		},
	}
	engine := newServiceTestRouter(svc)

	w := httptest.NewRecorder()
	body := `{"name":"Coloring","is_active":1,"before_time":"00:10:00","variants":[{"price":90,"duration":"01:30:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/service", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", w.Code)
	}
	var service models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &service); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if service.ID != 12 || service.Name != "Coloring" {
		t.Errorf("got service %+v, want ID=12 Name=Coloring", service)
	}
}

func TestUpdateFullServiceUnknownVariantMapsTo404(t *testing.T) {
	svc := &fakeCatalogService{
		updateFullServiceFn: func(serviceID int64, req services.UpdateFullServiceRequest) (*models.Service, error) {
			return nil, services.ErrServiceVariantNotFound
		},
	}
	engine := newServiceTestRouter(svc)

	w := httptest.NewRecorder()
	body := `{"name":"Haircut","variants":[{"service_variant_id":404,"price":50}]}`
	req := httptest.NewRequest(http.MethodPut, "/full_service/7", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestDeleteServiceReportsCount(t *testing.T) {
	svc := &fakeCatalogService{
		deleteServiceFn: func(serviceID int64) (int64, error) { return 1, nil },
	}
	engine := newServiceTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/service/7", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var payload map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if payload["deleted"] != 1 {
		t.Errorf("got deleted=%d, want 1", payload["deleted"])
	}
}
