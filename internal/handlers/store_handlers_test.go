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

type fakeStoreService struct {
	getStoresFn          func() ([]models.Store, error)
	getStoreFn           func(storeID int64) (*models.Store, error)
	getStoreInfoFn       func(storeID int64) (*models.StoreInfo, error)
	getAllStoreHoursFn   func() ([]models.StoreWithHours, error)
	getStoreHoursFn      func(storeID int64) (*models.StoreWithHours, error)
	getStoreAddressFn    func(storeID int64) (*models.StoreAddress, error)
	createStoreFn        func(req services.CreateStoreRequest) (*models.Store, error)
	createStoreAddressFn func(req services.StoreAddressRequest) (*models.StoreAddress, error)
	updateStoreFn        func(storeID int64, req services.CreateStoreRequest) (*models.Store, error)
	updateStoreAddressFn func(storeID int64, req services.StoreAddressRequest) (*models.StoreAddress, error)
	updateStoreHourFn    func(hourID int64, req services.StoreHoursRequest) (*models.StoreHours, error)
	updateStoreHoursFn   func(reqs []services.StoreHoursRequest) error
	deleteStoreFn        func(storeID int64) (int64, error)
}

func (f *fakeStoreService) GetStores() ([]models.Store, error) { return f.getStoresFn() }
func (f *fakeStoreService) GetStore(storeID int64) (*models.Store, error) {
	return f.getStoreFn(storeID)
}
func (f *fakeStoreService) GetStoreInfo(storeID int64) (*models.StoreInfo, error) {
	return f.getStoreInfoFn(storeID)
}
func (f *fakeStoreService) GetAllStoreHours() ([]models.StoreWithHours, error) {
	return f.getAllStoreHoursFn()
}
func (f *fakeStoreService) GetStoreHours(storeID int64) (*models.StoreWithHours, error) {
	return f.getStoreHoursFn(storeID)
}
func (f *fakeStoreService) GetStoreAddress(storeID int64) (*models.StoreAddress, error) {
	return f.getStoreAddressFn(storeID)
}
func (f *fakeStoreService) CreateStore(req services.CreateStoreRequest) (*models.Store, error) {
	return f.createStoreFn(req)
}
func (f *fakeStoreService) CreateStoreAddress(req services.StoreAddressRequest) (*models.StoreAddress, error) {
	return f.createStoreAddressFn(req)
}
func (f *fakeStoreService) UpdateStore(storeID int64, req services.CreateStoreRequest) (*models.Store, error) {
	return f.updateStoreFn(storeID, req)
}
func (f *fakeStoreService) UpdateStoreAddress(storeID int64, req services.StoreAddressRequest) (*models.StoreAddress, error) {
	return f.updateStoreAddressFn(storeID, req)
}
func (f *fakeStoreService) UpdateStoreHour(hourID int64, req services.StoreHoursRequest) (*models.StoreHours, error) {
	return f.updateStoreHourFn(hourID, req)
}
func (f *fakeStoreService) UpdateStoreHours(reqs []services.StoreHoursRequest) error {
	return f.updateStoreHoursFn(reqs)
}
func (f *fakeStoreService) DeleteStore(storeID int64) (int64, error) {
	return f.deleteStoreFn(storeID)
}

func newStoreTestRouter(svc services.StoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewStoreHandler(svc)
	engine.GET("/store/:store_id", h.GetStoreByID)
	engine.POST("/store", h.CreateStore)
	engine.PUT("/store_hours", h.UpdateStoreHours)
	engine.DELETE("/store/:store_id", h.DeleteStore)
	return engine
}

func TestGetStoreByIDOK(t *testing.T) {
	svc := &fakeStoreService{
		getStoreFn: func(storeID int64) (*models.Store, error) {
			return &models.Store{ID: storeID, Name: "Downtown"}, nil
		},
	}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/3", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var store models.Store
	if err := json.Unmarshal(w.Body.Bytes(), &store); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if store.ID != 3 || store.Name != "Downtown" {
		t.Errorf("got store %+v, want ID=3 Name=Downtown", store)
	}
}

func TestGetStoreByIDNotFoundMapsTo404(t *testing.T) {
	svc := &fakeStoreService{
		getStoreFn: func(storeID int64) (*models.Store, error) {
			return nil, services.ErrStoreNotFound
		},
	}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/99", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestGetStoreByIDBadIDMapsTo400(t *testing.T) {
	svc := &fakeStoreService{}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/abc", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", w.Code)
	}
}

func TestCreateStoreReturns201(t *testing.T) {
	svc := &fakeStoreService{
		createStoreFn: func(req services.CreateStoreRequest) (*models.Store, error) {
			return &models.Store{ID: 1, Name: req.Name}, nil
		},
	}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store", strings.NewReader(`{"name":"Uptown"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", w.Code)
	}
}

func TestCreateStoreMissingNameMapsTo400(t *testing.T) {
	svc := &fakeStoreService{}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", w.Code)
	}
}

func TestUpdateStoreHoursMissingRowMapsTo404(t *testing.T) {
	svc := &fakeStoreService{
		updateStoreHoursFn: func(reqs []services.StoreHoursRequest) error {
			return services.ErrStoreHoursNotFound
		},
	}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	body := `[{"store_id":1,"day_of_week":9,"start_time":"09:00","end_time":"17:00"}]`
	req := httptest.NewRequest(http.MethodPut, "/store_hours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestDeleteStoreReportsCount(t *testing.T) {
	svc := &fakeStoreService{
		deleteStoreFn: func(storeID int64) (int64, error) { return 1, nil },
	}
	engine := newStoreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/store/3", nil)
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
