package router

import (
	"database/sql"

	"salon_backend/internal/handlers"
	"salon_backend/internal/repositories"
	"salon_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes repositories, services and handlers, then registers every
// route on the engine.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	storeRepo := repositories.NewStoreRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)

	// Services
	storeService := services.NewStoreService(storeRepo, db)
	staffService := services.NewStaffService(staffRepo, serviceRepo, db)
	catalogService := services.NewCatalogService(serviceRepo, db)

	// Handlers
	storeHandler := handlers.NewStoreHandler(storeService)
	staffHandler := handlers.NewStaffHandler(staffService)
	serviceHandler := handlers.NewServiceHandler(catalogService)

	registerStoreRoutes(engine, storeHandler)
	registerStaffRoutes(engine, staffHandler)
	registerServiceRoutes(engine, serviceHandler)
}

func registerStoreRoutes(engine *gin.Engine, h *handlers.StoreHandler) {
	engine.GET("/store", h.GetStores)
	engine.GET("/store/:store_id", h.GetStoreByID)
	engine.GET("/store_info/:store_id", h.GetStoreInfo)
	engine.GET("/store_hours", h.GetAllStoreHours)
	engine.GET("/store_hours/:store_id", h.GetStoreHours)
	engine.GET("/store_address/:store_id", h.GetStoreAddress)
	engine.POST("/store", h.CreateStore)
	engine.POST("/store_address", h.CreateStoreAddress)
	engine.PUT("/store/:store_id", h.UpdateStore)
	engine.PUT("/store_address/:store_id", h.UpdateStoreAddress)
	engine.PUT("/store_hours", h.UpdateStoreHours)
	engine.PUT("/store_hours/:store_hour_id", h.UpdateStoreHour)
	engine.DELETE("/store/:store_id", h.DeleteStore)
}

func registerStaffRoutes(engine *gin.Engine, h *handlers.StaffHandler) {
	engine.GET("/staff", h.GetStaff)
	engine.GET("/staff/:staff_id", h.GetStaffByID)
	engine.GET("/staff_basic/:staff_id", h.GetStaffBasic)
	engine.GET("/staff_hours", h.GetAllStaffHours)
	engine.GET("/staff_hours/:staff_id", h.GetStaffHours)
	engine.GET("/staff_services/:staff_id", h.GetStaffServices)
	engine.GET("/staff_with_service/:service_id", h.GetStaffWithService)
	engine.POST("/staff", h.CreateStaff)
	engine.POST("/staff_services", h.AddStaffService)
	engine.PUT("/staff/:staff_id", h.UpdateStaff)
	engine.PUT("/staff_hours", h.UpdateStaffHours)
	engine.PUT("/staff_hours/:staff_hour_id", h.UpdateStaffHour)
	engine.PUT("/staff_services/:staff_id", h.UpdateStaffServices)
	engine.DELETE("/staff/:staff_id", h.DeleteStaff)
	engine.DELETE("/staff_services/:staff_service_id", h.DeleteStaffService)
}

func registerServiceRoutes(engine *gin.Engine, h *handlers.ServiceHandler) {
	engine.GET("/service", h.GetFullServices)
	engine.GET("/service/:service_id", h.GetFullService)
	engine.GET("/full_service/:service_id", h.GetFullService)
	engine.POST("/service", h.CreateService)
	engine.PUT("/service/:service_id", h.UpdateService)
	engine.PUT("/full_service/:service_id", h.UpdateFullService)
	engine.PUT("/service_variant/:service_variant_id", h.UpdateServiceVariant)
	engine.PUT("/block_time/:service_id", h.UpdateBlockTime)
	engine.DELETE("/service/:service_id", h.DeleteService)
}
