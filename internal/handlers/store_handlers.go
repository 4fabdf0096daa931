package handlers

import (
	"errors"
	"net/http"

	"salon_backend/internal/services"
	"salon_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StoreHandler holds the store service.
type StoreHandler struct {
	storeService services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(ss services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: ss}
}

// GetStores handles fetching all stores.
func (h *StoreHandler) GetStores(c *gin.Context) {
	stores, err := h.storeService.GetStores()
	if err != nil {
		utils.LogError(err, "GetStores: Error from storeService.GetStores")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stores.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetStoreByID handles fetching a single store by ID.
func (h *StoreHandler) GetStoreByID(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	store, err := h.storeService.GetStore(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreByID: Error from storeService.GetStore")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, store)
}

// GetStoreInfo handles fetching the single-store aggregate view.
func (h *StoreHandler) GetStoreInfo(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	info, err := h.storeService.GetStoreInfo(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreInfo: Error from storeService.GetStoreInfo")
		if errors.Is(err, services.ErrStoreNotFound) || errors.Is(err, services.ErrStoreAddressNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store info not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store info.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetAllStoreHours handles fetching every store paired with its hours.
func (h *StoreHandler) GetAllStoreHours(c *gin.Context) {
	storeHours, err := h.storeService.GetAllStoreHours()
	if err != nil {
		utils.LogError(err, "GetAllStoreHours: Error from storeService.GetAllStoreHours")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store hours.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, storeHours)
}

// GetStoreHours handles fetching one store paired with its hours.
func (h *StoreHandler) GetStoreHours(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	storeHours, err := h.storeService.GetStoreHours(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreHours: Error from storeService.GetStoreHours")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, storeHours)
}

// GetStoreAddress handles fetching a store's address.
func (h *StoreHandler) GetStoreAddress(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	address, err := h.storeService.GetStoreAddress(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreAddress: Error from storeService.GetStoreAddress")
		if errors.Is(err, services.ErrStoreAddressNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store address not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store address.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, address)
}

// CreateStore handles the creation of a new store with its seeded hours.
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req services.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStore: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	store, err := h.storeService.CreateStore(req)
	if err != nil {
		utils.LogError(err, "CreateStore: Error from storeService.CreateStore")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create store.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, store)
}

// CreateStoreAddress handles the creation of a store address.
func (h *StoreHandler) CreateStoreAddress(c *gin.Context) {
	var req services.StoreAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStoreAddress: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	address, err := h.storeService.CreateStoreAddress(req)
	if err != nil {
		utils.LogError(err, "CreateStoreAddress: Error from storeService.CreateStoreAddress")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create store address.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, address)
}

// UpdateStore handles updating a store.
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	var req services.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStore: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	store, err := h.storeService.UpdateStore(storeID, req)
	if err != nil {
		utils.LogError(err, "UpdateStore: Error from storeService.UpdateStore")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found to update.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update store.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, store)
}

// UpdateStoreAddress handles updating a store's address.
func (h *StoreHandler) UpdateStoreAddress(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	var req services.StoreAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStoreAddress: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	address, err := h.storeService.UpdateStoreAddress(storeID, req)
	if err != nil {
		utils.LogError(err, "UpdateStoreAddress: Error from storeService.UpdateStoreAddress")
		if errors.Is(err, services.ErrStoreAddressNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store address not found to update.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update store address.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, address)
}

// UpdateStoreHour handles updating a single hours row by its own ID.
func (h *StoreHandler) UpdateStoreHour(c *gin.Context) {
	hourID, err := utils.StrToInt64(c.Param("store_hour_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store hours ID format.", err.Error()))
		return
	}

	var req services.StoreHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStoreHour: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	hour, err := h.storeService.UpdateStoreHour(hourID, req)
	if err != nil {
		utils.LogError(err, "UpdateStoreHour: Error from storeService.UpdateStoreHour")
		if errors.Is(err, services.ErrStoreHoursNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store hours row not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update store hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, hour)
}

// UpdateStoreHours handles the bulk per-day hours update.
func (h *StoreHandler) UpdateStoreHours(c *gin.Context) {
	var reqs []services.StoreHoursRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.LogError(err, "UpdateStoreHours: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.storeService.UpdateStoreHours(reqs); err != nil {
		utils.LogError(err, "UpdateStoreHours: Error from storeService.UpdateStoreHours")
		if errors.Is(err, services.ErrStoreHoursNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store hours row not found for an entry.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update store hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store hours updated successfully"})
}

// DeleteStore handles deleting a store with its hours and address.
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("store_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	deleted, err := h.storeService.DeleteStore(storeID)
	if err != nil {
		utils.LogError(err, "DeleteStore: Error from storeService.DeleteStore")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete store.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
