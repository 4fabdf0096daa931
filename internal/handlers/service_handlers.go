package handlers

import (
	"errors"
	"net/http"

	"salon_backend/internal/services"
	"salon_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler holds the catalog service.
type ServiceHandler struct {
	catalogService services.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cs services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: cs}
}

// GetFullServices handles fetching every service aggregate.
func (h *ServiceHandler) GetFullServices(c *gin.Context) {
	fullServices, err := h.catalogService.GetFullServices()
	if err != nil {
		utils.LogError(err, "GetFullServices: Error from catalogService.GetFullServices")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch services.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, fullServices)
}

// GetFullService handles fetching a single service aggregate.
func (h *ServiceHandler) GetFullService(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	fullService, err := h.catalogService.GetFullService(serviceID)
	if err != nil {
		utils.LogError(err, "GetFullService: Error from catalogService.GetFullService")
		if errors.Is(err, services.ErrServiceNotFound) || errors.Is(err, services.ErrBlockTimeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, fullService)
}

// CreateService handles creating a service with its blocked time and variants.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req services.GenerateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.CreateService(req)
	if err != nil {
		utils.LogError(err, "CreateService: Error from catalogService.CreateService")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create service.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService handles updating a service row.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	var req services.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.UpdateService(serviceID, req)
	if err != nil {
		utils.LogError(err, "UpdateService: Error from catalogService.UpdateService")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found to update.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateServiceVariant handles updating a variant by its own ID.
func (h *ServiceHandler) UpdateServiceVariant(c *gin.Context) {
	variantID, err := utils.StrToInt64(c.Param("service_variant_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service variant ID format.", err.Error()))
		return
	}

	var req services.VariantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateServiceVariant: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	variant, err := h.catalogService.UpdateServiceVariant(variantID, req)
	if err != nil {
		utils.LogError(err, "UpdateServiceVariant: Error from catalogService.UpdateServiceVariant")
		if errors.Is(err, services.ErrServiceVariantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service variant not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update service variant.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, variant)
}

// UpdateBlockTime handles updating a service's blocked-time row.
func (h *ServiceHandler) UpdateBlockTime(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	var req services.BlockTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBlockTime: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	block, err := h.catalogService.UpdateBlockTime(serviceID, req)
	if err != nil {
		utils.LogError(err, "UpdateBlockTime: Error from catalogService.UpdateBlockTime")
		if errors.Is(err, services.ErrBlockTimeNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Blocked time for service not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update blocked time.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, block)
}

// UpdateFullService handles updating a service, its blocked time and its
// variants in one request.
func (h *ServiceHandler) UpdateFullService(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	var req services.UpdateFullServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateFullService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.UpdateFullService(serviceID, req)
	if err != nil {
		utils.LogError(err, "UpdateFullService: Error from catalogService.UpdateFullService")
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found to update.", err.Error()))
		case errors.Is(err, services.ErrServiceVariantNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service variant not found for an entry.", err.Error()))
		case errors.Is(err, services.ErrBlockTimeNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Blocked time for service not found.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService handles deleting a service with its variants and blocked time.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	deleted, err := h.catalogService.DeleteService(serviceID)
	if err != nil {
		utils.LogError(err, "DeleteService: Error from catalogService.DeleteService")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
