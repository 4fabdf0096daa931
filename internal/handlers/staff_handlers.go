package handlers

import (
	"errors"
	"net/http"

	"salon_backend/internal/services"
	"salon_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler holds the staff service.
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// GetStaff handles fetching all staff members.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staffList, err := h.staffService.GetStaff()
	if err != nil {
		utils.LogError(err, "GetStaff: Error from staffService.GetStaff")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, staffList)
}

// GetStaffByID handles fetching a single staff member by ID.
func (h *StaffHandler) GetStaffByID(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	staff, err := h.staffService.GetStaffMember(staffID)
	if err != nil {
		utils.LogError(err, "GetStaffByID: Error from staffService.GetStaffMember")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffBasic handles fetching the trimmed public view of a staff member.
func (h *StaffHandler) GetStaffBasic(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	info, err := h.staffService.GetStaffBasic(staffID)
	if err != nil {
		utils.LogError(err, "GetStaffBasic: Error from staffService.GetStaffBasic")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff info.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetAllStaffHours handles fetching every staff member paired with their hours.
func (h *StaffHandler) GetAllStaffHours(c *gin.Context) {
	staffHours, err := h.staffService.GetAllStaffHours()
	if err != nil {
		utils.LogError(err, "GetAllStaffHours: Error from staffService.GetAllStaffHours")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff hours.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, staffHours)
}

// GetStaffHours handles fetching one staff member paired with their hours.
func (h *StaffHandler) GetStaffHours(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	staffHours, err := h.staffService.GetStaffHours(staffID)
	if err != nil {
		utils.LogError(err, "GetStaffHours: Error from staffService.GetStaffHours")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staffHours)
}

// GetStaffServices handles fetching a staff member with their assigned services.
func (h *StaffHandler) GetStaffServices(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	staffServices, err := h.staffService.GetStaffServices(staffID)
	if err != nil {
		utils.LogError(err, "GetStaffServices: Error from staffService.GetStaffServices")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff services.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staffServices)
}

// GetStaffWithService handles fetching the assignment rows for one service.
func (h *StaffHandler) GetStaffWithService(c *gin.Context) {
	serviceID, err := utils.StrToInt64(c.Param("service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return
	}

	assignments, err := h.staffService.GetStaffWithService(serviceID)
	if err != nil {
		utils.LogError(err, "GetStaffWithService: Error from staffService.GetStaffWithService")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch staff for service.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateStaff handles the creation of a new staff member with seeded hours.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStaff: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	staff, err := h.staffService.CreateStaff(req)
	if err != nil {
		utils.LogError(err, "CreateStaff: Error from staffService.CreateStaff")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create staff member.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// AddStaffService handles assigning a staff member to a service variant.
func (h *StaffHandler) AddStaffService(c *gin.Context) {
	var req services.StaffServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddStaffService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	assignment, err := h.staffService.AddStaffService(req)
	if err != nil {
		utils.LogError(err, "AddStaffService: Error from staffService.AddStaffService")
		if errors.Is(err, services.ErrServiceVariantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service variant not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to assign service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// UpdateStaff handles updating a staff member.
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStaff: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	staff, err := h.staffService.UpdateStaff(staffID, req)
	if err != nil {
		utils.LogError(err, "UpdateStaff: Error from staffService.UpdateStaff")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found to update.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaffHour handles updating a single hours row by its own ID.
func (h *StaffHandler) UpdateStaffHour(c *gin.Context) {
	hourID, err := utils.StrToInt64(c.Param("staff_hour_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff hours ID format.", err.Error()))
		return
	}

	var req services.StaffHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStaffHour: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	hour, err := h.staffService.UpdateStaffHour(hourID, req)
	if err != nil {
		utils.LogError(err, "UpdateStaffHour: Error from staffService.UpdateStaffHour")
		if errors.Is(err, services.ErrStaffHoursNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff hours row not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update staff hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, hour)
}

// UpdateStaffHours handles the bulk per-day hours update.
func (h *StaffHandler) UpdateStaffHours(c *gin.Context) {
	var reqs []services.StaffHoursRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.LogError(err, "UpdateStaffHours: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.staffService.UpdateStaffHours(reqs); err != nil {
		utils.LogError(err, "UpdateStaffHours: Error from staffService.UpdateStaffHours")
		if errors.Is(err, services.ErrStaffHoursNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff hours row not found for an entry.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update staff hours.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff hours updated successfully"})
}

// UpdateStaffServices handles replacing a staff member's service assignments.
func (h *StaffHandler) UpdateStaffServices(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	var reqs []services.StaffServiceRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.LogError(err, "UpdateStaffServices: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.staffService.UpdateStaffServices(staffID, reqs); err != nil {
		utils.LogError(err, "UpdateStaffServices: Error from staffService.UpdateStaffServices")
		if errors.Is(err, services.ErrServiceVariantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service variant not found for an entry.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update staff services.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff services updated successfully"})
}

// DeleteStaff handles deleting a staff member with their hours.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staffID, err := utils.StrToInt64(c.Param("staff_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff ID format.", err.Error()))
		return
	}

	deleted, err := h.staffService.DeleteStaff(staffID)
	if err != nil {
		utils.LogError(err, "DeleteStaff: Error from staffService.DeleteStaff")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete staff member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteStaffService handles deleting a single assignment row.
func (h *StaffHandler) DeleteStaffService(c *gin.Context) {
	assignmentID, err := utils.StrToInt64(c.Param("staff_service_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid staff service ID format.", err.Error()))
		return
	}

	deleted, err := h.staffService.DeleteStaffService(assignmentID)
	if err != nil {
		utils.LogError(err, "DeleteStaffService: Error from staffService.DeleteStaffService")
		if errors.Is(err, services.ErrStaffAssignmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff service assignment not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete assignment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
