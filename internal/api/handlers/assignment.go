package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "technician-board/internal/errors"
	"technician-board/internal/repository"
	"technician-board/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for the assignment board
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
	pinService        service.PinServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface, pinService service.PinServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		pinService:        pinService,
	}
}

// FailureResponse is returned by the PIN and move endpoints on error
type FailureResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid PIN"`
}

// VerifyPin handles POST /api/verify-pin
// @Summary Verify edit PIN
// @Description Check the shared PIN that unlocks editing on the board
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body service.PinRequest true "PIN to verify"
// @Success 200 {object} service.SuccessResponse "PIN accepted"
// @Failure 400 {object} FailureResponse "Malformed request"
// @Failure 401 {object} FailureResponse "PIN mismatch"
// @Failure 429 {object} FailureResponse "Too many attempts"
// @Router /api/verify-pin [post]
func (h *AssignmentHandler) VerifyPin(c *gin.Context) {
	var req service.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{Error: "invalid request body"})
		return
	}

	err := h.pinService.VerifyPin(c.Request.Context(), req.Pin, c.ClientIP())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
	case errors.Is(err, apperrors.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, FailureResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, FailureResponse{Error: "Invalid PIN"})
	default:
		c.JSON(http.StatusInternalServerError, FailureResponse{Error: "Failed to verify PIN"})
	}
}

// GetAssignments handles GET /api/assignments
// @Summary Get grouped assignments
// @Description Get every technician grouped by department and foreman, sorted by name
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]roster.Department "Aggregated view keyed by department"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/assignments [get]
func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	view, err := h.assignmentService.GetAssignments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch assignments"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// MoveTechnician handles POST /api/move-technician
// @Summary Move a technician
// @Description Reassign a technician to another department and foreman
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body service.MoveTechnicianRequest true "Move target"
// @Success 200 {object} service.SuccessResponse "Technician moved"
// @Failure 400 {object} FailureResponse "Invalid request"
// @Failure 404 {object} FailureResponse "Technician not found"
// @Failure 500 {object} FailureResponse "Internal server error"
// @Router /api/move-technician [post]
func (h *AssignmentHandler) MoveTechnician(c *gin.Context) {
	var req service.MoveTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailureResponse{Error: "invalid request body"})
		return
	}

	if err := h.assignmentService.MoveTechnician(c.Request.Context(), &req); err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, FailureResponse{Error: err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, FailureResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, FailureResponse{Error: "Failed to move technician"})
		}
		return
	}

	c.JSON(http.StatusOK, service.SuccessResponse{Success: true})
}

// GetAuditLog handles GET /api/audit-log
// @Summary Recent changes
// @Description Get the most recently updated assignments, newest first
// @Tags assignments
// @Produce json
// @Param limit query int false "Maximum entries (1-50)" default(50)
// @Success 200 {array} roster.AuditEntry "Recent changes"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/audit-log [get]
func (h *AssignmentHandler) GetAuditLog(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(repository.MaxRecentChanges)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		return
	}

	entries, err := h.assignmentService.GetAuditLog(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch audit log"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
