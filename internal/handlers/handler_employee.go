package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
	"github.com/gunarwibowo/erp_backoffice_app/internal/middleware"
)

// employeeHandler handles the onboarding workflow and employee reads.
type employeeHandler struct {
	onboardingService portssvc.OnboardingSvcFacade
}

func newEmployeeHandler(onboardingService portssvc.OnboardingSvcFacade) *employeeHandler {
	return &employeeHandler{onboardingService: onboardingService}
}

func registerEmployeeRoutes(rg *gin.RouterGroup, onboardingService portssvc.OnboardingSvcFacade) {
	h := newEmployeeHandler(onboardingService)
	employees := rg.Group("/employees")
	{
		employees.POST("", h.onboardEmployee)
		employees.GET("/:employeeID", h.getEmployee)
		employees.GET("/:employeeID/histories", h.listHistories)
		employees.POST("/:employeeID/histories", h.recordAssignmentChange)
	}
}

// bindOnboardRequest reads the onboarding payload. Multipart requests carry a
// "payload" JSON field plus an optional "avatar" file; plain JSON requests
// carry the payload as the body.
func bindOnboardRequest(c *gin.Context) (dto.OnboardEmployeeRequest, *dto.UploadFile, error) {
	var req dto.OnboardEmployeeRequest

	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		err := c.ShouldBindJSON(&req)
		return req, nil, err
	}

	payload := c.PostForm("payload")
	if payload == "" {
		return req, nil, errors.New("missing payload field")
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, nil, err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, nil
		}
		return req, nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return req, nil, err
	}
	return req, &dto.UploadFile{Name: fileHeader.Filename, Content: file}, nil
}

func (h *employeeHandler) onboardEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, avatar, err := bindOnboardRequest(c)
	if err != nil {
		logger.Error("Failed to bind onboarding request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}
	if req.Email == "" || req.Employee.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and employee name are required"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, employee, err := h.onboardingService.OnboardEmployee(c.Request.Context(), req, avatar, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, services.ErrJoinDateMissing):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, apperrors.ErrNotFound):
			// Strict mode with the default role missing.
			logger.Error("Onboarding aborted", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to onboard employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to onboard employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OnboardEmployeeResponse{
		User:     dto.ToUserResponse(user),
		Employee: dto.ToEmployeeResponse(employee),
	})
}

func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.onboardingService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) listHistories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	histories, err := h.onboardingService.GetEmployeeHistories(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to list employee histories", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve histories"})
		return
	}

	resp := make([]dto.EmployeeHistoryResponse, len(histories))
	for i := range histories {
		resp[i] = dto.ToEmployeeHistoryResponse(&histories[i])
	}
	c.JSON(http.StatusOK, gin.H{"histories": resp})
}

func (h *employeeHandler) recordAssignmentChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.AssignmentChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	history, err := h.onboardingService.RecordAssignmentChange(c.Request.Context(), employeeID, req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to record assignment change", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record assignment change"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeHistoryResponse(history))
}
