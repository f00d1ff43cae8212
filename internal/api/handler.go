// Package api serves the employee REST API the frontend talks to.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/UnknownOlympus/ems/internal/services/employees"
	"github.com/gin-gonic/gin"
)

const deletedMessage = "Employee deleted successfully"

// EmployeeService is implemented by employees.Staff.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	ListByFirstName(ctx context.Context, firstName string) ([]models.Employee, error)
	Get(ctx context.Context, id models.ID) (models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, id models.ID, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id models.ID) error
}

type employeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
	Email     string `json:"email"     binding:"required"`
}

func (r employeeRequest) toModel() models.Employee {
	return models.Employee{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

type errorResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	log     *slog.Logger
	service EmployeeService
}

func NewHandler(log *slog.Logger, service EmployeeService) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetByFirstName(c *gin.Context) {
	firstName := c.Param("firstName")

	result, err := h.service.ListByFirstName(c.Request.Context(), firstName)
	if errors.Is(err, employees.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{
			Message: "Employee does not exist with the given first name: " + firstName,
		})
		return
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WarnContext(c.Request.Context(), "Create employee validation failed", sl.Err(err))
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid employee payload: " + err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) Update(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WarnContext(c.Request.Context(), "Update employee validation failed", sl.Err(err))
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid employee payload: " + err.Error()})
		return
	}

	result, err := h.service.Update(c.Request.Context(), models.ID(c.Param("id")), req.toModel())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.String(http.StatusOK, deletedMessage)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, employees.ErrNotFound):
		status, message = http.StatusNotFound, fmt.Sprintf("Employee does not exist with the given ID: %s", c.Param("id"))
	case errors.Is(err, employees.ErrInvalidID):
		status, message = http.StatusBadRequest, fmt.Sprintf("Invalid employee ID: %s", c.Param("id"))
	case errors.Is(err, employees.ErrDuplicateEmail):
		status, message = http.StatusConflict, "Employee with this email already exists"
	}

	h.log.WarnContext(c.Request.Context(), "Employee request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Int("status", status),
		sl.Err(err),
	)
	c.JSON(status, errorResponse{Message: message})
}
