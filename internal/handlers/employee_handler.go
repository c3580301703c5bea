package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	*BaseHandler
	employeeService services.EmployeeService
}

func NewEmployeeHandler(base *BaseHandler, employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler:     base,
		employeeService: employeeService,
	}
}

func (h *EmployeeHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	employees := public.Group("/employees")
	{
		employees.GET("", h.ListActive)
		employees.GET("/:id", h.GetActive)
	}

	adminEmployees := admin.Group("/employees")
	{
		adminEmployees.GET("", h.List)
		adminEmployees.POST("", h.Create)
		adminEmployees.PUT("/:id", h.Update)
		adminEmployees.DELETE("/:id", h.Delete)
		adminEmployees.POST("/:id/photo", h.UploadPhoto)
	}
}

func (h *EmployeeHandler) ListActive(c *gin.Context) {
	var query dto.EmployeeQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.employeeService.ListActive(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EmployeeHandler) GetActive(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetActive(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var query dto.EmployeeQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.employeeService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted"})
}

// UploadPhoto godoc
// @Summary Заменить фото сотрудника
// @Tags admin-employees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сотрудника"
// @Param file formData file true "Изображение"
// @Success 200 {object} models.Employee
// @Router /admin/employees/{id}/photo [post]
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	employee, err := h.employeeService.UploadPhoto(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}
