package handlers

import (
	"fmt"
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SpecHandler struct {
	*BaseHandler
	specService     services.SpecService
	transferService services.SpecTransferService
}

func NewSpecHandler(base *BaseHandler, specService services.SpecService, transferService services.SpecTransferService) *SpecHandler {
	return &SpecHandler{
		BaseHandler:     base,
		specService:     specService,
		transferService: transferService,
	}
}

func (h *SpecHandler) RegisterRoutes(admin *gin.RouterGroup) {
	specs := admin.Group("/models/:id/specs")
	{
		specs.POST("", h.Create)
		specs.PUT("/order", h.Reorder)
		specs.PUT("/bulk", h.BulkUpsert)
		specs.POST("/import", h.Import)
		specs.GET("/export", h.Export)
		specs.GET("/imports", h.ImportHistory)
	}

	admin.PUT("/specs/:id", h.Update)
	admin.DELETE("/specs/:id", h.Delete)
}

func (h *SpecHandler) Create(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateSpecRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	spec, err := h.specService.Create(c.Request.Context(), h.GetDB(c), modelID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spec)
}

func (h *SpecHandler) Update(c *gin.Context) {
	specID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSpecRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	spec, err := h.specService.Update(c.Request.Context(), h.GetDB(c), specID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (h *SpecHandler) Delete(c *gin.Context) {
	specID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.specService.Delete(c.Request.Context(), h.GetDB(c), specID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Spec deleted"})
}

func (h *SpecHandler) Reorder(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.specService.Reorder(c.Request.Context(), h.GetDB(c), modelID, req.IDs); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Spec order updated"})
}

// BulkUpsert godoc
// @Summary Массовое обновление характеристик по названию
// @Tags admin-specs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID модели"
// @Param request body dto.BulkSpecsRequest true "Характеристики"
// @Success 200 {object} dto.BulkSpecsResult
// @Router /admin/models/{id}/specs/bulk [put]
func (h *SpecHandler) BulkUpsert(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.BulkSpecsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	res, err := h.specService.BulkUpsert(c.Request.Context(), h.GetDB(c), modelID, req.Specs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Import godoc
// @Summary Импорт характеристик из xlsx
// @Description Колонки spec_name и spec_value обязательны, spec_unit - нет. Строки без имени или значения пропускаются.
// @Tags admin-specs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID модели"
// @Param file formData file true "Книга xlsx"
// @Param replace_existing formData bool false "Удалить текущие характеристики перед импортом"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} apperrors.ErrorResponse "Файл не читается или нет обязательных колонок"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/models/{id}/specs/import [post]
func (h *SpecHandler) Import(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var form dto.ImportSpecsForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	res, err := h.transferService.Import(c.Request.Context(), h.GetDB(c), modelID, file.Content, dto.ImportOptions{
		Filename:        file.Filename,
		ReplaceExisting: form.ReplaceExisting,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Export godoc
// @Summary Выгрузка характеристик в xlsx
// @Tags admin-specs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "ID модели"
// @Success 200 {file} file
// @Failure 404 {object} apperrors.ErrorResponse "Нет модели или характеристик"
// @Router /admin/models/{id}/specs/export [get]
func (h *SpecHandler) Export(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.transferService.Export(c.Request.Context(), h.GetDB(c), modelID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *SpecHandler) ImportHistory(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	logs, err := h.transferService.History(c.Request.Context(), h.GetDB(c), modelID, ParseQueryInt(c, "limit", 20))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
