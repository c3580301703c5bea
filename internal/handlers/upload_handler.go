package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ============================================
// UPLOAD HANDLER
// ============================================

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/upload/image", h.UploadImage)
}

// UploadImage godoc
// @Summary Загрузить изображение в категорию
// @Tags admin-upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Изображение"
// @Param category formData string true "models, news, employees или regulations"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Router /admin/upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	var form dto.UploadImageForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	res, err := h.uploadService.UploadImage(c.Request.Context(), form.Category, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
