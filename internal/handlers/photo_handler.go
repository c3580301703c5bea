package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	*BaseHandler
	photoService services.PhotoService
}

func NewPhotoHandler(base *BaseHandler, photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		BaseHandler:  base,
		photoService: photoService,
	}
}

func (h *PhotoHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/models/:id/photos", h.Upload)
	admin.GET("/models/:id/photos", h.List)
	admin.PUT("/models/:id/photos/order", h.Reorder)
	admin.PUT("/photos/:id/primary", h.SetPrimary)
	admin.DELETE("/photos/:id", h.Delete)
}

// Upload godoc
// @Summary Загрузить фото модели
// @Description Фото добавляется в конец коллекции
// @Tags admin-photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID модели"
// @Param file formData file true "Изображение"
// @Success 201 {object} models.ModelPhoto
// @Failure 400 {object} apperrors.ErrorResponse "Недопустимое расширение"
// @Failure 413 {object} apperrors.ErrorResponse "Файл слишком большой"
// @Router /admin/models/{id}/photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	photo, err := h.photoService.Upload(c.Request.Context(), h.GetDB(c), modelID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *PhotoHandler) List(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	photos, err := h.photoService.List(c.Request.Context(), h.GetDB(c), modelID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *PhotoHandler) Reorder(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.photoService.Reorder(c.Request.Context(), h.GetDB(c), modelID, req.IDs); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo order updated"})
}

// SetPrimary godoc
// @Summary Сделать фото основным
// @Tags admin-photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID фото"
// @Success 200 {object} models.ModelPhoto
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/photos/{id}/primary [put]
func (h *PhotoHandler) SetPrimary(c *gin.Context) {
	photoID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	photo, err := h.photoService.SetPrimary(c.Request.Context(), h.GetDB(c), photoID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), h.GetDB(c), photoID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo deleted"})
}
