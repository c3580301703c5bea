package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ModelHandler struct {
	*BaseHandler
	modelService services.ModelService
	specService  services.SpecService
	photoService services.PhotoService
	videoService services.VideoService
}

func NewModelHandler(
	base *BaseHandler,
	modelService services.ModelService,
	specService services.SpecService,
	photoService services.PhotoService,
	videoService services.VideoService,
) *ModelHandler {
	return &ModelHandler{
		BaseHandler:  base,
		modelService: modelService,
		specService:  specService,
		photoService: photoService,
		videoService: videoService,
	}
}

func (h *ModelHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	// Public routes
	models := public.Group("/models")
	{
		models.GET("", h.ListActive)
		models.GET("/filter", h.FilterBySpecs)
		models.GET("/:id", h.GetActive)
		models.GET("/:id/specs", h.ListSpecs)
		models.GET("/:id/photos", h.ListPhotos)
		models.GET("/:id/videos", h.ListVideos)
	}

	// Admin routes
	adminModels := admin.Group("/models")
	{
		adminModels.GET("", h.List)
		adminModels.POST("", h.Create)
		adminModels.GET("/:id/full", h.GetFull)
		adminModels.PUT("/:id", h.Update)
		adminModels.DELETE("/:id", h.Delete)
	}
}

// --- Public handlers ---

// ListActive godoc
// @Summary Список активных моделей
// @Tags models
// @Produce json
// @Param skip query int false "Смещение"
// @Param limit query int false "Лимит (не больше 1000)"
// @Param search query string false "Поиск по названию"
// @Success 200 {array} models.Model
// @Router /models [get]
func (h *ModelHandler) ListActive(c *gin.Context) {
	var query dto.ModelListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.modelService.ListActive(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// FilterBySpecs godoc
// @Summary Подбор моделей по характеристикам
// @Description specs - JSON-объект {"название": "подстрока значения"}
// @Tags models
// @Produce json
// @Param specs query string false "Фильтры"
// @Success 200 {object} dto.ModelFilterResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /models/filter [get]
func (h *ModelHandler) FilterBySpecs(c *gin.Context) {
	res, err := h.modelService.FilterBySpecs(c.Request.Context(), h.GetDB(c), c.Query("specs"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetActive godoc
// @Summary Модель с фото, характеристиками и видео
// @Tags models
// @Produce json
// @Param id path int true "ID модели"
// @Success 200 {object} models.Model
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /models/{id} [get]
func (h *ModelHandler) GetActive(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	model, err := h.modelService.GetActive(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

func (h *ModelHandler) ListSpecs(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var query dto.SpecQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	specs, err := h.specService.List(c.Request.Context(), h.GetDB(c), id, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, specs)
}

func (h *ModelHandler) ListPhotos(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	photos, err := h.photoService.List(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *ModelHandler) ListVideos(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	videos, err := h.videoService.List(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// --- Admin handlers ---

func (h *ModelHandler) List(c *gin.Context) {
	var query dto.ModelListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.modelService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ModelHandler) GetFull(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	model, err := h.modelService.GetFull(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// Create godoc
// @Summary Создать модель
// @Tags admin-models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateModelRequest true "Модель"
// @Success 201 {object} models.Model
// @Failure 422 {object} apperrors.ErrorResponse
// @Router /admin/models [post]
func (h *ModelHandler) Create(c *gin.Context) {
	var req dto.CreateModelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	model, err := h.modelService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

func (h *ModelHandler) Update(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateModelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	model, err := h.modelService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// Delete godoc
// @Summary Удалить модель вместе с фото, характеристиками и видео
// @Tags admin-models
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID модели"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/models/{id} [delete]
func (h *ModelHandler) Delete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.modelService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Model deleted"})
}
