package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RegulationHandler struct {
	*BaseHandler
	regulationService services.RegulationService
}

func NewRegulationHandler(base *BaseHandler, regulationService services.RegulationService) *RegulationHandler {
	return &RegulationHandler{
		BaseHandler: base,
		regulationService: regulationService,
	}
}

func (h *RegulationHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	// Public routes
	regulations := public.Group("/regulations")
	{
		regulations.GET("", h.ListPublished)
		regulations.GET("/categories", h.Categories)
		regulations.GET("/:id", h.GetPublished)
	}

	// Admin routes
	adminRegulations := admin.Group("/regulations")
	{
		adminRegulations.GET("", h.List)
		adminRegulations.POST("", h.Create)
		adminRegulations.GET("/:id", h.Get)
		adminRegulations.PUT("/:id", h.Update)
		adminRegulations.DELETE("/:id", h.Delete)
		adminRegulations.POST("/:id/photos", h.AddPhoto)
		adminRegulations.POST("/:id/documents", h.AddDocument)
		adminRegulations.DELETE("/photos/:id", h.DeletePhoto)
		adminRegulations.DELETE("/documents/:id", h.DeleteDocument)
	}
}

// --- Public handlers ---

// ListPublished godoc
// @Summary Опубликованные регламенты
// @Tags regulations
// @Produce json
// @Param category query string false "Категория"
// @Param search query string false "Поиск по заголовку и тексту"
// @Success 200 {array} models.Regulation
// @Failure 404 {object} apperrors.ErrorResponse "Раздел скрыт"
// @Router /regulations [get]
func (h *RegulationHandler) ListPublished(c *gin.Context) {
	var query dto.PublicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.regulationService.ListPublished(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *RegulationHandler) GetPublished(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	regulation, err := h.regulationService.GetPublished(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, regulation)
}

func (h *RegulationHandler) Categories(c *gin.Context) {
	categories, err := h.regulationService.Categories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// --- Admin handlers ---

func (h *RegulationHandler) List(c *gin.Context) {
	var query dto.PublicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.regulationService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *RegulationHandler) Get(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	regulation, err := h.regulationService.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, regulation)
}

func (h *RegulationHandler) Create(c *gin.Context) {
	var req dto.CreateRegulationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	regulation, err := h.regulationService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, regulation)
}

func (h *RegulationHandler) Update(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRegulationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	regulation, err := h.regulationService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, regulation)
}

func (h *RegulationHandler) Delete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.regulationService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Regulation deleted"})
}

func (h *RegulationHandler) AddPhoto(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	photo, err := h.regulationService.AddPhoto(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *RegulationHandler) AddDocument(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	doc, err := h.regulationService.AddDocument(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *RegulationHandler) DeletePhoto(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.regulationService.DeletePhoto(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo deleted"})
}

func (h *RegulationHandler) DeleteDocument(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.regulationService.DeleteDocument(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted"})
}
