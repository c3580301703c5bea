package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	*BaseHandler
	newsService services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		BaseHandler: base,
		newsService: newsService,
	}
}

func (h *NewsHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	// Public routes
	news := public.Group("/news")
	{
		news.GET("", h.ListPublished)
		news.GET("/:id", h.GetPublished)
	}

	// Admin routes
	adminNews := admin.Group("/news")
	{
		adminNews.GET("", h.List)
		adminNews.POST("", h.Create)
		adminNews.GET("/:id", h.Get)
		adminNews.PUT("/:id", h.Update)
		adminNews.DELETE("/:id", h.Delete)
		adminNews.POST("/:id/photos", h.AddPhoto)
		adminNews.POST("/:id/documents", h.AddDocument)
		adminNews.DELETE("/photos/:id", h.DeletePhoto)
		adminNews.DELETE("/documents/:id", h.DeleteDocument)
	}
}

// --- Public handlers ---

// ListPublished godoc
// @Summary Опубликованные новости, новые первыми
// @Tags news
// @Produce json
// @Param skip query int false "Смещение"
// @Param limit query int false "Лимит"
// @Param search query string false "Поиск по заголовку и тексту"
// @Success 200 {array} models.News
// @Failure 404 {object} apperrors.ErrorResponse "Раздел скрыт"
// @Router /news [get]
func (h *NewsHandler) ListPublished(c *gin.Context) {
	var query dto.PublicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.newsService.ListPublished(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NewsHandler) GetPublished(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	news, err := h.newsService.GetPublished(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// --- Admin handlers ---

func (h *NewsHandler) List(c *gin.Context) {
	var query dto.PublicationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.newsService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	news, err := h.newsService.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req dto.CreateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	news, err := h.newsService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNewsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	news, err := h.newsService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "News deleted"})
}

func (h *NewsHandler) AddPhoto(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	photo, err := h.newsService.AddPhoto(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *NewsHandler) AddDocument(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	file, f, ok := h.OpenFormFile(c, "file")
	if !ok {
		return
	}
	defer f.Close()

	doc, err := h.newsService.AddDocument(c.Request.Context(), h.GetDB(c), id, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *NewsHandler) DeletePhoto(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.newsService.DeletePhoto(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo deleted"})
}

func (h *NewsHandler) DeleteDocument(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.newsService.DeleteDocument(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted"})
}
