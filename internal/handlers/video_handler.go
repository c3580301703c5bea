package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	*BaseHandler
	videoService services.VideoService
}

func NewVideoHandler(base *BaseHandler, videoService services.VideoService) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  base,
		videoService: videoService,
	}
}

func (h *VideoHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/models/:id/videos", h.Create)
	admin.PUT("/models/:id/videos/order", h.Reorder)
	admin.PUT("/videos/:id", h.Update)
	admin.DELETE("/videos/:id", h.Delete)
}

func (h *VideoHandler) Create(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), h.GetDB(c), modelID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	videoID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateVideoRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), h.GetDB(c), videoID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), h.GetDB(c), videoID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Video deleted"})
}

func (h *VideoHandler) Reorder(c *gin.Context) {
	modelID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.videoService.Reorder(c.Request.Context(), h.GetDB(c), modelID, req.IDs); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Video order updated"})
}
