package handlers

import (
	"net/http"

	"moto_portal/internal/models"
	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"
	"moto_portal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	*BaseHandler
	sectionService services.SectionService
}

func NewSectionHandler(base *BaseHandler, sectionService services.SectionService) *SectionHandler {
	return &SectionHandler{
		BaseHandler:    base,
		sectionService: sectionService,
	}
}

func (h *SectionHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/sections/visibility", h.Visibility)

	admin.GET("/sections", h.Visibility)
	admin.PUT("/sections/:section/visibility", h.SetVisibility)
}

// Visibility godoc
// @Summary Видимость разделов портала
// @Tags sections
// @Produce json
// @Success 200 {object} dto.SectionsVisibilityResponse
// @Router /sections/visibility [get]
func (h *SectionHandler) Visibility(c *gin.Context) {
	res, err := h.sectionService.Visibility(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SectionHandler) SetVisibility(c *gin.Context) {
	section := models.Section(c.Param("section"))
	if !section.IsValid() {
		apperrors.HandleError(c, apperrors.InvalidInput("Unknown section: "+string(section)))
		return
	}
	var req dto.SectionVisibilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	res, err := h.sectionService.SetVisibility(c.Request.Context(), h.GetDB(c), section, *req.IsVisible)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
