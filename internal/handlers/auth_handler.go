package handlers

import (
	"net/http"

	"moto_portal/internal/services"
	"moto_portal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes - вход не требует токена, поэтому регистрируется на открытой группе
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.POST("/auth/login", h.Login)
}

// Login godoc
// @Summary Вход администратора
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Пароль администратора"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apperrors.ErrorResponse "Неверный пароль"
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
