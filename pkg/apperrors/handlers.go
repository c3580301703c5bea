package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// DefaultHandler используется HandleError; Debug выставляется при старте из конфига.
var DefaultHandler = &GinErrorHandler{}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.IsServerError() {
		slog.ErrorContext(c.Request.Context(), "server error",
			"code", appErr.Code,
			"path", c.Request.URL.Path,
			"error", err,
		)
		if !h.Debug {
			// Пути файлов и стеки наружу не отдаём
			opaque := *appErr
			opaque.Message = "Internal server error"
			opaque.Details = nil
			appErr = &opaque
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	DefaultHandler.HandleGinError(c, err)
}

// HandleValidationError - специальный обработчик для ошибок биндинга Gin
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ValidationError(gin.H{"details": err.Error()}))
}
