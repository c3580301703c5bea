package dto

// MessageResponse - ответ операций без тела
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse - результат загрузки файла
type UploadResponse struct {
	FilePath         string `json:"file_path"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileSize         int64  `json:"file_size"`
	URL              string `json:"url"`
}

// =======================
// Auth
// =======================

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // секунды
}

// ReorderRequest - новый порядок элементов коллекции; позиция в списке = sort_order
type ReorderRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

// UploadImageForm - поля multipart-формы загрузки изображения
type UploadImageForm struct {
	Category string `form:"category" validate:"required,is-upload-category"`
}

// ImportSpecsForm - поля multipart-формы импорта характеристик
type ImportSpecsForm struct {
	ReplaceExisting bool `form:"replace_existing"`
}
