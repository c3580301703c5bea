package apperrors

import (
	"fmt"
	"net/http"
	"strings"
)

// --- Uploads & Files ---

// ErrEmptyFilename - имя файла не передано
var ErrEmptyFilename = New(
	CodeInvalidInput,
	"upload",
	"File name must not be empty",
	http.StatusBadRequest,
)

// ErrTooLarge - файл превышает максимальный размер
var ErrTooLarge = New(
	CodeTooLarge,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge, // 413
)

// ErrInvalidExtension - расширение файла не входит в разрешённый набор
var ErrInvalidExtension = New(
	CodeInvalidExtension,
	"upload",
	"File extension is not allowed",
	http.StatusBadRequest,
)

// TooLarge возвращает ErrTooLarge с лимитом в деталях
func TooLarge(limit int64) *AppError {
	return ErrTooLarge.WithDetails(map[string]interface{}{"max_bytes": limit})
}

// InvalidExtension возвращает ErrInvalidExtension с расширением и списком разрешённых
func InvalidExtension(ext string, allowed []string) *AppError {
	return ErrInvalidExtension.WithDetails(map[string]interface{}{
		"extension": ext,
		"allowed":   allowed,
	})
}

// --- Spreadsheet import ---

// ErrImportFormat - файл не читается как рабочая книга
var ErrImportFormat = New(
	CodeImportFormat,
	"import",
	"Spreadsheet file is unreadable or malformed",
	http.StatusBadRequest,
)

// ImportFormat оборачивает ошибку разбора файла
func ImportFormat(err error) *AppError {
	return ErrImportFormat.WithError(err)
}

// ImportSchema - в заголовке нет обязательных колонок
func ImportSchema(missing []string) *AppError {
	return New(
		CodeImportSchema,
		"import",
		fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")),
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{"missing_columns": missing})
}

// --- Sections ---

// SectionHidden - раздел отключён администратором
func SectionHidden(section string) *AppError {
	return New(CodeSectionHidden, "section", fmt.Sprintf("Section %q is not available", section), http.StatusNotFound)
}

// --- Auth ---

// ErrInvalidCredentials - неверный пароль администратора
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
