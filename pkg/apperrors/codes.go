package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные ошибки (наружу отдаются без деталей)
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Ошибки запроса
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeSectionHidden    ErrorCode = "SECTION_HIDDEN"

	// Загрузка файлов
	CodeTooLarge         ErrorCode = "TOO_LARGE"
	CodeInvalidExtension ErrorCode = "INVALID_EXTENSION"

	// Импорт таблиц
	CodeImportFormat ErrorCode = "IMPORT_FORMAT_ERROR"
	CodeImportSchema ErrorCode = "IMPORT_SCHEMA_ERROR"

	// Аутентификация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
