package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")

	// AdminSubjectKey - subject из проверенного админского токена
	AdminSubjectKey = contextKey("admin_subject")
)
