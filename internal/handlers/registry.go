package handlers

import "moto_portal/internal/services"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	ModelHandler      *ModelHandler
	PhotoHandler      *PhotoHandler
	SpecHandler       *SpecHandler
	VideoHandler      *VideoHandler
	NewsHandler       *NewsHandler
	RegulationHandler *RegulationHandler
	EmployeeHandler   *EmployeeHandler
	SectionHandler    *SectionHandler
	UploadHandler     *UploadHandler
	HealthHandler     *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(base *BaseHandler, s *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		AuthHandler:       NewAuthHandler(base, s.AuthService),
		ModelHandler:      NewModelHandler(base, s.ModelService, s.SpecService, s.PhotoService, s.VideoService),
		PhotoHandler:      NewPhotoHandler(base, s.PhotoService),
		SpecHandler:       NewSpecHandler(base, s.SpecService, s.SpecTransferService),
		VideoHandler:      NewVideoHandler(base, s.VideoService),
		NewsHandler:       NewNewsHandler(base, s.NewsService),
		RegulationHandler: NewRegulationHandler(base, s.RegulationService),
		EmployeeHandler:   NewEmployeeHandler(base, s.EmployeeService),
		SectionHandler:    NewSectionHandler(base, s.SectionService),
		UploadHandler:     NewUploadHandler(base, s.UploadService),
		HealthHandler:     NewHealthHandler(base),
	}
}
