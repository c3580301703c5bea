package services

import (
	"moto_portal/internal/assets"
	"moto_portal/internal/auth"
	"moto_portal/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ModelService        ModelService
	PhotoService        PhotoService
	SpecService         SpecService
	SpecTransferService SpecTransferService
	VideoService        VideoService
	NewsService         NewsService
	RegulationService   RegulationService
	EmployeeService     EmployeeService
	SectionService      SectionService
	UploadService       UploadService
}

// NewServiceContainer собирает сервисы поверх репозиториев и хранилища файлов
func NewServiceContainer(store *assets.Store, authorizer auth.Authorizer) *ServiceContainer {
	// --- Репозитории ---
	modelRepo := repositories.NewModelRepository()
	photoRepo := repositories.NewPhotoRepository()
	specRepo := repositories.NewSpecRepository()
	videoRepo := repositories.NewVideoRepository()
	newsRepo := repositories.NewNewsRepository()
	regulationRepo := repositories.NewRegulationRepository()
	employeeRepo := repositories.NewEmployeeRepository()
	sectionRepo := repositories.NewSectionRepository()
	importLogRepo := repositories.NewImportLogRepository()

	// --- Сервисы ---
	sectionService := NewSectionService(sectionRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(authorizer),
		ModelService:        NewModelService(modelRepo, store),
		PhotoService:        NewPhotoService(photoRepo, modelRepo, store),
		SpecService:         NewSpecService(specRepo, modelRepo),
		SpecTransferService: NewSpecTransferService(specRepo, modelRepo, importLogRepo),
		VideoService:        NewVideoService(videoRepo, modelRepo),
		NewsService:         NewNewsService(newsRepo, sectionService, store),
		RegulationService:   NewRegulationService(regulationRepo, sectionService, store),
		EmployeeService:     NewEmployeeService(employeeRepo, sectionService, store),
		SectionService:      sectionService,
		UploadService:       NewUploadService(store),
	}
}
