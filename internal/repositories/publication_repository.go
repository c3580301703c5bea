package repositories

import (
	"errors"
	"time"

	"moto_portal/internal/models"

	"gorm.io/gorm"
)

// PublicationFilter - фильтр для новостей и регламентов
type PublicationFilter struct {
	Pagination
	Search        string
	Category      string // только для регламентов
	PublishedOnly bool
}

// --- News ---

type NewsRepository interface {
	Create(db *gorm.DB, news *models.News) error
	FindByID(db *gorm.DB, id uint, publishedOnly bool) (*models.News, error)
	FindAll(db *gorm.DB, filter PublicationFilter) ([]models.News, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.News, error)
	// DeleteCascade удаляет новость с вложениями; возвращает пути файлов для удаления
	DeleteCascade(db *gorm.DB, id uint) ([]string, error)

	AddPhoto(db *gorm.DB, photo *models.NewsPhoto) error
	AddDocument(db *gorm.DB, doc *models.NewsDocument) error
	// DeletePhoto/DeleteDocument возвращают путь удалённого файла
	DeletePhoto(db *gorm.DB, photoID uint) (string, error)
	DeleteDocument(db *gorm.DB, docID uint) (string, error)
}

type NewsRepositoryImpl struct{}

func NewNewsRepository() NewsRepository {
	return &NewsRepositoryImpl{}
}

func (r *NewsRepositoryImpl) Create(db *gorm.DB, news *models.News) error {
	return db.Create(news).Error
}

func (r *NewsRepositoryImpl) FindByID(db *gorm.DB, id uint, publishedOnly bool) (*models.News, error) {
	var news models.News
	query := preloadAttachments(db)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepositoryImpl) FindAll(db *gorm.DB, filter PublicationFilter) ([]models.News, error) {
	var list []models.News
	query := publicationQuery(preloadAttachments(db.Model(&models.News{})), filter)
	err := query.Find(&list).Error
	return list, err
}

func (r *NewsRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.News, error) {
	news, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}
	applyPublishedAt(updates, news.PublishedAt)
	if len(updates) > 0 {
		if err := db.Model(&models.News{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id, false)
}

func (r *NewsRepositoryImpl) DeleteCascade(db *gorm.DB, id uint) ([]string, error) {
	news, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(news.Photos)+len(news.Documents))
	for _, p := range news.Photos {
		paths = append(paths, p.FilePath)
	}
	for _, d := range news.Documents {
		paths = append(paths, d.FilePath)
	}

	if err := db.Where("news_id = ?", id).Delete(&models.NewsPhoto{}).Error; err != nil {
		return nil, err
	}
	if err := db.Where("news_id = ?", id).Delete(&models.NewsDocument{}).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&models.News{}, id).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *NewsRepositoryImpl) AddPhoto(db *gorm.DB, photo *models.NewsPhoto) error {
	next, err := NextSortOrder(db, &models.NewsPhoto{}, "news_id", photo.NewsID)
	if err != nil {
		return err
	}
	photo.SortOrder = next
	return db.Create(photo).Error
}

func (r *NewsRepositoryImpl) AddDocument(db *gorm.DB, doc *models.NewsDocument) error {
	next, err := NextSortOrder(db, &models.NewsDocument{}, "news_id", doc.NewsID)
	if err != nil {
		return err
	}
	doc.SortOrder = next
	return db.Create(doc).Error
}

func (r *NewsRepositoryImpl) DeletePhoto(db *gorm.DB, photoID uint) (string, error) {
	var photo models.NewsPhoto
	return deleteAttachment(db, &photo, photoID, func() string { return photo.FilePath })
}

func (r *NewsRepositoryImpl) DeleteDocument(db *gorm.DB, docID uint) (string, error) {
	var doc models.NewsDocument
	return deleteAttachment(db, &doc, docID, func() string { return doc.FilePath })
}

// --- Regulations ---

type RegulationRepository interface {
	Create(db *gorm.DB, regulation *models.Regulation) error
	FindByID(db *gorm.DB, id uint, publishedOnly bool) (*models.Regulation, error)
	FindAll(db *gorm.DB, filter PublicationFilter) ([]models.Regulation, error)
	Categories(db *gorm.DB) ([]string, error)
	Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Regulation, error)
	DeleteCascade(db *gorm.DB, id uint) ([]string, error)

	AddPhoto(db *gorm.DB, photo *models.RegulationPhoto) error
	AddDocument(db *gorm.DB, doc *models.RegulationDocument) error
	DeletePhoto(db *gorm.DB, photoID uint) (string, error)
	DeleteDocument(db *gorm.DB, docID uint) (string, error)
}

type RegulationRepositoryImpl struct{}

func NewRegulationRepository() RegulationRepository {
	return &RegulationRepositoryImpl{}
}

func (r *RegulationRepositoryImpl) Create(db *gorm.DB, regulation *models.Regulation) error {
	return db.Create(regulation).Error
}

func (r *RegulationRepositoryImpl) FindByID(db *gorm.DB, id uint, publishedOnly bool) (*models.Regulation, error) {
	var regulation models.Regulation
	query := preloadAttachments(db)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.First(&regulation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegulationNotFound
		}
		return nil, err
	}
	return &regulation, nil
}

func (r *RegulationRepositoryImpl) FindAll(db *gorm.DB, filter PublicationFilter) ([]models.Regulation, error) {
	var list []models.Regulation
	query := publicationQuery(preloadAttachments(db.Model(&models.Regulation{})), filter)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *RegulationRepositoryImpl) Categories(db *gorm.DB) ([]string, error) {
	var categories []string
	err := db.Model(&models.Regulation{}).
		Where("is_published = ? AND category IS NOT NULL AND category <> ''", true).
		Distinct().Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *RegulationRepositoryImpl) Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Regulation, error) {
	regulation, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}
	applyPublishedAt(updates, regulation.PublishedAt)
	if len(updates) > 0 {
		if err := db.Model(&models.Regulation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id, false)
}

func (r *RegulationRepositoryImpl) DeleteCascade(db *gorm.DB, id uint) ([]string, error) {
	regulation, err := r.FindByID(db, id, false)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(regulation.Photos)+len(regulation.Documents))
	for _, p := range regulation.Photos {
		paths = append(paths, p.FilePath)
	}
	for _, d := range regulation.Documents {
		paths = append(paths, d.FilePath)
	}

	if err := db.Where("regulation_id = ?", id).Delete(&models.RegulationPhoto{}).Error; err != nil {
		return nil, err
	}
	if err := db.Where("regulation_id = ?", id).Delete(&models.RegulationDocument{}).Error; err != nil {
		return nil, err
	}
	if err := db.Delete(&models.Regulation{}, id).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *RegulationRepositoryImpl) AddPhoto(db *gorm.DB, photo *models.RegulationPhoto) error {
	next, err := NextSortOrder(db, &models.RegulationPhoto{}, "regulation_id", photo.RegulationID)
	if err != nil {
		return err
	}
	photo.SortOrder = next
	return db.Create(photo).Error
}

func (r *RegulationRepositoryImpl) AddDocument(db *gorm.DB, doc *models.RegulationDocument) error {
	next, err := NextSortOrder(db, &models.RegulationDocument{}, "regulation_id", doc.RegulationID)
	if err != nil {
		return err
	}
	doc.SortOrder = next
	return db.Create(doc).Error
}

func (r *RegulationRepositoryImpl) DeletePhoto(db *gorm.DB, photoID uint) (string, error) {
	var photo models.RegulationPhoto
	return deleteAttachment(db, &photo, photoID, func() string { return photo.FilePath })
}

func (r *RegulationRepositoryImpl) DeleteDocument(db *gorm.DB, docID uint) (string, error) {
	var doc models.RegulationDocument
	return deleteAttachment(db, &doc, docID, func() string { return doc.FilePath })
}

// --- helpers ---

func preloadAttachments(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") })
}

func publicationQuery(query *gorm.DB, filter PublicationFilter) *gorm.DB {
	p := filter.Pagination.normalized()
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.PublishedOnly {
		query = query.Order("published_at DESC").Order("created_at DESC")
	} else {
		query = query.Order("created_at DESC")
	}
	return query.Order("id DESC").Offset(p.Skip).Limit(p.Limit)
}

// applyPublishedAt проставляет published_at при первой публикации
func applyPublishedAt(updates map[string]interface{}, current *time.Time) {
	published, ok := updates["is_published"].(bool)
	if ok && published && current == nil {
		if _, set := updates["published_at"]; !set {
			updates["published_at"] = time.Now()
		}
	}
}

func deleteAttachment(db *gorm.DB, dest interface{}, id uint, filePath func() string) (string, error) {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAttachmentNotFound
		}
		return "", err
	}
	if err := db.Delete(dest).Error; err != nil {
		return "", err
	}
	return filePath(), nil
}
