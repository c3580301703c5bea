package repositories

import (
	"gorm.io/gorm"
)

// Ordering - правила sort_order для дочерних коллекций (фото, характеристики, видео).
// sort_order - ключ сортировки, а не номер слота: пропуски и повторы допустимы.

// NextSortOrder возвращает MAX(sort_order)+1 среди детей родителя (1 для пустой коллекции).
// Основано на максимуме, а не на количестве, поэтому после удалений значения не повторяются.
func NextSortOrder(db *gorm.DB, model interface{}, parentColumn string, parentID uint) (int, error) {
	var maxOrder int
	err := db.Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// Reorder присваивает ребёнку на позиции i (с 1) sort_order = i.
// Id, которых нет в списке или которые принадлежат другому родителю, не меняются.
// Вызывать внутри транзакции.
func Reorder(db *gorm.DB, model interface{}, parentColumn string, parentID uint, ids []uint) error {
	for i, id := range ids {
		err := db.Model(model).
			Where("id = ? AND "+parentColumn+" = ?", id, parentID).
			Update("sort_order", i+1).Error
		if err != nil {
			return err
		}
	}
	return nil
}
