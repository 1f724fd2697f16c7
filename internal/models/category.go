package models

// Category - справочник категорий обращений
type Category struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// CategoryIdentifier возвращает идентификатор категории или nil, если категория еще не сохранена
func CategoryIdentifier(category *Category) *int64 {
	if category == nil {
		return nil
	}
	return category.ID
}
