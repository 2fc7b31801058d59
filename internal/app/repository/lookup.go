package repository

import "unicatalog/internal/app/ds"

// Получить вуз по ID (точное совпадение с учетом регистра)
func (r *Repository) GetByID(id string) (ds.University, bool) {
	return r.catalog.Get(id)
}

// Вузы города, сравнение без учета регистра
func (r *Repository) GetByCity(city string) []ds.University {
	return r.filter(func(u ds.University) bool {
		return equalFold(u.City, city)
	})
}

// Вузы указанного типа, сравнение без учета регистра
func (r *Repository) GetByType(uniType string) []ds.University {
	return r.filter(func(u ds.University) bool {
		return equalFold(u.Type, uniType)
	})
}
