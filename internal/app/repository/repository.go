package repository

import (
	"strings"

	"unicatalog/internal/app/catalog"
	"unicatalog/internal/app/ds"
)

// Repository - запросы к каталогу вузов. Состояния не хранит,
// каждая операция - чистая функция от каталога и аргументов.
type Repository struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Repository {
	return &Repository{
		catalog: c,
	}
}

// Получить все вузы в порядке каталога
func (r *Repository) GetAll() []ds.University {
	return r.catalog.All()
}

// Список городов для фильтра
func (r *Repository) GetCities() []string {
	return r.catalog.Cities()
}

// Список типов для фильтра
func (r *Repository) GetTypes() []string {
	return r.catalog.Types()
}

// filter отбирает записи с сохранением порядка каталога.
// Результат всегда не nil, чтобы в JSON отдавался [], а не null.
func (r *Repository) filter(match func(u ds.University) bool) []ds.University {
	result := make([]ds.University, 0)
	r.catalog.Each(func(u ds.University) bool {
		if match(u) {
			result = append(result, u)
		}
		return true
	})
	return result
}

func equalFold(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
