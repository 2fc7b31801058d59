package repository

import (
	"strings"

	"unicatalog/internal/app/ds"
)

// SearchFilter - параметры расширенного поиска. Пустое поле означает "без фильтра".
type SearchFilter struct {
	Query string
	City  string
	Type  string
}

// Поиск по подстроке в названии, описании, городе и специальностях.
// Пустой запрос возвращает весь каталог.
func (r *Repository) Search(query string) []ds.University {
	q := strings.ToLower(query)
	return r.filter(func(u ds.University) bool {
		return textMatch(u, q)
	})
}

// Расширенный поиск: текст И город И тип
func (r *Repository) SearchAdvanced(f SearchFilter) []ds.University {
	q := strings.ToLower(f.Query)
	return r.filter(func(u ds.University) bool {
		if f.Query != "" && !textMatch(u, q) {
			return false
		}
		if f.City != "" && !equalFold(u.City, f.City) {
			return false
		}
		if f.Type != "" && !equalFold(u.Type, f.Type) {
			return false
		}
		return true
	})
}

// q уже в нижнем регистре
func textMatch(u ds.University, q string) bool {
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Description), q) ||
		strings.Contains(strings.ToLower(u.City), q) ||
		strings.Contains(strings.ToLower(strings.Join(u.Specialties, " ")), q)
}
