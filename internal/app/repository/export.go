package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"unicatalog/internal/app/ds"
)

// Разделитель для списков в плоском представлении
const listSeparator = ", "

// Row - плоская запись для табличной выгрузки: имя колонки -> скалярное значение.
type Row map[string]any

// Columns - порядок колонок выгрузки
var Columns = []string{
	"id",
	"name",
	"name_eng",
	"city",
	"description",
	"type",
	"rating",
	"founding_year",
	"students_count",
	"budget_places",
	"contact_email",
	"website",
	"address",
	"phone",
	"specialties",
	"photo_filename",
	"features",
}

// ToRow превращает запись в плоскую строку таблицы.
// Меняются только specialties и features: они склеиваются через ", ".
func ToRow(u ds.University) Row {
	return Row{
		"id":             u.ID,
		"name":           u.Name,
		"name_eng":       u.NameEng,
		"city":           u.City,
		"description":    u.Description,
		"type":           u.Type,
		"rating":         u.Rating,
		"founding_year":  u.FoundingYear,
		"students_count": u.StudentsCount,
		"budget_places":  u.BudgetPlaces,
		"contact_email":  u.ContactEmail,
		"website":        u.Website,
		"address":        u.Address,
		"phone":          u.Phone,
		"specialties":    strings.Join(u.Specialties, listSeparator),
		"photo_filename": u.PhotoFilename,
		"features":       strings.Join(u.Features, listSeparator),
	}
}

// Получить весь каталог в табличном виде
func (r *Repository) ToRows() []Row {
	rows := make([]Row, 0, r.catalog.Len())
	r.catalog.Each(func(u ds.University) bool {
		rows = append(rows, ToRow(u))
		return true
	})
	return rows
}

// Получить строки для снимка в БД, Position - порядок в каталоге
func (r *Repository) ToDBRows() []ds.UniversityRow {
	rows := make([]ds.UniversityRow, 0, r.catalog.Len())
	r.catalog.Each(func(u ds.University) bool {
		rows = append(rows, ds.UniversityRow{
			ID:            u.ID,
			Position:      len(rows) + 1,
			Name:          u.Name,
			NameEng:       u.NameEng,
			City:          u.City,
			Description:   u.Description,
			Type:          u.Type,
			Rating:        u.Rating,
			FoundingYear:  u.FoundingYear,
			StudentsCount: u.StudentsCount,
			BudgetPlaces:  u.BudgetPlaces,
			ContactEmail:  u.ContactEmail,
			Website:       u.Website,
			Address:       u.Address,
			Phone:         u.Phone,
			Specialties:   strings.Join(u.Specialties, listSeparator),
			PhotoFilename: u.PhotoFilename,
			Features:      strings.Join(u.Features, listSeparator),
		})
		return true
	})
	return rows
}

// WriteCSV пишет строки с заголовком в порядке Columns.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(Columns))
	for _, row := range rows {
		for i, col := range Columns {
			record[i] = formatCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %v: %w", row["id"], err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// 9.0 остается 9.0, как в исходных данных
		s := fmt.Sprintf("%g", val)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(val)
	}
}
