package snapshot

import (
	"fmt"

	"unicatalog/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store - выгрузка каталога в PostgreSQL.
// Каталог остается источником данных, таблица перезаписывается целиком.
type Store struct {
	db *gorm.DB
}

func New(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&ds.UniversityRow{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Replace заменяет содержимое таблицы одной транзакцией
func (s *Store) Replace(rows []ds.UniversityRow) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ds.UniversityRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear universities: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert universities: %w", err)
		}
		return nil
	})
}

// List возвращает снимок в порядке каталога
func (s *Store) List() ([]ds.UniversityRow, error) {
	var rows []ds.UniversityRow
	if err := s.db.Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
