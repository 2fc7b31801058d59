package ds

// UniversityRow - плоская копия записи каталога в PostgreSQL.
// Таблица только для выгрузки, источником данных не является.
type UniversityRow struct {
	ID            string  `gorm:"primaryKey;type:varchar(64)"`
	Position      int     `gorm:"not null"` // порядок в каталоге
	Name          string  `gorm:"type:varchar(255);not null"`
	NameEng       string  `gorm:"type:varchar(255);not null"`
	City          string  `gorm:"type:varchar(100);not null;index"`
	Description   string  `gorm:"type:text"`
	Type          string  `gorm:"type:varchar(50);not null;index"`
	Rating        float64 `gorm:"type:decimal(3,1);not null"`
	FoundingYear  int     `gorm:"not null"`
	StudentsCount int     `gorm:"not null"`
	BudgetPlaces  int     `gorm:"not null"`
	ContactEmail  string  `gorm:"type:varchar(255)"`
	Website       string  `gorm:"type:varchar(255)"`
	Address       string  `gorm:"type:varchar(255)"`
	Phone         string  `gorm:"type:varchar(50)"`
	Specialties   string  `gorm:"type:text"` // через ", "
	PhotoFilename string  `gorm:"type:varchar(255)"`
	Features      string  `gorm:"type:text"` // через ", "
}

func (UniversityRow) TableName() string {
	return "universities"
}
