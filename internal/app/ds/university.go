package ds

// University - запись каталога вузов. Все поля обязательны.
type University struct {
	ID            string   `toml:"id" json:"id"`
	Name          string   `toml:"name" json:"name"`
	NameEng       string   `toml:"name_eng" json:"name_eng"`
	City          string   `toml:"city" json:"city"`
	Description   string   `toml:"description" json:"description"`
	Type          string   `toml:"type" json:"type"`
	Rating        float64  `toml:"rating" json:"rating"` // 1-10
	FoundingYear  int      `toml:"founding_year" json:"founding_year"`
	StudentsCount int      `toml:"students_count" json:"students_count"`
	BudgetPlaces  int      `toml:"budget_places" json:"budget_places"`
	ContactEmail  string   `toml:"contact_email" json:"contact_email"`
	Website       string   `toml:"website" json:"website"`
	Address       string   `toml:"address" json:"address"`
	Phone         string   `toml:"phone" json:"phone"`
	Specialties   []string `toml:"specialties" json:"specialties"`
	PhotoFilename string   `toml:"photo_filename" json:"photo_filename"`
	Features      []string `toml:"features" json:"features"`
}
