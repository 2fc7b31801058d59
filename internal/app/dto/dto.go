package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ============ Вузы (Universities) ============

type UniversityResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameEng       string   `json:"name_eng"`
	City          string   `json:"city"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	Rating        float64  `json:"rating"`
	FoundingYear  int      `json:"founding_year"`
	StudentsCount int      `json:"students_count"`
	BudgetPlaces  int      `json:"budget_places"`
	ContactEmail  string   `json:"contact_email"`
	Website       string   `json:"website"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Specialties   []string `json:"specialties"`
	PhotoFilename string   `json:"photo_filename"`
	PhotoURL      string   `json:"photo_url"`
	Features      []string `json:"features"`
}

type UniversityListResponse struct {
	Universities []UniversityResponse `json:"universities"`
	Total        int                  `json:"total"`
}

// SearchRequest - параметры GET /api/universities.
// Type "любой" означает отсутствие фильтра по типу.
type SearchRequest struct {
	Query string `form:"query" binding:"omitempty,max=200"`
	City  string `form:"city" binding:"omitempty,max=100"`
	Type  string `form:"type" binding:"omitempty,max=100"`
}

type ExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv"`
}

type ValuesResponse struct {
	Values []string `json:"values"`
	Total  int      `json:"total"`
}

type ExportResponse struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Total   int              `json:"total"`
}
