package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"unicatalog/internal/app/ds"
	"unicatalog/internal/app/dto"
	"unicatalog/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Подпись "любой тип" в интерфейсе, для движка это отсутствие фильтра
const anyTypeLabel = "любой"

// PhotoResolver превращает photo_filename в ссылку на картинку
type PhotoResolver interface {
	URL(ctx context.Context, filename string) string
}

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository *repository.Repository
	Photos     PhotoResolver
}

func NewAPIHandler(r *repository.Repository, photos PhotoResolver) *APIHandler {
	return &APIHandler{
		Repository: r,
		Photos:     photos,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

// normalizeType убирает подпись "любой", оставляя пустой фильтр
func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	if t == anyTypeLabel {
		return ""
	}
	return t
}

// bindingErrorMessage собирает понятное сообщение из ошибок валидатора
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Неверные параметры запроса"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "Неверные параметры запроса: " + strings.Join(parts, ", ")
}

func (h *APIHandler) photoURL(ctx context.Context, filename string) string {
	if h.Photos == nil {
		return ""
	}
	return h.Photos.URL(ctx, filename)
}

func (h *APIHandler) toResponse(ctx context.Context, u ds.University) dto.UniversityResponse {
	return dto.UniversityResponse{
		ID:            u.ID,
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
		Specialties:   u.Specialties,
		PhotoFilename: u.PhotoFilename,
		PhotoURL:      h.photoURL(ctx, u.PhotoFilename),
		Features:      u.Features,
	}
}

func (h *APIHandler) listResponse(ctx context.Context, universities []ds.University) dto.UniversityListResponse {
	items := make([]dto.UniversityResponse, len(universities))
	for i, u := range universities {
		items[i] = h.toResponse(ctx, u)
	}
	return dto.UniversityListResponse{
		Universities: items,
		Total:        len(items),
	}
}

// ============ ДОМЕН ВУЗЫ ============

// GetUniversities получает список вузов
// @Summary Получение списка вузов
// @Description Возвращает весь каталог или результат поиска. Текст ищется по подстроке в названии, описании, городе и специальностях; город и тип сравниваются без учета регистра. Тип "любой" означает отсутствие фильтра.
// @Tags Universities
// @Produce json
// @Param query query string false "Текст для поиска"
// @Param city query string false "Город"
// @Param type query string false "Тип вуза"
// @Success 200 {object} dto.UniversityListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/universities [get]
func (h *APIHandler) GetUniversities(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	filter := repository.SearchFilter{
		Query: req.Query,
		City:  strings.TrimSpace(req.City),
		Type:  normalizeType(req.Type),
	}

	var universities []ds.University
	switch {
	case filter == repository.SearchFilter{}:
		universities = h.Repository.GetAll()
	case filter.City == "" && filter.Type == "":
		universities = h.Repository.Search(filter.Query)
	default:
		universities = h.Repository.SearchAdvanced(filter)
	}

	logrus.Debugf("universities search %+v: %d found", filter, len(universities))
	c.JSON(http.StatusOK, h.listResponse(c.Request.Context(), universities))
}

// GetUniversity получает один вуз
// @Summary Получение вуза по ID
// @Description Возвращает полную карточку вуза
// @Tags Universities
// @Produce json
// @Param id path string true "ID вуза"
// @Success 200 {object} dto.UniversityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/universities/{id} [get]
func (h *APIHandler) GetUniversity(c *gin.Context) {
	id := c.Param("id")

	university, ok := h.Repository.GetByID(id)
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Вуз не найден")
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), university))
}

// GetCities получает список городов
// @Summary Список городов
// @Description Города каталога в порядке первого появления
// @Tags Filters
// @Produce json
// @Success 200 {object} dto.ValuesResponse
// @Router /api/cities [get]
func (h *APIHandler) GetCities(c *gin.Context) {
	cities := h.Repository.GetCities()
	c.JSON(http.StatusOK, dto.ValuesResponse{Values: cities, Total: len(cities)})
}

// GetCityUniversities получает вузы города
// @Summary Вузы города
// @Description Точное совпадение названия города без учета регистра
// @Tags Universities
// @Produce json
// @Param city path string true "Город"
// @Success 200 {object} dto.UniversityListResponse
// @Router /api/cities/{city}/universities [get]
func (h *APIHandler) GetCityUniversities(c *gin.Context) {
	universities := h.Repository.GetByCity(c.Param("city"))
	c.JSON(http.StatusOK, h.listResponse(c.Request.Context(), universities))
}

// GetTypes получает список типов вузов
// @Summary Список типов
// @Description Типы вузов в порядке первого появления
// @Tags Filters
// @Produce json
// @Success 200 {object} dto.ValuesResponse
// @Router /api/types [get]
func (h *APIHandler) GetTypes(c *gin.Context) {
	types := h.Repository.GetTypes()
	c.JSON(http.StatusOK, dto.ValuesResponse{Values: types, Total: len(types)})
}

// GetTypeUniversities получает вузы указанного типа
// @Summary Вузы по типу
// @Description Точное совпадение типа без учета регистра
// @Tags Universities
// @Produce json
// @Param type path string true "Тип вуза"
// @Success 200 {object} dto.UniversityListResponse
// @Router /api/types/{type}/universities [get]
func (h *APIHandler) GetTypeUniversities(c *gin.Context) {
	universities := h.Repository.GetByType(c.Param("type"))
	c.JSON(http.StatusOK, h.listResponse(c.Request.Context(), universities))
}

// ExportUniversities выгружает каталог в табличном виде
// @Summary Табличная выгрузка каталога
// @Description Плоские строки; специальности и особенности склеены через ", "
// @Tags Export
// @Produce json
// @Produce text/csv
// @Param format query string false "json или csv" Enums(json, csv)
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export/universities [get]
func (h *APIHandler) ExportUniversities(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	rows := h.Repository.ToRows()

	if req.Format == "csv" {
		var buf bytes.Buffer
		if err := repository.WriteCSV(&buf, rows); err != nil {
			logrus.Error("Error writing csv export: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка выгрузки")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="universities.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		out[i] = row
	}

	c.JSON(http.StatusOK, dto.ExportResponse{
		Columns: repository.Columns,
		Rows:    out,
		Total:   len(out),
	})
}
