package handler

import (
	"context"
	"net/http"
	"strings"

	"unicatalog/internal/app/ds"
	"unicatalog/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler отдает HTML-страницы каталога
type Handler struct {
	Repository *repository.Repository
	Photos     PhotoResolver
}

func NewHandler(r *repository.Repository, photos PhotoResolver) *Handler {
	return &Handler{Repository: r, Photos: photos}
}

// Карточка вуза для шаблона
type universityCard struct {
	ds.University
	PhotoURL string
}

// Регистрация шаблонов
func (h *Handler) RegisterTemplates(router *gin.Engine) {
	router.SetHTMLTemplate(loadTemplates())
}

// Регистрация маршрутов
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/universities")
	})
	router.GET("/universities", h.GetUniversities)
	router.GET("/university/:id", h.GetUniversityDetail)
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, template, message string) {
	logrus.Warnf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, message)
	ctx.HTML(errorStatusCode, template, gin.H{"error": message})
}

func (h *Handler) card(ctx context.Context, u ds.University) universityCard {
	card := universityCard{University: u}
	if h.Photos != nil {
		card.PhotoURL = h.Photos.URL(ctx, u.PhotoFilename)
	}
	return card
}

// 1. Список вузов с поиском и фильтрами
func (h *Handler) GetUniversities(ctx *gin.Context) {
	searchQuery := ctx.Query("query")
	city := strings.TrimSpace(ctx.Query("city"))
	uniType := ctx.Query("type")

	universities := h.Repository.SearchAdvanced(repository.SearchFilter{
		Query: searchQuery,
		City:  city,
		Type:  normalizeType(uniType),
	})

	cards := make([]universityCard, len(universities))
	for i, u := range universities {
		cards[i] = h.card(ctx.Request.Context(), u)
	}

	if uniType == "" {
		uniType = anyTypeLabel
	}

	ctx.HTML(http.StatusOK, "universities.html", gin.H{
		"universities": cards,
		"query":        searchQuery,
		"city":         city,
		"type":         uniType,
		"cities":       h.Repository.GetCities(),
		"types":        append([]string{anyTypeLabel}, h.Repository.GetTypes()...),
	})
}

// 2. Страница одного вуза
func (h *Handler) GetUniversityDetail(ctx *gin.Context) {
	university, ok := h.Repository.GetByID(ctx.Param("id"))
	if !ok {
		h.errorHandler(ctx, http.StatusNotFound, "university.html", "Вуз не найден")
		return
	}

	ctx.HTML(http.StatusOK, "university.html", gin.H{
		"university": h.card(ctx.Request.Context(), university),
	})
}
