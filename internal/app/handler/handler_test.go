package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"unicatalog/internal/app/storage"

	"github.com/gin-gonic/gin"
)

func newPageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHandler(newTestRepository(t), storage.NewPhotos(nil, nil, 0))
	h.RegisterTemplates(r)
	h.RegisterRoutes(r)
	return r
}

func TestUniversitiesPage(t *testing.T) {
	r := newPageRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Назарбаев Университет",
		"/university/nu",
		"⭐⭐⭐⭐⭐⭐⭐⭐⭐ 9.8/10",
		"Фото будет загружено",
		`<option value="любой" selected>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestUniversitiesPageFilters(t *testing.T) {
	r := newPageRouter(t)

	v := url.Values{}
	v.Set("city", "Астана")
	v.Set("type", "национальный")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities?"+v.Encode(), nil))

	body := w.Body.String()
	if !strings.Contains(body, "/university/enu") {
		t.Error("enu expected on the page")
	}
	if strings.Contains(body, "/university/nu\"") {
		t.Error("nu must be filtered out")
	}
}

func TestUniversitiesPageEmpty(t *testing.T) {
	r := newPageRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities?query=xyz", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ничего не найдено") {
		t.Errorf("expected empty result message, got %d", w.Code)
	}
}

func TestUniversityDetailPage(t *testing.T) {
	r := newPageRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/university/kaznu", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Казахский национальный университет имени аль-Фараби",
		"Количество студентов: 20,000",
		"• Естественные науки",
		"✓ Ведущий классический вуз",
		"Фото университета еще не загружено",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestUniversityDetailNotFound(t *testing.T) {
	r := newPageRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/university/mit", nil))

	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Вуз не найден") {
		t.Errorf("expected 404 page, got %d", w.Code)
	}
}

func TestRootRedirect(t *testing.T) {
	r := newPageRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/universities" {
		t.Errorf("unexpected redirect: %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestTemplateFuncs(t *testing.T) {
	if got := stars(9.8); got != strings.Repeat("⭐", 9) {
		t.Errorf("stars(9.8) = %s", got)
	}
	if got := stars(-1); got != "" {
		t.Errorf("stars(-1) = %s", got)
	}

	short := "Короткое описание"
	if got := preview(short); got != short+"..." {
		t.Errorf("preview(short) = %s", got)
	}

	long := strings.Repeat("я", 200)
	if got := preview(long); got != strings.Repeat("я", previewLength)+"..." {
		t.Errorf("preview must cut by runes, got %d runes", len([]rune(got)))
	}

	if got := formatRating(9); got != "9.0" {
		t.Errorf("formatRating(9) = %s", got)
	}
}
