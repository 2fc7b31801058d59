package handler

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"unicatalog/internal/app/storage"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Длина краткого описания в карточке, в символах
const previewLength = 150

var templateFuncs = template.FuncMap{
	"stars":       stars,
	"preview":     preview,
	"rating":      formatRating,
	"comma":       func(n int) string { return humanize.Comma(int64(n)) },
	"placeholder": func(url string) bool { return url == "" || url == storage.PlaceholderURL },
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// ⭐ по целой части рейтинга
func stars(rating float64) string {
	if rating < 0 {
		return ""
	}
	return strings.Repeat("⭐", int(rating))
}

func preview(description string) string {
	runes := []rune(description)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}

func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
