package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

// Render writes the named page template. Page data types carry any
// trusted HTML (notifications) as template.HTML; everything else is
// escaped normally.
func Render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// Notification wraps the already HTML-bearing notification string from
// the redirect query parameter for unescaped rendering.
func Notification(raw string) template.HTML {
	return template.HTML(raw)
}
