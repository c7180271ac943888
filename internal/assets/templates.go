// Package assets renders the markdown exports of the error log and the
// flashcard decks.
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"date": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"inc": func(i int) int {
		return i + 1
	},
}

// parseTemplateWithFallback prefers the template at templatePath and falls
// back to the embedded one when the path is empty, missing or invalid.
func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
