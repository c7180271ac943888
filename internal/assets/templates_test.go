package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
	return templatePath
}

func TestParseTemplateWithFallback(t *testing.T) {
	tests := []struct {
		name             string
		templatePath     string
		wantTemplateName string
		wantContents     string
	}{
		{
			name:             "uses filesystem template when available",
			templatePath:     writeTemplate(t, `Custom: {{ join .Words ", " }}`),
			wantTemplateName: "custom.md.go.tmpl",
			wantContents:     "Custom: bonjour, merci",
		},
		{
			name:             "uses embedded template when file doesn't exist",
			templatePath:     "/non/existent/invalid.md.go.tmpl",
			wantTemplateName: "fallback",
			wantContents:     "Fallback: 2",
		},
		{
			name:             "uses embedded template when path is empty",
			templatePath:     "",
			wantTemplateName: "fallback",
			wantContents:     "Fallback: 2",
		},
		{
			name:             "uses embedded template when filesystem template is invalid",
			templatePath:     writeTemplate(t, `{{ .Words `),
			wantTemplateName: "fallback",
			wantContents:     "Fallback: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTemplateWithFallback(tt.templatePath, "fallback", `Fallback: {{ len .Words }}`)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, got.Name())

			var buf bytes.Buffer
			require.NoError(t, got.Execute(&buf, struct{ Words []string }{Words: []string{"bonjour", "merci"}}))
			assert.Equal(t, tt.wantContents, buf.String())
		})
	}
}

func TestParseTemplateWithFallback_InvalidEmbeddedTemplate(t *testing.T) {
	_, err := parseTemplateWithFallback("", "fallback", `{{ if }}`)
	assert.ErrorContains(t, err, "failed to parse embedded template")
}

func TestWriteFlashcards(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFlashcards(&buf, "", FlashcardTemplate{
		GeneratedAt: generatedAt,
		Decks: []FlashcardDeck{
			{
				Name: "Personal",
				Cards: []FlashcardCard{
					{Front: "le chat", Back: "el gato", Example: "Le chat dort."},
					{Front: "le chien", Back: "el perro"},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "# Flashcards\n\nGenerado el 2025-03-01 10:00\n"+
		"\n## Personal (2)\n\n| Francés | Español | Ejemplo |\n|---|---|---|\n"+
		"| le chat | el gato | Le chat dort. |\n"+
		"| le chien | el perro |  |\n"+
		"\n", buf.String())
}

func TestWriteErrorLog(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string
		data         ErrorLogTemplate
		wantContains []string
		wantExact    string
	}{
		{
			name: "embedded template",
			data: ErrorLogTemplate{
				GeneratedAt: generatedAt,
				Entries: []ErrorLogEntry{
					{
						OriginalText:  "Je suis 20 ans",
						CorrectedText: "J'ai 20 ans",
						Explanation:   "Se usa avoir para la edad.",
						Timestamp:     generatedAt.Add(-time.Hour),
					},
				},
			},
			wantContains: []string{
				"# Registro de errores",
				"1 corrección\n",
				"## 1. J'ai 20 ans",
				"- **Original:** ~~Je suis 20 ans~~",
				"- **Fecha:** 2025-03-01 09:00",
				"Se usa avoir para la edad.",
			},
		},
		{
			name:         "embedded template without entries",
			data:         ErrorLogTemplate{GeneratedAt: generatedAt},
			wantContains: []string{"0 correcciones", "No hay errores guardados."},
		},
		{
			name:         "custom template",
			templatePath: writeTemplate(t, `{{ range .Entries }}{{ .OriginalText }} -> {{ .CorrectedText }};{{ end }}`),
			data: ErrorLogTemplate{
				Entries: []ErrorLogEntry{
					{OriginalText: "la problème", CorrectedText: "le problème"},
					{OriginalText: "je va", CorrectedText: "je vais"},
				},
			},
			wantExact: "la problème -> le problème;je va -> je vais;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteErrorLog(&buf, tt.templatePath, tt.data))
			if tt.wantExact != "" {
				assert.Equal(t, tt.wantExact, buf.String())
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteErrorLog_ExecuteError(t *testing.T) {
	templatePath := writeTemplate(t, `{{ .Missing }}`)
	err := WriteErrorLog(&bytes.Buffer{}, templatePath, ErrorLogTemplate{})
	assert.ErrorContains(t, err, "tmpl.Execute()")
}
