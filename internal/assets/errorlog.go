package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const errorLogTemplateName = "error-log.md.go.tmpl"

//go:embed templates/error-log.md.go.tmpl
var fallbackErrorLogTemplate string

// ErrorLogTemplate is the data passed to error log templates
type ErrorLogTemplate struct {
	GeneratedAt time.Time
	Entries     []ErrorLogEntry
}

type ErrorLogEntry struct {
	OriginalText  string
	CorrectedText string
	Explanation   string
	Timestamp     time.Time
}

func WriteErrorLog(output io.Writer, templatePath string, templateData ErrorLogTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, errorLogTemplateName, fallbackErrorLogTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
