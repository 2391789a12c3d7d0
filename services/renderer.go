package services

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"market-mood/models"
	"market-mood/storage"
	"market-mood/utils"
)

// PageRenderer binds a MarketReport into the page template and hands the
// result to a PageWriter.
type PageRenderer struct {
	templatePath string
	writer       storage.PageWriter
	logger       *utils.Logger
}

// NewPageRenderer creates a PageRenderer for the template at templatePath.
func NewPageRenderer(templatePath string, writer storage.PageWriter, logger *utils.Logger) *PageRenderer {
	return &PageRenderer{
		templatePath: templatePath,
		writer:       writer,
		logger:       logger,
	}
}

// Render renders report and writes the page. Failures are logged and
// reported as false; the previous page is left untouched when the template
// itself fails.
func (r *PageRenderer) Render(report *models.MarketReport) bool {
	r.logger.Info("[render] Generating HTML file...")

	var buf bytes.Buffer
	if err := r.RenderTo(&buf, report); err != nil {
		r.logger.Error("[render] Error generating HTML: %v", err)
		return false
	}

	if err := r.writer.WritePage(buf.Bytes()); err != nil {
		r.logger.Error("[render] Error generating HTML: %v", err)
		return false
	}

	r.logger.Info("[render] Successfully generated %s", r.writer.Path())
	return true
}

// RenderTo executes the template for report into w. Every value except the
// embed snippet is HTML-escaped by html/template; a template that references
// a variable the report does not provide is an error.
func (r *PageRenderer) RenderTo(w io.Writer, report *models.MarketReport) error {
	if report == nil {
		return fmt.Errorf("render: nil report")
	}
	if !report.StatusClass.Valid() {
		return fmt.Errorf("render: unknown status class %q", report.StatusClass)
	}

	tmpl, err := template.New(filepath.Base(r.templatePath)).
		Option("missingkey=error").
		ParseFiles(r.templatePath)
	if err != nil {
		return fmt.Errorf("render: load template: %w", err)
	}

	if err := tmpl.Execute(w, report.TemplateData()); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}
