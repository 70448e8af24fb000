// Package renderer turns reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/stockfolio"
)

//go:embed *.md
var templates embed.FS

// ReviewMarkdown renders a portfolio review, amounts are displayed in currency.
func ReviewMarkdown(r *stockfolio.Review, currency string) string {
	return RenderReview(NewReview(r, currency))
}

// RenderReview renders the Review struct to a markdown string.
func RenderReview(r *Review) string {
	partials := map[string]string{
		"review_title":   "review_title.md",
		"review_assets":  "review_assets.md",
		"review_summary": "review_summary.md",
	}
	return renderTemplate("review", "review.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
