package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"partnerevents/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each named email is three files: <name>_subject.txt, <name>.txt and <name>.html.
type templateRenderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses every embedded template up front, so a broken file fails at startup.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	text, err := texttemplate.New("text").Option("missingkey=error").ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	html, err := htmltemplate.New("html").Option("missingkey=error").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &templateRenderer{text: text, html: html}, nil
}

// Render executes the named email (e.g. "invitation") and returns its subject, html and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	if subject, err = execute(r.text, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if htmlBody, err = execute(r.html, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = execute(r.text, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	// subjects are single-line headers
	subject = strings.Join(strings.Fields(subject), " ")
	return subject, htmlBody, textBody, nil
}

type namedExecutor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

func execute(t namedExecutor, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
