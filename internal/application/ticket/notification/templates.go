package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Message kinds, also used as metric labels.
const (
	KindReceived   = "received"
	KindStatus     = "status"
	KindPriority   = "priority"
	KindAssignment = "assignment"
	KindReply      = "reply"
)

var kinds = []string{KindReceived, KindStatus, KindPriority, KindAssignment, KindReply}

// templateData is the union of fields the message templates read.
type templateData struct {
	TicketID  uint
	Reference string
	Title     string
	Priority  string
	Old       string
	New       string
	Assignee  string
	Author    string
	BodyHTML  template.HTML
}

type renderer struct {
	templates map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{templates: make(map[string]*template.Template, len(kinds))}
	for _, kind := range kinds {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+kind+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		r.templates[kind] = t
	}
	return r, nil
}

func (r *renderer) render(kind string, data templateData) (string, error) {
	t, ok := r.templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown notification kind %q", kind)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", kind, err)
	}
	return buf.String(), nil
}
