package frontend

import (
	"bytes"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// sanitizer strips anything dangerous from rendered post content.
// UGCPolicy allows the formatting Markdown produces but no scripts.
var sanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts post content to sanitized HTML.
// On a conversion error the raw content is shown escaped instead.
func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// Template helper functions

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown":   renderMarkdown,
		"formatTime": formatTime,
	}
}
