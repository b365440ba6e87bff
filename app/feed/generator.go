package feed

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed rss.tmpl
var rssTemplate string

var (
	tmplOnce sync.Once
	tmpl     *template.Template
	tmplErr  error
)

// loadTemplate parses the embedded feed template on first use. The parsed
// template is reused read-only for every channel in the run.
func loadTemplate() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.New("rss").Funcs(template.FuncMap{
			"xml":   escapeXML,
			"cdata": escapeCDATA,
		}).Parse(rssTemplate)
	})
	return tmpl, tmplErr
}

// Generator renders a Feed into an RSS document.
type Generator struct {
	version string
}

func NewGenerator(version string) *Generator {
	return &Generator{version: version}
}

func (g *Generator) Run(feed *Feed) (string, error) {
	t, err := loadTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load feed template: %w", err)
	}

	data := struct {
		*Feed
		Version string
	}{feed, g.version}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render feed: %w", err)
	}

	return buf.String(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// escapeCDATA splits any CDATA terminator inside the raw post body so the
// surrounding section stays well-formed. The body markup itself is
// intentionally not escaped.
func escapeCDATA(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}
