// Package templates holds the templ components that render the studio page
// and its htmx fragments.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// markup writes HTML to w and keeps the first write error, so a component
// body reads as a flat sequence of elements and checks err once at the end.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

// raw writes s unescaped. Only for literal markup and sanitized HTML.
func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a URL attribute, replacing unsafe schemes.
func (m *markup) href(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

// flag writes a boolean attribute when on is true.
func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

// open writes a start tag with a class list; the tag is left unclosed when
// attrs follow, so callers finish it with close.
func (m *markup) open(tag string, classes ...string) {
	m.raw("<" + tag)
	if c := strings.Join(nonEmpty(classes), " "); c != "" {
		m.attr("class", c)
	}
}

func (m *markup) close() { m.raw(">") }

func (m *markup) end(tag string) { m.raw("</" + tag + ">") }

// el writes a complete element with escaped text content.
func (m *markup) el(tag, class, text string) {
	m.open(tag, class)
	m.close()
	m.text(text)
	m.end(tag)
}

func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func nonEmpty(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
