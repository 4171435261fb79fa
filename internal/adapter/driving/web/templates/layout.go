package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets the contact form swap its own 409, 422 and 502 fragments;
// other 4xx/5xx responses keep htmx's default of not swapping.
const htmxConfig = `{"responseHandling":[` +
	`{"code":"204","swap":false},` +
	`{"code":"[23]..","swap":true},` +
	`{"code":"(409|422|502)","swap":true,"error":false},` +
	`{"code":"[45]..","swap":false,"error":true}]}`

// Layout renders the HTML document shell around body.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw("<title>")
		m.text(title)
		m.raw("</title>")
		m.open("meta")
		m.attr("name", "htmx-config")
		m.attr("content", htmxConfig)
		m.close()
		m.raw(`<link rel="stylesheet" href="/static/site.css">`)
		m.open("script")
		m.attr("src", htmxScript)
		m.raw(" defer></script>")
		m.raw(`<script src="/static/site.js" defer></script>`)
		m.raw(`</head><body class="site">`)
		m.render(body)
		m.raw(`</body></html>`)
		return m.err
	})
}
