package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
)

func work(g vm.GalleryViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="section" id="work"><div class="container">`)
		m.raw(`<header class="section__header">`)
		m.el("h2", "heading", g.Heading)
		m.el("p", "lead", g.Intro)
		m.raw(`</header>`)
		m.render(Gallery(g))
		m.raw(`</div></section>`)
		return m.err
	})
}

// Gallery renders the filter bar and project grid. It is also the fragment
// htmx swaps in when a filter is chosen.
func Gallery(g vm.GalleryViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<div id="gallery" class="gallery">`)
		m.raw(`<div class="filters" role="toolbar" aria-label="Filter projects">`)
		for _, f := range g.Filters {
			active := ""
			if f.Active {
				active = "filter--active"
			}
			m.open("a", "filter", active)
			m.href("href", f.Href)
			m.href("hx-get", f.Fragment)
			m.attr("hx-target", "#gallery")
			m.attr("hx-swap", "outerHTML")
			m.attr("hx-push-url", f.Href)
			if f.Active {
				m.attr("aria-current", "true")
			}
			m.close()
			m.text(f.Label)
			m.end("a")
		}
		m.raw(`</div>`)

		if g.EmptyMessage != "" {
			m.el("p", "gallery__empty", g.EmptyMessage)
		}

		m.raw(`<div class="grid">`)
		for _, p := range g.Projects {
			m.render(projectCard(p))
		}
		m.raw(`</div></div>`)
		return m.err
	})
}

func projectCard(p vm.ProjectCardViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("article", "card")
		m.attr("data-project-id", strconv.Itoa(p.ID))
		m.close()
		m.open("a", "card__media")
		m.href("href", p.VideoURL)
		m.close()
		m.open("img", "card__thumbnail")
		m.href("src", p.Thumbnail)
		m.attr("alt", p.Title)
		m.raw(` loading="lazy"`)
		m.close()
		m.raw(`<span class="card__play">`)
		m.render(Icon("play", ""))
		m.raw(`</span></a><div class="card__body">`)
		m.el("span", "card__category", p.Category)
		m.el("h3", "card__title", p.Title)
		m.raw(`<div class="card__description">`)
		m.raw(p.DescriptionHTML)
		m.raw(`</div></div></article>`)
		return m.err
	})
}
