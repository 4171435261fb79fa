package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
)

// Home renders the single-page site: navbar, hero, gallery, services, about,
// contact and footer, in that order.
func Home(page vm.HomePageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.render(navbar(page.Brand, page.NavLinks))
		m.raw(`<main>`)
		m.render(hero(page.Hero))
		m.render(work(page.Gallery))
		m.render(services(page.Services))
		m.render(about(page.About))
		m.render(contactSection(page.Contact, page.Form))
		m.raw(`</main>`)
		m.render(footer(page.Footer))
		return m.err
	})
}

func navbar(brand string, links []vm.LinkViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<nav class="navbar" data-navbar><div class="container navbar__inner">`)
		m.raw(`<a href="#" class="navbar__brand">`)
		m.text(brand)
		m.raw(`</a><div class="navbar__links">`)
		for _, l := range links {
			m.open("a", "navbar__link")
			m.href("href", l.Href)
			m.close()
			m.text(l.Label)
			m.end("a")
		}
		m.raw(`</div>`)
		m.raw(`<button type="button" class="navbar__toggle" aria-label="Toggle menu" aria-expanded="false" data-menu-toggle>`)
		m.render(Icon("menu", "icon--open"))
		m.render(Icon("x", "icon--close"))
		m.raw(`</button></div>`)
		m.raw(`<div class="mobile-menu" data-mobile-menu hidden>`)
		for _, l := range links {
			m.open("a", "mobile-menu__link")
			m.href("href", l.Href)
			m.attr("data-menu-link", "")
			m.close()
			m.text(l.Label)
			m.end("a")
		}
		m.raw(`</div></nav>`)
		return m.err
	})
}

// headline renders display lines, stroking each line's outlined word.
func headline(lines []vm.HeadlineLine) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		for i, line := range lines {
			if i > 0 {
				m.raw("<br>")
			}
			m.text(line.Before)
			if line.Outlined != "" {
				m.el("span", "text-outline", line.Outlined)
			}
			m.text(line.After)
		}
		return m.err
	})
}

func hero(h vm.HeroViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="hero" id="top"><div class="hero__backdrop">`)
		m.open("img", "hero__image")
		m.href("src", h.BackgroundImage)
		m.raw(` alt="" loading="eager"`)
		m.close()
		m.raw(`</div><div class="container hero__content">`)
		m.el("p", "eyebrow", h.Eyebrow)
		m.raw(`<h1 class="display">`)
		m.render(headline(h.Lines))
		m.raw(`</h1><div class="hero__actions">`)
		m.open("a", "button button--primary")
		m.href("href", h.CTA.Href)
		m.close()
		m.text(h.CTA.Label)
		m.render(Icon("arrow-right", ""))
		m.end("a")
		m.raw(`<button type="button" class="button button--ghost reel">`)
		m.raw(`<span class="reel__icon">`)
		m.render(Icon("play", ""))
		m.raw(`</span>`)
		m.text(h.ReelLabel)
		m.raw(`</button></div></div></section>`)
		return m.err
	})
}

func services(s vm.ServicesViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="section section--dark" id="services"><div class="container services">`)
		m.raw(`<div class="services__intro">`)
		m.el("p", "eyebrow", s.Eyebrow)
		m.raw(`<h2 class="heading">`)
		m.render(headline(s.Lines))
		m.raw(`</h2>`)
		m.el("p", "lead", s.Intro)
		m.raw(`<dl class="stats">`)
		for _, st := range s.Stats {
			m.raw(`<div class="stat">`)
			m.el("dt", "stat__value", st.Value)
			m.el("dd", "stat__label", st.Label)
			m.raw(`</div>`)
		}
		m.raw(`</dl></div><div class="services__list">`)
		for _, svc := range s.Services {
			m.raw(`<article class="service-card">`)
			m.raw(`<div class="service-card__icon">`)
			m.render(Icon(svc.Icon, ""))
			m.raw(`</div>`)
			m.el("h3", "service-card__title", svc.Title)
			m.el("p", "service-card__description", svc.Description)
			m.raw(`<ul class="tags">`)
			for _, f := range svc.Features {
				m.el("li", "tag", f)
			}
			m.raw(`</ul></article>`)
		}
		m.raw(`</div></div></section>`)
		return m.err
	})
}

func about(a vm.AboutViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="section" id="about"><div class="container about">`)
		m.raw(`<figure class="about__portrait">`)
		m.open("img")
		m.href("src", a.Portrait)
		m.raw(` alt="Portrait of the editor" loading="lazy"`)
		m.close()
		m.raw(`</figure><div class="about__body">`)
		m.el("h2", "heading", a.Heading)
		m.raw(`<div class="prose">`)
		// BodyHTML was sanitized by bluemonday when the content loaded.
		m.raw(a.BodyHTML)
		m.raw(`</div></div></div></section>`)
		return m.err
	})
}

func contactSection(c vm.ContactSectionViewModel, form vm.ContactFormViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="section section--dark" id="contact"><div class="container contact">`)
		m.raw(`<div class="contact__intro"><h2 class="display">`)
		for i, line := range c.HeadingLines {
			if i > 0 {
				m.raw("<br>")
			}
			m.text(line)
		}
		m.raw(`</h2>`)
		m.el("p", "lead", c.Blurb)
		m.open("a", "contact__email")
		m.href("href", c.MailtoHref)
		m.close()
		m.render(Icon("mail", ""))
		m.text(c.Email)
		m.end("a")
		m.raw(`<div class="socials">`)
		for _, s := range c.Socials {
			m.open("a", "socials__link")
			m.href("href", s.Href)
			m.attr("aria-label", s.Label)
			m.close()
			m.render(Icon(s.Network, ""))
			m.end("a")
		}
		m.raw(`</div></div>`)
		m.render(ContactForm(form))
		m.raw(`</div></section>`)
		return m.err
	})
}

func footer(f vm.FooterViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<footer class="footer"><div class="container footer__inner">`)
		m.el("span", "footer__brand", f.Brand)
		m.el("p", "footer__copyright", f.Copyright)
		m.raw(`<div class="footer__links">`)
		for _, l := range f.Links {
			m.open("a", "footer__link")
			m.href("href", l.Href)
			m.close()
			m.text(l.Label)
			m.end("a")
		}
		m.raw(`</div></div></footer>`)
		return m.err
	})
}
