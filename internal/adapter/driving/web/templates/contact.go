package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
)

// ContactForm renders the contact form in its current submission state. The
// wrapper is the htmx swap target for both submits and state refreshes.
func ContactForm(f vm.ContactFormViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("div", "contact-form")
		m.attr("id", "contact-form-"+f.FormID)
		m.attr("data-status", f.Status)
		if f.RefreshAfter != "" {
			m.href("hx-get", f.RefreshURL)
			m.attr("hx-trigger", "load delay:"+f.RefreshAfter)
			m.attr("hx-swap", "outerHTML")
		}
		m.close()

		m.open("form", "form")
		m.attr("method", "post")
		m.href("action", f.ActionURL)
		m.href("hx-post", f.ActionURL)
		m.attr("hx-target", "closest .contact-form")
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-disabled-elt", "find button[type='submit']")
		m.close()

		m.open("input")
		m.attr("type", "hidden")
		m.attr("name", "csrf_token")
		m.attr("value", f.CSRFToken)
		m.close()

		m.raw(`<div class="form__row">`)
		m.render(textField(f, "name", "Name", "text", "John Doe", f.Name))
		m.render(textField(f, "email", "Email", "email", "john@example.com", f.Email))
		m.raw(`</div>`)
		m.render(projectTypeField(f))
		m.render(messageField(f))

		if f.Notice != "" {
			m.open("p", "notice", "notice--"+f.NoticeKind)
			m.attr("role", "status")
			m.close()
			if f.NoticeKind == "success" {
				m.render(Icon("check-circle", ""))
			} else {
				m.render(Icon("alert-circle", ""))
			}
			m.text(f.Notice)
			m.end("p")
		}

		m.open("button", "button", "button--primary", "button--block")
		m.attr("type", "submit")
		m.flag("disabled", f.Disabled)
		m.close()
		if f.Disabled {
			m.render(Icon("loader", "icon--spin"))
		}
		m.text(f.ButtonLabel)
		m.end("button")

		m.raw(`</form></div>`)
		return m.err
	})
}

// fieldStart opens a labelled form group and returns the input id.
func fieldStart(m *markup, f vm.ContactFormViewModel, name, label string) string {
	id := f.FormID + "-" + name
	m.open("div", "field")
	if f.Errors[name] != "" {
		m.raw(` data-invalid`)
	}
	m.close()
	m.open("label", "field__label")
	m.attr("for", id)
	m.close()
	m.text(label)
	m.end("label")
	return id
}

// fieldEnd writes the field's validation message, if any, and closes the group.
func fieldEnd(m *markup, f vm.ContactFormViewModel, name string) {
	if msg := f.Errors[name]; msg != "" {
		m.open("p", "field__error")
		m.attr("id", f.FormID+"-"+name+"-error")
		m.close()
		m.text(msg)
		m.end("p")
	}
	m.end("div")
}

func errorAttrs(m *markup, f vm.ContactFormViewModel, name string) {
	if f.Errors[name] != "" {
		m.attr("aria-invalid", "true")
		m.attr("aria-describedby", f.FormID+"-"+name+"-error")
	}
}

func textField(f vm.ContactFormViewModel, name, label, inputType, placeholder, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		id := fieldStart(m, f, name, label)
		m.open("input", "field__input")
		m.attr("id", id)
		m.attr("type", inputType)
		m.attr("name", name)
		m.attr("placeholder", placeholder)
		m.attr("value", value)
		m.flag("required", true)
		errorAttrs(m, f, name)
		m.close()
		fieldEnd(m, f, name)
		return m.err
	})
}

func projectTypeField(f vm.ContactFormViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		id := fieldStart(m, f, "projectType", "Project Type")
		m.open("select", "field__input")
		m.attr("id", id)
		m.attr("name", "projectType")
		errorAttrs(m, f, "projectType")
		m.close()
		for _, o := range f.ProjectTypes {
			m.open("option")
			m.attr("value", o.Value)
			m.flag("selected", o.Selected)
			m.close()
			m.text(o.Label)
			m.end("option")
		}
		m.end("select")
		fieldEnd(m, f, "projectType")
		return m.err
	})
}

func messageField(f vm.ContactFormViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		id := fieldStart(m, f, "message", "Message")
		m.open("textarea", "field__input", "field__input--area")
		m.attr("id", id)
		m.attr("name", "message")
		m.attr("rows", "4")
		m.attr("placeholder", "Tell us about your project...")
		m.flag("required", true)
		errorAttrs(m, f, "message")
		m.close()
		m.text(f.Message)
		m.end("textarea")
		fieldEnd(m, f, "message")
		return m.err
	})
}
