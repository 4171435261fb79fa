package templates_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodestree/studiosite/internal/adapter/driving/web/templates"
	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
)

func TestContactForm_EscapesFieldValues(t *testing.T) {
	form := vm.ContactFormViewModel{
		FormID:      "f1",
		ActionURL:   "/contact/f1",
		Status:      "error",
		Name:        `"><script>alert(1)</script>`,
		Message:     "</textarea><b>hi</b>",
		ButtonLabel: "SEND MESSAGE",
		Errors:      map[string]string{},
	}

	var buf bytes.Buffer
	require.NoError(t, templates.ContactForm(form).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "<script>")
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, form.Name, doc.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, form.Message, doc.Find(`textarea[name="message"]`).Text())
	assert.Equal(t, 0, doc.Find("b").Length())
}

func TestContactForm_UnsafeActionIsReplaced(t *testing.T) {
	form := vm.ContactFormViewModel{FormID: "f1", ActionURL: "javascript:alert(1)", Errors: map[string]string{}}

	var buf bytes.Buffer
	require.NoError(t, templates.ContactForm(form).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "javascript:")
}

func TestIcon_UnknownNameRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, templates.Icon("no-such-icon", "").Render(context.Background(), &buf))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, templates.Icon("video", "big").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `class="icon big"`)
	assert.Contains(t, buf.String(), `data-icon="video"`)
}

func TestLayout_WrapsBody(t *testing.T) {
	body := templates.Icon("zap", "")

	var buf bytes.Buffer
	require.NoError(t, templates.Layout("Studio <Title>", body).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Studio <Title>", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find(`body svg[data-icon="zap"]`).Length())
	assert.Contains(t, doc.Find(`meta[name="htmx-config"]`).AttrOr("content", ""), "responseHandling")
}
