package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
)

func TestToHeadlineLines(t *testing.T) {
	lines := toHeadlineLines([]string{"WE CRAFT", "STORIES THAT", "RESONATE."}, "STORIES")

	assert.Equal(t, []vm.HeadlineLine{
		{Before: "WE CRAFT"},
		{Before: "", Outlined: "STORIES", After: " THAT"},
		{Before: "RESONATE."},
	}, lines)
}

func TestToHeadlineLines_OutlinesFirstMatchOnly(t *testing.T) {
	lines := toHeadlineLines([]string{"GO", "GO"}, "GO")

	assert.Equal(t, "GO", lines[0].Outlined)
	assert.Equal(t, "GO", lines[1].Before)
	assert.Empty(t, lines[1].Outlined)
}

func TestToContactFormViewModel_States(t *testing.T) {
	tests := []struct {
		status      model.SubmissionStatus
		label       string
		disabled    bool
		noticeKind  string
		refreshWait string
	}{
		{model.SubmissionStatusIdle, "SEND MESSAGE", false, "", ""},
		{model.SubmissionStatusLoading, "SENDING...", true, "", "1s"},
		{model.SubmissionStatusSuccess, "SEND MESSAGE", false, "success", "5s"},
		{model.SubmissionStatusError, "SEND MESSAGE", false, "error", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			snap := application.FlowSnapshot{ID: "abc", Status: tt.status}

			form := toContactFormViewModel(snap, "tok", nil)

			assert.Equal(t, tt.label, form.ButtonLabel)
			assert.Equal(t, tt.disabled, form.Disabled)
			assert.Equal(t, tt.noticeKind, form.NoticeKind)
			assert.Equal(t, tt.refreshWait, form.RefreshAfter)
			assert.Equal(t, "/contact/abc", form.ActionURL)
			assert.NotNil(t, form.Errors)
		})
	}
}

func TestToProjectTypeOptions_DefaultsUnknownSelection(t *testing.T) {
	opts := toProjectTypeOptions(model.ProjectType("Wedding"))

	assert.Len(t, opts, len(model.ProjectTypes))
	assert.True(t, opts[0].Selected)
	for _, o := range opts[1:] {
		assert.False(t, o.Selected)
	}
}

func TestToGalleryViewModel_Filters(t *testing.T) {
	work := model.WorkSection{Categories: []string{"All", "Music Video"}}

	g := toGalleryViewModel(work, nil, "")

	assert.True(t, g.Filters[0].Active)
	assert.Equal(t, "/#work", g.Filters[0].Href)
	assert.Equal(t, "/work", g.Filters[0].Fragment)
	assert.Equal(t, "/work?category=Music+Video", g.Filters[1].Fragment)
	assert.NotEmpty(t, g.EmptyMessage)
}
