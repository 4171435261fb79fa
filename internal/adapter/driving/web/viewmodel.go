package web

import (
	"net/url"
	"strings"

	vm "github.com/nodestree/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
)

const (
	buttonLabelIdle    = "SEND MESSAGE"
	buttonLabelLoading = "SENDING..."

	noticeSuccess = "Thanks! Your message has been sent. We'll be in touch soon."
	noticeError   = "Something went wrong. Please try again."

	// refreshAfterSuccess matches application.SuccessResetDelay; the client
	// re-fetches the form once the server has returned it to idle.
	refreshAfterSuccess = "5s"
	refreshWhileLoading = "1s"

	emptyGalleryMessage = "No projects in this category yet."
)

// toHomePageViewModel assembles the full page from site content, the gallery
// selection and the rendered form state.
func toHomePageViewModel(site model.Site, projects []model.Project, category string, form vm.ContactFormViewModel) vm.HomePageViewModel {
	return vm.HomePageViewModel{
		Title:    site.Brand + " | Video Editing & Post-Production",
		Brand:    site.Brand,
		NavLinks: toLinkViewModels(site.NavLinks),
		Hero:     toHeroViewModel(site.Hero),
		Gallery:  toGalleryViewModel(site.Work, projects, category),
		Services: toServicesViewModel(site.Services),
		About: vm.AboutViewModel{
			Heading:  site.About.Heading,
			BodyHTML: site.About.BodyHTML,
			Portrait: site.About.Portrait,
		},
		Contact: toContactSectionViewModel(site.Contact),
		Form:    form,
		Footer: vm.FooterViewModel{
			Brand:     site.Brand,
			Copyright: site.Footer.Copyright,
			Links:     toLinkViewModels(site.Footer.Links),
		},
	}
}

func toLinkViewModels(links []model.Link) []vm.LinkViewModel {
	out := make([]vm.LinkViewModel, 0, len(links))
	for _, l := range links {
		out = append(out, vm.LinkViewModel{Label: l.Label, Href: l.Href})
	}
	return out
}

func toHeroViewModel(h model.Hero) vm.HeroViewModel {
	return vm.HeroViewModel{
		Eyebrow:         h.Eyebrow,
		Lines:           toHeadlineLines(h.Headline, h.OutlinedWord),
		BackgroundImage: h.BackgroundImage,
		CTA:             vm.LinkViewModel{Label: h.PrimaryCTA.Label, Href: h.PrimaryCTA.Href},
		ReelLabel:       h.ReelLabel,
	}
}

// toHeadlineLines splits the first occurrence of outlined out of the
// headline so the template can stroke it.
func toHeadlineLines(lines []string, outlined string) []vm.HeadlineLine {
	out := make([]vm.HeadlineLine, 0, len(lines))
	marked := outlined == ""
	for _, line := range lines {
		if !marked {
			if before, after, ok := strings.Cut(line, outlined); ok {
				out = append(out, vm.HeadlineLine{Before: before, Outlined: outlined, After: after})
				marked = true
				continue
			}
		}
		out = append(out, vm.HeadlineLine{Before: line})
	}
	return out
}

// toGalleryViewModel builds the filter bar and cards. The first category is
// the catch-all filter; an empty category selects it.
func toGalleryViewModel(work model.WorkSection, projects []model.Project, category string) vm.GalleryViewModel {
	if category == "" && len(work.Categories) > 0 {
		category = work.Categories[0]
	}

	filters := make([]vm.FilterViewModel, 0, len(work.Categories))
	for i, c := range work.Categories {
		query := ""
		if i > 0 {
			query = "?category=" + url.QueryEscape(c)
		}
		filters = append(filters, vm.FilterViewModel{
			Label:    c,
			Href:     "/" + query + "#work",
			Fragment: "/work" + query,
			Active:   strings.EqualFold(c, category),
		})
	}

	cards := make([]vm.ProjectCardViewModel, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, vm.ProjectCardViewModel{
			ID:              p.ID,
			Title:           p.Title,
			Category:        p.Category,
			Thumbnail:       p.Thumbnail,
			VideoURL:        p.VideoURL,
			DescriptionHTML: p.DescriptionHTML,
		})
	}

	g := vm.GalleryViewModel{
		Heading:  work.Heading,
		Intro:    work.Intro,
		Filters:  filters,
		Projects: cards,
	}
	if len(cards) == 0 {
		g.EmptyMessage = emptyGalleryMessage
	}
	return g
}

func toServicesViewModel(s model.ServicesSection) vm.ServicesViewModel {
	stats := make([]vm.StatViewModel, 0, len(s.Stats))
	for _, st := range s.Stats {
		stats = append(stats, vm.StatViewModel{Value: st.Value, Label: st.Label})
	}
	services := make([]vm.ServiceViewModel, 0, len(s.Services))
	for _, svc := range s.Services {
		features := svc.Features
		if features == nil {
			features = []string{}
		}
		services = append(services, vm.ServiceViewModel{
			Title:       svc.Title,
			Description: svc.Description,
			Icon:        svc.Icon,
			Features:    features,
		})
	}
	return vm.ServicesViewModel{
		Eyebrow:  s.Eyebrow,
		Lines:    toHeadlineLines(s.Headline, s.OutlinedWord),
		Intro:    s.Intro,
		Stats:    stats,
		Services: services,
	}
}

func toContactSectionViewModel(c model.ContactSection) vm.ContactSectionViewModel {
	socials := make([]vm.SocialViewModel, 0, len(c.Socials))
	for _, s := range c.Socials {
		socials = append(socials, vm.SocialViewModel{
			Network: s.Network,
			Label:   socialLabel(s.Network),
			Href:    s.Href,
		})
	}
	return vm.ContactSectionViewModel{
		HeadingLines: c.Heading,
		Blurb:        c.Blurb,
		Email:        c.Email,
		MailtoHref:   "mailto:" + c.Email,
		Socials:      socials,
	}
}

func socialLabel(network string) string {
	switch strings.ToLower(network) {
	case "instagram":
		return "Instagram"
	case "twitter":
		return "Twitter"
	case "linkedin":
		return "LinkedIn"
	default:
		return network
	}
}

// toContactFormViewModel maps a flow snapshot onto the form. fieldErrors is
// nil unless the last submit failed validation.
func toContactFormViewModel(snap application.FlowSnapshot, csrf string, fieldErrors map[string]string) vm.ContactFormViewModel {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	path := "/contact/" + snap.ID

	form := vm.ContactFormViewModel{
		FormID:       snap.ID,
		ActionURL:    path,
		RefreshURL:   path,
		CSRFToken:    csrf,
		Status:       string(snap.Status),
		Name:         snap.Fields.Name,
		Email:        snap.Fields.Email,
		ProjectType:  string(snap.Fields.ProjectType),
		Message:      snap.Fields.Message,
		ProjectTypes: toProjectTypeOptions(snap.Fields.ProjectType),
		Errors:       fieldErrors,
		ButtonLabel:  buttonLabelIdle,
	}

	switch snap.Status {
	case model.SubmissionStatusLoading:
		form.ButtonLabel = buttonLabelLoading
		form.Disabled = true
		form.RefreshAfter = refreshWhileLoading
	case model.SubmissionStatusSuccess:
		form.Notice = noticeSuccess
		form.NoticeKind = "success"
		form.RefreshAfter = refreshAfterSuccess
	case model.SubmissionStatusError:
		form.Notice = noticeError
		form.NoticeKind = "error"
	}
	return form
}

func toProjectTypeOptions(selected model.ProjectType) []vm.OptionViewModel {
	if !selected.Valid() {
		selected = model.ProjectTypes[0]
	}
	out := make([]vm.OptionViewModel, 0, len(model.ProjectTypes))
	for _, pt := range model.ProjectTypes {
		out = append(out, vm.OptionViewModel{
			Value:    string(pt),
			Label:    string(pt),
			Selected: pt == selected,
		})
	}
	return out
}
