// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// HomePageViewModel holds everything the single-page layout renders.
type HomePageViewModel struct {
	Title    string
	Brand    string
	NavLinks []LinkViewModel
	Hero     HeroViewModel
	Gallery  GalleryViewModel
	Services ServicesViewModel
	About    AboutViewModel
	Contact  ContactSectionViewModel
	Form     ContactFormViewModel
	Footer   FooterViewModel
}

// LinkViewModel is a labelled href.
type LinkViewModel struct {
	Label string
	Href  string
}

// HeadlineLine is one line of a display headline. Outlined is rendered with
// the stroke style between Before and After.
type HeadlineLine struct {
	Before   string
	Outlined string
	After    string
}

// HeroViewModel holds the intro section.
type HeroViewModel struct {
	Eyebrow         string
	Lines           []HeadlineLine
	BackgroundImage string
	CTA             LinkViewModel
	ReelLabel       string
}

// GalleryViewModel holds the project grid and its filter bar.
type GalleryViewModel struct {
	Heading      string
	Intro        string
	Filters      []FilterViewModel
	Projects     []ProjectCardViewModel
	EmptyMessage string
}

// FilterViewModel is one category button in the filter bar.
type FilterViewModel struct {
	Label    string
	Href     string // full-page link, used without JavaScript
	Fragment string // htmx target returning only the gallery
	Active   bool
}

// ProjectCardViewModel holds one gallery card.
type ProjectCardViewModel struct {
	ID              int
	Title           string
	Category        string
	Thumbnail       string
	VideoURL        string
	DescriptionHTML string
}

// ServicesViewModel holds the services section.
type ServicesViewModel struct {
	Eyebrow  string
	Lines    []HeadlineLine
	Intro    string
	Stats    []StatViewModel
	Services []ServiceViewModel
}

// StatViewModel is a headline number.
type StatViewModel struct {
	Value string
	Label string
}

// ServiceViewModel holds one service card.
type ServiceViewModel struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

// AboutViewModel holds the biography section. BodyHTML is already sanitized.
type AboutViewModel struct {
	Heading  string
	BodyHTML string
	Portrait string
}

// ContactSectionViewModel holds the static half of the contact section.
type ContactSectionViewModel struct {
	HeadingLines []string
	Blurb        string
	Email        string
	MailtoHref   string
	Socials      []SocialViewModel
}

// SocialViewModel is one social icon link.
type SocialViewModel struct {
	Network string
	Label   string
	Href    string
}

// ContactFormViewModel holds presentation-ready data for the contact form in
// one of its four submission states.
type ContactFormViewModel struct {
	FormID     string
	ActionURL  string // POST target for the submission
	RefreshURL string // GET target returning the current form state
	CSRFToken  string
	Status     string

	Name         string
	Email        string
	ProjectType  string
	Message      string
	ProjectTypes []OptionViewModel
	Errors       map[string]string

	ButtonLabel string
	Disabled    bool
	Notice      string
	NoticeKind  string // "success", "error" or ""

	// RefreshAfter, when non-empty, makes the client re-fetch RefreshURL after
	// the given htmx delay (e.g. "5s").
	RefreshAfter string
}

// OptionViewModel is one <option> of a select.
type OptionViewModel struct {
	Value    string
	Label    string
	Selected bool
}

// FooterViewModel holds the page footer.
type FooterViewModel struct {
	Brand     string
	Copyright string
	Links     []LinkViewModel
}
