package model

// Site is the complete static content of the studio page.
type Site struct {
	Brand    string
	NavLinks []Link
	Hero     Hero
	Work     WorkSection
	Services ServicesSection
	About    About
	Contact  ContactSection
	Footer   Footer
}

// Link is a labelled href.
type Link struct {
	Label string
	Href  string
}

// Hero is the full-height intro section.
type Hero struct {
	Eyebrow         string
	Headline        []string
	OutlinedWord    string
	BackgroundImage string
	PrimaryCTA      Link
	ReelLabel       string
}

// WorkSection holds the project gallery and its filter categories.
type WorkSection struct {
	Heading    string
	Intro      string
	Categories []string
	Projects   []Project
}

// Project is a single gallery entry.
type Project struct {
	ID              int
	Title           string
	Category        string
	Thumbnail       string
	VideoURL        string
	Description     string
	DescriptionHTML string
}

// ServicesSection lists what the studio offers.
type ServicesSection struct {
	Eyebrow      string
	Headline     []string
	OutlinedWord string
	Intro        string
	Stats        []Stat
	Services     []Service
}

// Service is one offering with its feature tags.
type Service struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

// Stat is a headline number, e.g. "150+ Projects Delivered".
type Stat struct {
	Value string
	Label string
}

// About is the biography section. Body is markdown; BodyHTML is the sanitized
// rendering of it.
type About struct {
	Heading  string
	Body     string
	BodyHTML string
	Portrait string
}

// ContactSection is the static half of the contact area.
type ContactSection struct {
	Heading []string
	Blurb   string
	Email   string
	Socials []SocialLink
}

// SocialLink is an icon link to a social profile.
type SocialLink struct {
	Network string
	Href    string
}

// Footer is the page footer.
type Footer struct {
	Copyright string
	Links     []Link
}
