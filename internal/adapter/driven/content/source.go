// Package content implements the ContentSource port from a YAML document,
// embedded in the binary by default.
package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContentSource = (*Source)(nil)

// AllCategory is the filter entry that matches every project.
const AllCategory = "All"

//go:embed site.yaml
var defaultSite []byte

// Source serves site content parsed once at construction. It is read-only
// afterwards and safe for concurrent use.
type Source struct {
	site model.Site
}

// NewDefaultSource parses the embedded site.yaml.
func NewDefaultSource() (*Source, error) {
	return Parse(defaultSite)
}

// NewFileSource parses a YAML content file from disk.
func NewFileSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return src, nil
}

// Parse decodes and validates a YAML content document. Markdown fields are
// rendered to sanitized HTML.
func Parse(data []byte) (*Source, error) {
	var doc siteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return &Source{site: doc.toModel()}, nil
}

// Site returns a copy of the page content.
func (s *Source) Site(_ context.Context) (model.Site, error) {
	site := s.site
	site.Work.Projects = cloneProjects(s.site.Work.Projects)
	return site, nil
}

// Projects returns the projects in category. Matching is case-insensitive;
// "" and "All" match everything.
func (s *Source) Projects(_ context.Context, category string) ([]model.Project, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategory) {
		return cloneProjects(s.site.Work.Projects), nil
	}

	known := false
	for _, c := range s.site.Work.Categories {
		if strings.EqualFold(c, category) {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", driven.ErrUnknownCategory, category)
	}

	out := []model.Project{}
	for _, p := range s.site.Work.Projects {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func cloneProjects(in []model.Project) []model.Project {
	out := make([]model.Project, len(in))
	copy(out, in)
	return out
}

// --- YAML document ---

type siteDoc struct {
	Brand    string      `yaml:"brand"`
	Nav      []linkDoc   `yaml:"nav"`
	Hero     heroDoc     `yaml:"hero"`
	Work     workDoc     `yaml:"work"`
	Services servicesDoc `yaml:"services"`
	About    aboutDoc    `yaml:"about"`
	Contact  contactDoc  `yaml:"contact"`
	Footer   footerDoc   `yaml:"footer"`
}

type linkDoc struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type heroDoc struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Headline   []string `yaml:"headline"`
	Outlined   string   `yaml:"outlined"`
	Background string   `yaml:"background"`
	CTA        linkDoc  `yaml:"cta"`
	Reel       string   `yaml:"reel"`
}

type workDoc struct {
	Heading    string       `yaml:"heading"`
	Intro      string       `yaml:"intro"`
	Categories []string     `yaml:"categories"`
	Projects   []projectDoc `yaml:"projects"`
}

type projectDoc struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Thumbnail   string `yaml:"thumbnail"`
	Video       string `yaml:"video"`
	Description string `yaml:"description"`
}

type servicesDoc struct {
	Eyebrow  string       `yaml:"eyebrow"`
	Headline []string     `yaml:"headline"`
	Outlined string       `yaml:"outlined"`
	Intro    string       `yaml:"intro"`
	Stats    []statDoc    `yaml:"stats"`
	Items    []serviceDoc `yaml:"items"`
}

type statDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type serviceDoc struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Features    []string `yaml:"features"`
}

type aboutDoc struct {
	Heading  string `yaml:"heading"`
	Portrait string `yaml:"portrait"`
	Body     string `yaml:"body"`
}

type contactDoc struct {
	Heading []string    `yaml:"heading"`
	Blurb   string      `yaml:"blurb"`
	Email   string      `yaml:"email"`
	Socials []socialDoc `yaml:"socials"`
}

type socialDoc struct {
	Network string `yaml:"network"`
	Href    string `yaml:"href"`
}

type footerDoc struct {
	Copyright string    `yaml:"copyright"`
	Links     []linkDoc `yaml:"links"`
}

func (d *siteDoc) validate() error {
	var errs []error

	if strings.TrimSpace(d.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}

	if len(d.Work.Categories) == 0 || !strings.EqualFold(d.Work.Categories[0], AllCategory) {
		errs = append(errs, fmt.Errorf("work.categories must start with %q", AllCategory))
	}

	seen := make(map[int]bool, len(d.Work.Projects))
	for i, p := range d.Work.Projects {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("work.projects[%d]: duplicate id %d", i, p.ID))
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("work.projects[%d]: title is required", i))
		}
		if strings.TrimSpace(p.Category) == "" {
			errs = append(errs, fmt.Errorf("work.projects[%d]: category is required", i))
		}
	}

	if strings.TrimSpace(d.Contact.Email) == "" {
		errs = append(errs, errors.New("contact.email is required"))
	}

	return errors.Join(errs...)
}

func (d *siteDoc) toModel() model.Site {
	projects := make([]model.Project, 0, len(d.Work.Projects))
	for _, p := range d.Work.Projects {
		projects = append(projects, model.Project{
			ID:              p.ID,
			Title:           p.Title,
			Category:        p.Category,
			Thumbnail:       p.Thumbnail,
			VideoURL:        p.Video,
			Description:     p.Description,
			DescriptionHTML: RenderMarkdown(p.Description),
		})
	}

	services := make([]model.Service, 0, len(d.Services.Items))
	for _, s := range d.Services.Items {
		services = append(services, model.Service{
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			Features:    s.Features,
		})
	}

	stats := make([]model.Stat, 0, len(d.Services.Stats))
	for _, s := range d.Services.Stats {
		stats = append(stats, model.Stat{Value: s.Value, Label: s.Label})
	}

	socials := make([]model.SocialLink, 0, len(d.Contact.Socials))
	for _, s := range d.Contact.Socials {
		socials = append(socials, model.SocialLink{Network: s.Network, Href: s.Href})
	}

	return model.Site{
		Brand:    d.Brand,
		NavLinks: toLinks(d.Nav),
		Hero: model.Hero{
			Eyebrow:         d.Hero.Eyebrow,
			Headline:        d.Hero.Headline,
			OutlinedWord:    d.Hero.Outlined,
			BackgroundImage: d.Hero.Background,
			PrimaryCTA:      model.Link{Label: d.Hero.CTA.Label, Href: d.Hero.CTA.Href},
			ReelLabel:       d.Hero.Reel,
		},
		Work: model.WorkSection{
			Heading:    d.Work.Heading,
			Intro:      d.Work.Intro,
			Categories: d.Work.Categories,
			Projects:   projects,
		},
		Services: model.ServicesSection{
			Eyebrow:      d.Services.Eyebrow,
			Headline:     d.Services.Headline,
			OutlinedWord: d.Services.Outlined,
			Intro:        d.Services.Intro,
			Stats:        stats,
			Services:     services,
		},
		About: model.About{
			Heading:  d.About.Heading,
			Body:     d.About.Body,
			BodyHTML: RenderMarkdown(d.About.Body),
			Portrait: d.About.Portrait,
		},
		Contact: model.ContactSection{
			Heading: d.Contact.Heading,
			Blurb:   d.Contact.Blurb,
			Email:   d.Contact.Email,
			Socials: socials,
		},
		Footer: model.Footer{
			Copyright: d.Footer.Copyright,
			Links:     toLinks(d.Footer.Links),
		},
	}
}

func toLinks(in []linkDoc) []model.Link {
	out := make([]model.Link, 0, len(in))
	for _, l := range in {
		out = append(out, model.Link{Label: l.Label, Href: l.Href})
	}
	return out
}
