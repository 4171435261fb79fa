package driven

import (
	"context"
	"errors"

	"github.com/nodestree/studiosite/internal/domain/model"
)

// ErrUnknownCategory is returned when a gallery filter names a category that
// the site does not offer.
var ErrUnknownCategory = errors.New("unknown project category")

// ContentSource defines the driven port for the static page content.
type ContentSource interface {
	// Site returns the full page content.
	Site(ctx context.Context) (model.Site, error)

	// Projects returns the gallery entries in the given filter category.
	// An empty category or "All" returns every project. Returns
	// ErrUnknownCategory for categories not listed in the filter bar.
	Projects(ctx context.Context, category string) ([]model.Project, error)
}
