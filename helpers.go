package enginepages

import (
	"net/url"
	"path"
	"strings"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/markdown"
	"github.com/eringen/enginepages/views"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         strings.TrimRight(a.Config.URL, "/"),
		Description: a.Config.Description,
	}
}

// engineLinks lists the engines of brand in slug order.
func (a *App) engineLinks(brand string) ([]views.EngineLink, error) {
	slugs, err := a.Table.Engines(brand)
	if err != nil {
		return nil, err
	}
	links := make([]views.EngineLink, 0, len(slugs))
	for _, slug := range slugs {
		p, err := a.Table.Lookup(brand, slug)
		if err != nil {
			return nil, err
		}
		links = append(links, views.EngineLink{
			Brand:   brand,
			Slug:    slug,
			Title:   p.Title(slug),
			Years:   p.Hero.Years,
			Summary: markdown.Plain(p.Description()),
		})
	}
	return links, nil
}

func (a *App) brandSummary(slug string) (views.BrandSummary, error) {
	b, err := a.Table.Brand(slug)
	if err != nil {
		return views.BrandSummary{}, err
	}
	links, err := a.engineLinks(slug)
	if err != nil {
		return views.BrandSummary{}, err
	}
	return views.BrandSummary{
		Slug:      slug,
		Name:      b.Name,
		HeroImage: b.HeroImage,
		Resources: b.ResearchResources,
		Engines:   links,
	}, nil
}

func (a *App) brandSummaries() ([]views.BrandSummary, error) {
	var out []views.BrandSummary
	for _, slug := range a.Table.Brands() {
		s, err := a.brandSummary(slug)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// engineView assembles the page data for brand/engine. Related engines are
// the other engines of the same brand.
func (a *App) engineView(brand, engine string) (views.EngineView, error) {
	brand, engine = content.NormalizeSlug(brand), content.NormalizeSlug(engine)
	p, err := a.Table.Lookup(brand, engine)
	if err != nil {
		return views.EngineView{}, err
	}
	b, err := a.Table.Brand(brand)
	if err != nil {
		return views.EngineView{}, err
	}
	links, err := a.engineLinks(brand)
	if err != nil {
		return views.EngineView{}, err
	}
	related := make([]views.EngineLink, 0, len(links))
	for _, l := range links {
		if l.Slug != engine {
			related = append(related, l)
		}
	}
	return views.EngineView{
		Brand:     brand,
		BrandName: b.Name,
		Slug:      engine,
		Page:      p,
		Resources: b.ResearchResources,
		Related:   related,
	}, nil
}
