package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/jsonld"
	"github.com/eringen/enginepages/validation"
)

// Site holds the site-wide settings every page needs.
type Site struct {
	Name        string
	URL         string
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string // serialized graph, see jsonld.Script
	NoIndex     bool
}

// EngineLink is an engine as listed on the home and brand pages.
type EngineLink struct {
	Brand   string
	Slug    string
	Title   string
	Years   string
	Summary string
}

// URL returns the engine page path.
func (l EngineLink) URL() string { return content.EnginePath(l.Brand, l.Slug) }

// BrandSummary is one brand with its engines.
type BrandSummary struct {
	Slug      string
	Name      string
	HeroImage content.Image
	Resources content.ResearchResources
	Engines   []EngineLink
}

// EngineView is the data behind an engine review page.
type EngineView struct {
	Brand     string
	BrandName string
	Slug      string
	Page      content.EnginePageData
	Resources content.ResearchResources
	Related   []EngineLink
}

// SearchResult is one search hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// PageViews is a view counter row on the admin dashboard.
type PageViews struct {
	Path  string
	Views int64
}

// AdminView is the data behind the admin dashboard.
type AdminView struct {
	Report   validation.Report
	TopViews []PageViews
	Message  string
	CSRF     string
}

// Home lists every brand and its engines.
func Home(site Site, brands []BrandSummary) templ.Component {
	return homePage(site, PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         site.URL + "/",
		OGType:      "website",
	}, brands)
}

// Brand lists the engines of one brand.
func Brand(site Site, b BrandSummary) templ.Component {
	return brandPage(site, PageMeta{
		Title:       b.Name + " engines | " + site.Name,
		Description: fmt.Sprintf("Reviews of %d %s engines: specifications, reliability and compatible models.", len(b.Engines), b.Name),
		URL:         site.URL + "/engines/" + b.Slug + "/",
		OGType:      "website",
		Image:       b.HeroImage.Src,
	}, b)
}

// Engine renders a full engine review page with its JSON-LD graph.
func Engine(site Site, e EngineView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ld, err := jsonld.Script(e.Page.Schema)
		if err != nil {
			return fmt.Errorf("views: engine %s/%s: %w", e.Brand, e.Slug, err)
		}
		meta := PageMeta{
			Title:       e.Page.Title(e.BrandName + " " + e.Slug + " engine"),
			Description: e.Page.Description(),
			URL:         site.URL + content.EnginePath(e.Brand, e.Slug),
			OGType:      "article",
			Image:       e.Page.BannerImage,
			JSONLD:      ld,
		}
		return enginePage(site, meta, e).Render(ctx, w)
	})
}

// Search shows the results for query. limited marks a throttled request.
func Search(site Site, query string, results []SearchResult, limited bool) templ.Component {
	return searchPage(site, PageMeta{
		Title:   "Search | " + site.Name,
		URL:     site.URL + "/search/",
		OGType:  "website",
		NoIndex: true,
	}, query, results, limited)
}

// NotFound is the 404 page.
func NotFound(site Site) templ.Component {
	return notFoundPage(site, PageMeta{Title: "Not found | " + site.Name, NoIndex: true})
}

// ServerError is the 5xx page.
func ServerError(site Site) templ.Component {
	return serverErrorPage(site, PageMeta{Title: "Error | " + site.Name, NoIndex: true})
}

// AdminLogin is the admin password form.
func AdminLogin(site Site, showError bool, csrf string) templ.Component {
	return adminLoginPage(site, PageMeta{Title: "Admin | " + site.Name, NoIndex: true}, showError, csrf)
}

// AdminDashboard shows the content audit and the most viewed pages.
func AdminDashboard(site Site, v AdminView) templ.Component {
	return adminDashboardPage(site, PageMeta{Title: "Dashboard | " + site.Name, NoIndex: true}, v)
}
