package enginepages

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/views"
)

const searchLimit = 20

func (a *App) handleHome(c echo.Context) error {
	brands, err := a.brandSummaries()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.site(), brands))
}

func (a *App) handleBrand(c echo.Context) error {
	slug := content.NormalizeSlug(c.Param("brand"))
	if slug != c.Param("brand") {
		return c.Redirect(http.StatusMovedPermanently, "/engines/"+slug+"/")
	}
	b, err := a.brandSummary(slug)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Brand(a.site(), b))
}

// lookupEngine resolves the :brand and :engine route parameters inside a
// trace span.
func (a *App) lookupEngine(c echo.Context) (views.EngineView, error) {
	_, span := otel.Tracer("enginepages").Start(c.Request().Context(), "content.lookup")
	defer span.End()

	v, err := a.engineView(c.Param("brand"), c.Param("engine"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return v, err
}

func (a *App) handleEngine(c echo.Context) error {
	v, err := a.lookupEngine(c)
	if err != nil {
		return err
	}
	canonical := content.EnginePath(v.Brand, v.Slug)
	if c.Request().URL.Path != canonical {
		return c.Redirect(http.StatusMovedPermanently, canonical)
	}
	if err := a.Store.RecordView(c.Request().Context(), canonical); err != nil {
		c.Logger().Warnf("record view %s: %v", canonical, err)
	}
	return Render(c, a.Views.Engine(a.site(), v))
}

// handleSchema serves the page's JSON-LD graph on its own.
func (a *App) handleSchema(c echo.Context) error {
	v, err := a.lookupEngine(c)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(v.Page.Schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema %s/%s: %w", v.Brand, v.Slug, err)
	}
	return c.Blob(http.StatusOK, "application/ld+json; charset=utf-8", b)
}

// handleMarkdown serves the page's main content converted to Markdown.
func (a *App) handleMarkdown(c echo.Context) error {
	v, err := a.lookupEngine(c)
	if err != nil {
		return err
	}
	key := content.EnginePath(v.Brand, v.Slug) + "index.md"
	b, err := a.Cache.Get(key, func() ([]byte, error) {
		return a.renderMarkdown(c.Request().Context(), v)
	})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", b)
}

func (a *App) renderMarkdown(ctx context.Context, v views.EngineView) ([]byte, error) {
	page, err := renderBytes(ctx, a.Views.Engine(a.site(), v))
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}
	node := findNodeByTag(doc, "main")
	if node == nil {
		return nil, errors.New("rendered page has no <main>")
	}
	md, err := htmltomarkdown.ConvertNode(node)
	if err != nil {
		return nil, fmt.Errorf("convert to markdown: %w", err)
	}
	return md, nil
}

func findNodeByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNodeByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func (a *App) handleSearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return Render(c, a.Views.Search(a.site(), "", nil, false))
	}
	if !a.searchLimiter.Allow(c.RealIP()) {
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.Search(a.site(), q, nil, true))
	}
	hits, err := a.Store.Search(c.Request().Context(), q, searchLimit)
	if err != nil {
		return err
	}
	results := make([]views.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, views.SearchResult{
			Title:   h.Title,
			URL:     content.EnginePath(h.Brand, h.Engine),
			Snippet: h.Summary,
		})
	}
	return Render(c, a.Views.Search(a.site(), q, results, false))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /admin/\nDisallow: /search/\n\nSitemap: " +
		strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := a.Store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "pages": a.Table.Len()})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if errors.Is(err, content.ErrNotFound) || (ok && he.Code == http.StatusNotFound) {
		if rerr := RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site())); rerr != nil {
			c.Logger().Errorf("render not found page: %v", rerr)
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if rerr := RenderStatus(c, code, a.Views.ServerError(a.site())); rerr != nil {
			c.NoContent(code)
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
