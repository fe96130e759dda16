package enginepages

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/enginepages/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base)}}
	for _, brand := range a.Table.Brands() {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "engines", brand)})
	}
	_ = a.Table.Each(func(brand, engine string, p content.EnginePageData) error {
		u := sitemapURL{Loc: BuildURL(base, "engines", brand, engine)}
		if art, ok := p.Schema.Article(); ok {
			u.LastMod = art.DateModified
		}
		urls = append(urls, u)
		return nil
	})
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
