package enginepages

import (
	"encoding/xml"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/markdown"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`

	date string
}

// renderRSS lists every engine page, most recently modified first.
func (a *App) renderRSS(c echo.Context) error {
	base := a.Config.URL
	var items []rssItem
	_ = a.Table.Each(func(brand, engine string, p content.EnginePageData) error {
		link := BuildURL(base, "engines", brand, engine)
		item := rssItem{
			Title:       p.Title(engine),
			Link:        link,
			Description: markdown.Plain(p.Description()),
			GUID:        link,
		}
		if art, ok := p.Schema.Article(); ok {
			item.date = art.DateModified
			if item.date == "" {
				item.date = art.DatePublished
			}
			if t, err := time.Parse("2006-01-02", item.date); err == nil {
				item.PubDate = t.Format(time.RFC1123Z)
			}
		}
		items = append(items, item)
		return nil
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].date > items[j].date })

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
