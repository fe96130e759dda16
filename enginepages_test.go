package enginepages

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"encoding/xml"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/jsonld"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	dir := t.TempDir()
	static := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(static, "images"), 0o755))

	a := New(SiteConfig{
		URL:           "https://example.com",
		DatabasePath:  filepath.Join(dir, "data", "test.db"),
		StaticDir:     static,
		AdminPassword: "hunter2",
		SessionSecret: "test-session-secret-0123456789abcdef",
		LogLevel:      "off",
	}, opts...)
	require.NoError(t, a.Init(context.Background()))
	t.Cleanup(func() { a.Close() })
	return a
}

func get(a *App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestInitRequiresSecrets(t *testing.T) {
	a := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "x.db")})
	assert.ErrorContains(t, a.Init(context.Background()), "AdminPassword")

	a = New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "x.db"), AdminPassword: "x"})
	assert.ErrorContains(t, a.Init(context.Background()), "SessionSecret")
}

func TestHomeListsEngines(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/engines/mclaren/"`)
	assert.Contains(t, body, `href="/engines/mclaren/m838tq/"`)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestBrandPage(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/engines/mclaren/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reviews of 8 McLaren engines")

	rec = get(a, "/engines/McLaren/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/engines/mclaren/", rec.Header().Get("Location"))
}

func TestEnginePage(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/engines/mclaren/m838tq/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "McLaren M838TQ (P1) Engine Review")
	assert.Contains(t, body, `<script type="application/ld+json">`)
	assert.Contains(t, body, `href="/engines/mclaren/m630/"`, "related engines are linked")

	top, err := a.Store.TopViews(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, ViewCount{Path: "/engines/mclaren/m838tq/", Views: 1}, top[0])
}

func TestEngineNotFound(t *testing.T) {
	a := newTestApp(t)
	for _, target := range []string{
		"/engines/mclaren/m999/",
		"/engines/bugatti/w16/",
		"/engines/bugatti/",
		"/engines/mclaren/m999/schema.json",
		"/engines/mclaren/m999/index.md",
		"/no/such/page/",
	} {
		rec := get(a, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Page not found", target)
	}
}

func TestEngineCanonicalRedirects(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/engines/McLaren/M840T_E/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/engines/mclaren/m840t-e/", rec.Header().Get("Location"))

	rec = get(a, "/engines/mclaren/m838t")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/engines/mclaren/m838t/", rec.Header().Get("Location"))
}

func TestSchemaJSON(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/engines/mclaren/m630/schema.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/ld+json; charset=utf-8", rec.Header().Get("Content-Type"))

	var g jsonld.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	faq, ok := g.FAQPage()
	require.True(t, ok)

	p, err := content.Default().Lookup("mclaren", "m630")
	require.NoError(t, err)
	assert.Len(t, faq.MainEntity, len(p.FAQs))
}

func TestMarkdownAlternate(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/engines/mclaren/m838tq/index.md")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))

	md := rec.Body.String()
	assert.Contains(t, md, "# McLaren M838TQ (P1) Engine Review")
	assert.Contains(t, md, "## Technical specifications")
	assert.NotContains(t, md, "application/ld+json", "head and scripts are outside <main>")
	assert.Equal(t, 1, a.Cache.Len())

	again := get(a, "/engines/mclaren/m838tq/index.md")
	assert.Equal(t, md, again.Body.String())
	assert.Equal(t, 1, a.Cache.Len())
}

func TestSearch(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/search/?q=p1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/engines/mclaren/m838tq/"`)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = get(a, "/search/?q="+url.QueryEscape("no such engine"))
	assert.Contains(t, rec.Body.String(), "No engines match")

	rec = get(a, "/search/")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchRateLimited(t *testing.T) {
	a := newTestApp(t)
	a.searchLimiter.Stop()
	a.searchLimiter = NewSearchLimiter(0.001, 1)

	assert.Equal(t, http.StatusOK, get(a, "/search/?q=v8").Code)
	rec := get(a, "/search/?q=v8")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many searches")
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	// home, one brand, eight engines
	require.Len(t, set.URLs, 10)
	assert.Equal(t, "https://example.com", set.URLs[0].Loc)
	assert.Equal(t, "https://example.com/engines/mclaren/", set.URLs[1].Loc)
	assert.Equal(t, "https://example.com/engines/mclaren/m630/", set.URLs[2].Loc)
	assert.NotEmpty(t, set.URLs[2].LastMod)
}

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))

	var feed rssXML
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed.Channel.Items, content.Default().Len())
	for _, it := range feed.Channel.Items {
		assert.True(t, strings.HasPrefix(it.Link, "https://example.com/engines/mclaren/"), it.Link)
		assert.Equal(t, it.Link, it.GUID)
	}
}

func TestRobotsAndHealth(t *testing.T) {
	a := newTestApp(t)

	rec := get(a, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")

	rec = get(a, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 8, health["pages"])
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageVariants(t *testing.T) {
	a := newTestApp(t)
	writePNG(t, filepath.Join(a.Config.StaticDir, "images", "bay.png"), 1200, 600)
	writePNG(t, filepath.Join(a.Config.StaticDir, "images", "small.png"), 300, 200)

	rec := get(a, "/images/480/images/bay.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	img, err := jpeg.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	rec = get(a, "/images/960/images/small.png")
	require.Equal(t, http.StatusOK, rec.Code)
	img, err = jpeg.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx(), "images are never scaled up")

	assert.Equal(t, http.StatusNotFound, get(a, "/images/500/images/bay.png").Code)
	assert.Equal(t, http.StatusNotFound, get(a, "/images/480/images/missing.png").Code)
}

func TestResizeImageKeepsThinImagesVisible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.png")
	writePNG(t, path, 2000, 1)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := resizeImage(f, 480)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

// pngWithHeader returns a 1x1 PNG whose header claims w x h pixels.
func pngWithHeader(t *testing.T, w, h uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	b := buf.Bytes()
	// signature(8) length(4) "IHDR"(4) width(4) height(4) ... crc
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return b
}

func TestResizeImageRejectsHugeSources(t *testing.T) {
	_, err := resizeImage(bytes.NewReader(pngWithHeader(t, 100_000, 100_000)), 480)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = resizeImage(io.LimitReader(zeroReader{}, maxSourceBytes+10), 480)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	a := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(a.Config.StaticDir, "images", "huge.png"), pngWithHeader(t, 50_000, 50_000), 0o644))
	assert.Equal(t, http.StatusRequestEntityTooLarge, get(a, "/images/480/images/huge.png").Code)
	assert.Equal(t, 0, a.Cache.Len())
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestCleanImagePath(t *testing.T) {
	for in, want := range map[string]string{
		"images/a.jpg":      "images/a.jpg",
		"/images/./a.jpg":   "images/a.jpg",
		"images/x/../a.jpg": "images/a.jpg",
	} {
		got, ok := cleanImagePath(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "..", "../secret", "images/../../secret", `images\..\secret`} {
		_, ok := cleanImagePath(in)
		assert.False(t, ok, in)
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://example.com", BuildURL("https://example.com"))
	assert.Equal(t, "https://example.com/engines/mclaren/", BuildURL("https://example.com", "engines", "mclaren"))
	assert.Equal(t, "https://example.com/sub/engines/", BuildURL("https://example.com/sub/", "engines"))
}

func TestWithTable(t *testing.T) {
	p, err := content.Default().Lookup("mclaren", "m630")
	require.NoError(t, err)
	tbl := content.NewTable(map[string]content.BrandData{
		"acme": {Name: "Acme", Engines: map[string]content.EnginePageData{"v6": p}},
	})

	a := newTestApp(t, WithTable(tbl))
	assert.Equal(t, http.StatusOK, get(a, "/engines/acme/v6/").Code)
	assert.Equal(t, http.StatusNotFound, get(a, "/engines/mclaren/m630/").Code)
}

func TestWithCustomRoutes(t *testing.T) {
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/about/", func(c echo.Context) error {
			return c.String(http.StatusOK, "about "+a.Config.Name)
		})
	}))
	rec := get(a, "/about/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "about Engine Pages", rec.Body.String())
}
