package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/validation"
)

var testSite = Site{Name: "Engine Pages", URL: "https://example.com", Description: "Independent engine reviews."}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func engineView(t *testing.T, slug string) EngineView {
	t.Helper()
	tbl := content.Default()
	p, err := tbl.Lookup("mclaren", slug)
	require.NoError(t, err)
	b, err := tbl.Brand("mclaren")
	require.NoError(t, err)
	return EngineView{
		Brand:     "mclaren",
		BrandName: b.Name,
		Slug:      slug,
		Page:      p,
		Resources: b.ResearchResources,
		Related:   []EngineLink{{Brand: "mclaren", Slug: "m838te", Title: "M838TE", Years: "(2015–2021)"}},
	}
}

func TestEngineRendersAllSections(t *testing.T) {
	out := render(t, Engine(testSite, engineView(t, "m838t")))

	for _, want := range []string{
		`<main id="main"`,
		`(2011–2017)`,
		`id="specifications"`,
		`<td>Displacement</td><td>3,799 cc</td>`,
		`id="compatible-models"`,
		`<strong>Super Series</strong>`,
		`href="/engines/mclaren/m838te/"`,
		`Calibration updates`,
		`id="reliability"`,
		`id="faq"`,
		`How much power does the M838T make?`,
		`<link rel="canonical" href="https://example.com/engines/mclaren/m838t/">`,
		`/engines/mclaren/m838t/schema.json`,
		`/images/960/images/engines/mclaren-m838t.jpg 960w`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestEngineEmbedsJSONLD(t *testing.T) {
	out := render(t, Engine(testSite, engineView(t, "m630")))

	start := strings.Index(out, `<script type="application/ld+json">`)
	require.GreaterOrEqual(t, start, 0)
	body := out[start:]
	end := strings.Index(body, "</script>")
	require.Greater(t, end, 0)
	ld := body[:end]

	assert.Contains(t, ld, `"@context":"https://schema.org"`)
	assert.Contains(t, ld, `"@type":"FAQPage"`)
	assert.Contains(t, ld, `"@type":"VehicleEngine"`)
	assert.Contains(t, ld, `"acceptedAnswer"`)
}

func TestEngineNoteKeysSorted(t *testing.T) {
	out := render(t, Engine(testSite, engineView(t, "m838t")))
	first := strings.Index(out, "12C 2012 update")
	second := strings.Index(out, "675LT</dt>")
	require.Greater(t, first, 0)
	require.Greater(t, second, 0)
	assert.Less(t, first, second)
}

func TestEngineMissingMetadataFallsBack(t *testing.T) {
	v := engineView(t, "m840t")
	v.Page.Metadata = content.Metadata{}
	out := render(t, Engine(testSite, v))
	assert.Contains(t, out, "<title>McLaren M840T 4.0L Twin-Turbo V8 review: specs, reliability and compatible models</title>")
	assert.Contains(t, out, `<meta name="description" content="The M840T replaced`)
}

func TestEngineEscapesCopy(t *testing.T) {
	v := engineView(t, "m838t")
	v.Page.Hero.Intro = []string{`<img src=x onerror=alert(1)>`}
	out := render(t, Engine(testSite, v))
	assert.NotContains(t, out, `<img src=x`)
	assert.Contains(t, out, `&lt;img src=x onerror=alert(1)&gt;`)
}

func TestEngineDisclaimerAndInfoBlock(t *testing.T) {
	v := engineView(t, "m838t")
	v.Page.Hero.Disclaimer = content.Disclaimer{Title: "Notice", Text: "Not **affiliated**.\n\nCheck the VIN."}
	v.Page.CommonReliabilityIssues.InfoBlock = content.InfoBlock{Title: "Heads up", Description: "Use `OEM` parts.", Gradient: "bg-amber-50"}
	out := render(t, Engine(testSite, v))

	assert.Contains(t, out, `<strong>Notice</strong><p>Not <strong>affiliated</strong>.</p><p>Check the VIN.</p></aside>`)
	assert.Contains(t, out, `<div class="mt-4 rounded p-4 bg-amber-50"><h3 class="font-semibold">Heads up</h3><p>Use <code>OEM</code> parts.</p></div>`)
}

func TestHomeAndBrand(t *testing.T) {
	b := BrandSummary{
		Slug: "mclaren",
		Name: "McLaren",
		HeroImage: content.Image{
			Src: "/public/images/brands/mclaren-hero.jpg",
			Alt: "Engine bay",
		},
		Engines: []EngineLink{{Brand: "mclaren", Slug: "m630", Title: "M630", Years: "(2021–present)"}},
	}

	home := render(t, Home(testSite, []BrandSummary{b}))
	assert.Contains(t, home, `href="/engines/mclaren/"`)
	assert.Contains(t, home, `href="/engines/mclaren/m630/"`)

	brand := render(t, Brand(testSite, b))
	assert.Contains(t, brand, "<title>McLaren engines | Engine Pages</title>")
	assert.Contains(t, brand, `alt="Engine bay"`)
	assert.Contains(t, brand, "Reviews of 1 McLaren engines")

	empty := render(t, Home(testSite, nil))
	assert.Contains(t, empty, "No engines have been published yet.")
}

func TestSearch(t *testing.T) {
	out := render(t, Search(testSite, "p1", []SearchResult{{Title: "M838TQ", URL: "/engines/mclaren/m838tq/", Snippet: "P1 hybrid"}}, false))
	assert.Contains(t, out, `value="p1"`)
	assert.Contains(t, out, `href="/engines/mclaren/m838tq/"`)
	assert.Contains(t, out, `<meta name="robots" content="noindex">`)

	none := render(t, Search(testSite, "zzz", nil, false))
	assert.Contains(t, none, "No engines match")

	limited := render(t, Search(testSite, "p1", nil, true))
	assert.Contains(t, limited, "Too many searches")
}

func TestErrorPages(t *testing.T) {
	assert.Contains(t, render(t, NotFound(testSite)), "Page not found")
	assert.Contains(t, render(t, ServerError(testSite)), "Something went wrong")
}

func TestAdminPages(t *testing.T) {
	login := render(t, AdminLogin(testSite, true, "tok123"))
	assert.Contains(t, login, `name="_csrf" value="tok123"`)
	assert.Contains(t, login, "Wrong password.")

	dash := render(t, AdminDashboard(testSite, AdminView{
		Report: validation.Report{Pages: 2, Issues: []validation.Issue{
			{Brand: "mclaren", Engine: "m630", Field: "faqs", Message: "out of sync"},
		}},
		TopViews: []PageViews{{Path: "/engines/mclaren/m630/", Views: 42}},
		CSRF:     "tok",
	}))
	assert.Contains(t, dash, "2 pages checked, 1 issues.")
	assert.Contains(t, dash, "mclaren/m630")
	assert.Contains(t, dash, "<code>faqs</code> out of sync")
	assert.Contains(t, dash, "<td>42</td>")

	clean := render(t, AdminDashboard(testSite, AdminView{Report: validation.Report{Pages: 8}}))
	assert.Contains(t, clean, "All pages pass.")
	assert.Contains(t, clean, "No views recorded yet.")
}

func TestImageVariant(t *testing.T) {
	assert.Equal(t, "/images/480/images/a.jpg", ImageVariant("/public/images/a.jpg", 480))
	assert.Equal(t, "https://cdn.example.com/a.jpg", ImageVariant("https://cdn.example.com/a.jpg", 480))
	assert.Equal(t, "", srcset("/other/a.jpg"))
	assert.Equal(t,
		"/images/480/a.jpg 480w, /images/960/a.jpg 960w, /images/1440/a.jpg 1440w",
		srcset("/public/a.jpg"))
}
