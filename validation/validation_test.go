package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/jsonld"
)

func TestListAvailableSchemas(t *testing.T) {
	names, err := ListAvailableSchemas()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{SchemaEnginePage, SchemaGraph}, names)
}

func TestValidateJSONUnknownSchema(t *testing.T) {
	err := ValidateJSON("missing.json", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateDocumentGraph(t *testing.T) {
	valid := `{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "FAQPage", "@id": "https://example.com/#faq", "mainEntity": [
      {"@type": "Question", "name": "Q?", "acceptedAnswer": {"@type": "Answer", "text": "A."}}
    ]}
  ]
}`
	require.NoError(t, ValidateDocument(SchemaGraph, []byte(valid)))

	tests := []struct {
		name   string
		doc    string
		expect string
	}{
		{"wrong context", `{"@context": "https://example.com", "@graph": [{"@type": "WebPage"}]}`, "/@context"},
		{"unknown type", `{"@context": "https://schema.org", "@graph": [{"@type": "Car"}]}`, "/@graph/0/@type"},
		{"faq without questions", `{"@context": "https://schema.org", "@graph": [{"@type": "FAQPage"}]}`, "mainEntity"},
		{"empty graph", `{"@context": "https://schema.org", "@graph": []}`, "/@graph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(SchemaGraph, []byte(tt.doc))
			require.Error(t, err)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
			assert.Contains(t, err.Error(), tt.expect)
		})
	}
}

func TestValidateYAML(t *testing.T) {
	doc := `
"@context": https://schema.org
"@graph":
  - "@type": Article
    headline: M838T review
`
	assert.NoError(t, ValidateYAML(SchemaGraph, []byte(doc)))

	err := ValidateYAML(SchemaGraph, []byte("\"@graph\": [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationError{}.Error())
	assert.Equal(t, "validation failed: a", ValidationError{Errors: []string{"a"}}.Error())
	assert.Equal(t, "validation failed: a; b", ValidationError{Errors: []string{"a", "b"}}.Error())
}

func TestCheckDefaultTable(t *testing.T) {
	r := Check(content.Default())
	for _, is := range r.Issues {
		t.Log(is)
	}
	assert.True(t, r.OK())
	assert.Equal(t, content.Default().Len(), r.Pages)
}

func TestCheckCatchesDrift(t *testing.T) {
	bad, err := content.Default().Lookup("mclaren", "m838t")
	require.NoError(t, err)

	bad.FAQs[0].Answer = "edited without updating the schema"
	bad.CompatibleModels.Rows = []content.ModelRow{{content.ColMake: "McLaren"}}
	bad.BannerImage = "images/relative.jpg"
	bad.CommonReliabilityIssues.Issues = append(bad.CommonReliabilityIssues.Issues, content.Issue{Title: "Untracked issue"})

	tbl := content.NewTable(map[string]content.BrandData{
		"mclaren": {
			Name:      "McLaren",
			HeroImage: content.Image{Src: "/hero.jpg"},
			ResearchResources: content.ResearchResources{
				ServiceManual:   "https://example.com/manual",
				ServiceBulletin: "https://example.com/bulletins",
			},
			Engines: map[string]content.EnginePageData{"m838t": bad},
		},
	})
	r := Check(tbl)
	require.False(t, r.OK())

	fields := map[string]bool{}
	for _, is := range r.Issues {
		assert.Equal(t, "mclaren", is.Brand)
		assert.Equal(t, "m838t", is.Engine)
		fields[is.Field] = true
	}
	assert.True(t, fields["faqs[0].answer"])
	assert.True(t, fields["compatibleModels[0].Models"])
	assert.True(t, fields["compatibleModels[0].Years"])
	assert.True(t, fields["bannerImage"])
	assert.True(t, fields["commonReliabilityIssues.issues[4]"])
	assert.Equal(t, []string{"mclaren/m838t"}, r.PageKeys())
}

func TestCheckEmptyBrand(t *testing.T) {
	tbl := content.NewTable(map[string]content.BrandData{
		"acme": {HeroImage: content.Image{Src: "hero.jpg"}},
	})
	r := Check(tbl)
	require.False(t, r.OK())
	groups := r.ByPage()
	require.Contains(t, groups, "acme")

	var msgs []string
	for _, is := range groups["acme"] {
		msgs = append(msgs, is.Field)
	}
	assert.Contains(t, msgs, "engines")
	assert.Contains(t, msgs, "heroImage.src")
}

func TestPageIssuesShape(t *testing.T) {
	issues := PageIssues("acme", "v8", content.EnginePageData{
		Schema: jsonld.New(jsonld.FAQPage{MainEntity: []jsonld.Question{}}),
	})
	var shape []string
	for _, is := range issues {
		if is.Field == "shape" {
			shape = append(shape, is.Message)
		}
	}
	require.NotEmpty(t, shape)
	assert.True(t, containsAny(shape, "/hero/intro", "/technicalSpecifications/engineSpecs"), "%v", shape)
}

func TestValidLink(t *testing.T) {
	for _, ok := range []string{"/a/b.jpg", "https://example.com/", "http://example.com/x#y"} {
		assert.NoError(t, ValidLink(ok), ok)
	}
	for _, bad := range []string{"", "relative.jpg", "//cdn.example.com/x", "ftp://example.com/", "https:///nohost", "/with space"} {
		assert.Error(t, ValidLink(bad), bad)
	}
}

func TestCheckRoundTripClean(t *testing.T) {
	c := &checker{brand: "acme", engine: "v8"}
	checkRoundTrip(c, jsonld.New(jsonld.WebPage{URL: "https://example.com/"}))
	assert.Empty(t, c.issues)
}

func TestReportJSON(t *testing.T) {
	r := Report{Pages: 1, Issues: []Issue{{Brand: "a", Field: "f", Message: "m"}}}
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pages":1,"issues":[{"brand":"a","field":"f","message":"m"}]}`, string(raw))
	assert.Equal(t, "a: f: m", r.Issues[0].String())
}

func containsAny(msgs []string, subs ...string) bool {
	for _, m := range msgs {
		for _, s := range subs {
			if strings.Contains(m, s) {
				return true
			}
		}
	}
	return false
}
