package jsonld

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() Graph {
	org := &Organization{Name: "Engine Pages", URL: "https://example.com/", Logo: &ImageObject{URL: "https://example.com/logo.png"}}
	return New(
		WebPage{
			ID:       "https://example.com/engines/acme/v8/#webpage",
			URL:      "https://example.com/engines/acme/v8/",
			Name:     "Acme V8",
			IsPartOf: &Ref{ID: "https://example.com/#website"},
		},
		WebSite{ID: "https://example.com/#website", URL: "https://example.com/", Name: "Engine Pages", Publisher: org},
		Article{
			ID:       "https://example.com/engines/acme/v8/#article",
			Headline: "Acme V8 review",
			Author:   org,
			HasPart: &WebPageElement{
				Name:                 "Reliability",
				ExpertConsiderations: []string{"Oil leaks", "Coil packs"},
			},
		},
		VehicleEngine{
			ID:                 "https://example.com/engines/acme/v8/#engine",
			Name:               "Acme V8",
			EngineDisplacement: &QuantitativeValue{Value: 3799, UnitCode: "CMQ"},
			EnginePower:        &QuantitativeValue{Value: 441.3, UnitCode: "KWT"},
			AdditionalProperty: []PropertyValue{{Name: "Bore", Value: "93 mm"}},
		},
		Dataset{
			ID:           "https://example.com/engines/acme/v8/#dataset",
			Name:         "Acme V8 specifications",
			Description:  "Spec table",
			URL:          "https://example.com/engines/acme/v8/",
			Distribution: []DataDownload{{EncodingFormat: "application/ld+json", ContentURL: "https://example.com/engines/acme/v8/schema.json"}},
		},
		FAQPage{
			ID: "https://example.com/engines/acme/v8/#faq",
			MainEntity: []Question{
				{Name: "Is it reliable?", AcceptedAnswer: Answer{Text: "Mostly."}},
			},
		},
	)
}

func TestGraphRoundTrip(t *testing.T) {
	g := sampleGraph()

	b, err := json.Marshal(g)
	require.NoError(t, err)

	var got Graph
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, g, got)

	again, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(b), string(again))
}

func TestGraphMarshalVocabulary(t *testing.T) {
	b, err := json.Marshal(sampleGraph())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, Context, doc["@context"])

	nodes, ok := doc["@graph"].([]any)
	require.True(t, ok)
	require.Len(t, nodes, 6)

	var types []string
	for _, n := range nodes {
		types = append(types, n.(map[string]any)["@type"].(string))
	}
	assert.Equal(t, []string{TypeWebPage, TypeWebSite, TypeArticle, TypeVehicleEngine, TypeDataset, TypeFAQPage}, types)

	faq := nodes[5].(map[string]any)
	q := faq["mainEntity"].([]any)[0].(map[string]any)
	assert.Equal(t, "Question", q["@type"])
	assert.Equal(t, "Mostly.", q["acceptedAnswer"].(map[string]any)["text"])

	ds := nodes[4].(map[string]any)
	dl := ds["distribution"].([]any)[0].(map[string]any)
	assert.Contains(t, dl, "contentUrl")
}

func TestGraphClone(t *testing.T) {
	g := sampleGraph()
	want, err := json.Marshal(g)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g, c)

	site := c.Nodes[1].(WebSite)
	site.Publisher.Logo.URL = "https://evil.example/logo.png"
	art := c.Nodes[2].(Article)
	art.Author.Name = "mutated"
	art.HasPart.ExpertConsiderations[0] = "mutated"
	eng := c.Nodes[3].(VehicleEngine)
	eng.EngineDisplacement.Value = 1
	eng.AdditionalProperty[0].Value = "mutated"
	faq := c.Nodes[5].(FAQPage)
	faq.MainEntity[0].AcceptedAnswer.Text = "mutated"

	got, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
	assert.Equal(t, Graph{}, Graph{}.Clone())
}

func TestGraphUnmarshalUnknownType(t *testing.T) {
	var g Graph
	err := json.Unmarshal([]byte(`{"@context":"https://schema.org","@graph":[{"@type":"Recipe","@id":"x"}]}`), &g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestGraphMarshalEmpty(t *testing.T) {
	b, err := json.Marshal(Graph{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"@context":"https://schema.org","@graph":[]}`, string(b))
}

func TestGraphAccessors(t *testing.T) {
	g := sampleGraph()

	faq, ok := g.FAQPage()
	require.True(t, ok)
	assert.Len(t, faq.MainEntity, 1)

	art, ok := g.Article()
	require.True(t, ok)
	assert.Equal(t, "Acme V8 review", art.Headline)

	eng, ok := g.VehicleEngine()
	require.True(t, ok)
	assert.Equal(t, 3799.0, eng.EngineDisplacement.Value)

	_, ok = New().FAQPage()
	assert.False(t, ok)
}

func TestScriptEscapesMarkup(t *testing.T) {
	g := New(FAQPage{ID: "#faq", MainEntity: []Question{{Name: "</script><b>", AcceptedAnswer: Answer{Text: "a & b"}}}})
	s, err := Script(g)
	require.NoError(t, err)
	assert.False(t, strings.Contains(s, "</script>"))
	assert.Contains(t, s, `\u003c/script\u003e`)
	assert.Contains(t, s, `a \u0026 b`)
}
