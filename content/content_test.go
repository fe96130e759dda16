package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/jsonld"
)

func TestLookupM838T(t *testing.T) {
	p, err := Default().Lookup("mclaren", "m838t")
	require.NoError(t, err)

	assert.Equal(t, "(2011–2017)", p.Hero.Years)
	v, ok := p.Spec("Displacement")
	require.True(t, ok)
	assert.Equal(t, "3,799 cc", v)
}

func TestLookupNotFound(t *testing.T) {
	tbl := Default()

	_, err := tbl.Lookup("mclaren", "does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrEngineNotFound))
	assert.False(t, errors.Is(err, ErrBrandNotFound))

	var le *LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "mclaren", le.Brand)
	assert.Equal(t, "does-not-exist", le.Engine)

	_, err = tbl.Lookup("bugatti", "w16")
	assert.True(t, errors.Is(err, ErrBrandNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = tbl.Engines("bugatti")
	assert.True(t, errors.Is(err, ErrBrandNotFound))
}

func TestLookupIdempotent(t *testing.T) {
	tbl := Default()
	a, err := tbl.Lookup("mclaren", "m840t-s")
	require.NoError(t, err)
	b, err := tbl.Lookup("mclaren", "m840t-s")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLookupReturnsCopies(t *testing.T) {
	tbl := Default()

	b, err := tbl.Brand("mclaren")
	require.NoError(t, err)
	delete(b.Engines, "m838t")

	p, err := tbl.Lookup("mclaren", "m838t")
	require.NoError(t, err)
	question := p.FAQs[0].Question
	mk := p.CompatibleModels.Rows[0][ColMake]
	intro := p.Hero.Intro[0]
	p.FAQs[0].Question = "mutated"
	p.CompatibleModels.Rows[0][ColMake] = ""
	p.Hero.Intro[0] = "mutated"
	p.CompatibleModels.ExtraNotes[0].Fields["mutated"] = []string{"x"}
	faq, ok := p.Schema.FAQPage()
	require.True(t, ok)
	faq.MainEntity[0].Name = "mutated"

	again, err := tbl.Lookup("mclaren", "m838t")
	require.NoError(t, err)
	assert.Equal(t, question, again.FAQs[0].Question)
	assert.Equal(t, mk, again.CompatibleModels.Rows[0][ColMake])
	assert.Equal(t, intro, again.Hero.Intro[0])
	assert.NotContains(t, again.CompatibleModels.ExtraNotes[0].Fields, "mutated")
	faq, ok = again.Schema.FAQPage()
	require.True(t, ok)
	assert.Equal(t, question, faq.MainEntity[0].Name)

	err = tbl.Each(func(_, _ string, page EnginePageData) error {
		page.FAQs[0].Question = "mutated"
		return nil
	})
	require.NoError(t, err)
	again, err = tbl.Lookup("mclaren", "m838t")
	require.NoError(t, err)
	assert.Equal(t, question, again.FAQs[0].Question)
}

func TestNewTableCopiesInput(t *testing.T) {
	engines := map[string]EnginePageData{"v8": {FAQs: []FAQ{{Question: "Q?", Answer: "A."}}}}
	tbl := NewTable(map[string]BrandData{"acme": {Engines: engines}})
	engines["v8"].FAQs[0].Question = "mutated"

	p, err := tbl.Lookup("acme", "v8")
	require.NoError(t, err)
	assert.Equal(t, "Q?", p.FAQs[0].Question)
}

func TestLookupNormalizesSlugs(t *testing.T) {
	p, err := Default().Lookup("McLaren", "M840T_E")
	require.NoError(t, err)
	assert.Contains(t, p.Metadata.Title, "M840TE")
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mclaren", "mclaren"},
		{"McLaren", "mclaren"},
		{" m838t/ ", "m838t"},
		{"M840T_R", "m840t-r"},
		{"m840t%20s", "m840t-s"},
		{"bad%zz", "bad%zz"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSlug(tt.in))
		})
	}
}

func TestEachOrder(t *testing.T) {
	var got []string
	err := Default().Each(func(brand, engine string, _ EnginePageData) error {
		got = append(got, brand+"/"+engine)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mclaren/m630",
		"mclaren/m838t",
		"mclaren/m838te",
		"mclaren/m838tq",
		"mclaren/m840t",
		"mclaren/m840t-e",
		"mclaren/m840t-r",
		"mclaren/m840t-s",
	}, got)
	assert.Equal(t, len(got), Default().Len())
}

func TestEachStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Default().Each(func(string, string, EnginePageData) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestBrandsHaveEngines(t *testing.T) {
	tbl := Default()
	require.NotEmpty(t, tbl.Brands())
	for _, slug := range tbl.Brands() {
		b, err := tbl.Brand(slug)
		require.NoError(t, err)
		assert.NotEmpty(t, b.Engines, slug)
		assert.NotEmpty(t, b.Name, slug)
		assert.NotEmpty(t, b.HeroImage.Src, slug)
	}
}

func TestPagesFAQsMatchSchema(t *testing.T) {
	err := Default().Each(func(brand, engine string, p EnginePageData) error {
		faq, ok := p.Schema.FAQPage()
		require.True(t, ok, "%s/%s has no FAQPage", brand, engine)
		require.Len(t, faq.MainEntity, len(p.FAQs), "%s/%s", brand, engine)
		for i, f := range p.FAQs {
			assert.Equal(t, f.Question, faq.MainEntity[i].Name)
			assert.Equal(t, f.Answer, faq.MainEntity[i].AcceptedAnswer.Text)
		}

		art, ok := p.Schema.Article()
		require.True(t, ok)
		require.NotNil(t, art.HasPart)
		require.Len(t, art.HasPart.ExpertConsiderations, len(p.CommonReliabilityIssues.Issues))
		for i, is := range p.CommonReliabilityIssues.Issues {
			assert.Equal(t, is.Title, art.HasPart.ExpertConsiderations[i])
		}
		return nil
	})
	require.NoError(t, err)
}

func TestPagesModelRows(t *testing.T) {
	err := Default().Each(func(brand, engine string, p EnginePageData) error {
		assert.NotEmpty(t, p.CompatibleModels.Rows, "%s/%s", brand, engine)
		for _, row := range p.CompatibleModels.Rows {
			for _, col := range []string{ColMake, ColModels, ColYears} {
				assert.NotEmpty(t, row[col], "%s/%s missing %s", brand, engine, col)
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestTitleFallback(t *testing.T) {
	p := EnginePageData{Metadata: Metadata{Title: "  Set  "}}
	assert.Equal(t, "Set", p.Title("fallback"))

	p = EnginePageData{Schema: jsonld.New(jsonld.Article{Headline: "From schema"})}
	assert.Equal(t, "From schema", p.Title("fallback"))

	assert.Equal(t, "fallback", EnginePageData{}.Title("fallback"))
}

func TestDescriptionFallback(t *testing.T) {
	p := EnginePageData{Hero: Hero{Intro: []string{"first", "second"}}}
	assert.Equal(t, "first", p.Description())

	p.Metadata.Description = "meta"
	assert.Equal(t, "meta", p.Description())

	assert.Empty(t, EnginePageData{}.Description())
}

func TestTableColumns(t *testing.T) {
	assert.Equal(t, DefaultColumns, CompatibleModels{}.TableColumns())
	custom := CompatibleModels{Columns: []string{ColMake, "Chassis"}}
	assert.Equal(t, []string{ColMake, "Chassis"}, custom.TableColumns())
}

func TestNewTableNormalizesKeys(t *testing.T) {
	tbl := NewTable(map[string]BrandData{
		"Acme Motors": {Engines: map[string]EnginePageData{"V8_Twin": {}}},
	})
	_, err := tbl.Lookup("acme-motors", "v8-twin")
	assert.NoError(t, err)
	assert.Equal(t, []string{"acme-motors"}, tbl.Brands())
}
