package content

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Lookup errors. Both wrap ErrNotFound.
var (
	ErrNotFound       = errors.New("not found")
	ErrBrandNotFound  = fmt.Errorf("brand %w", ErrNotFound)
	ErrEngineNotFound = fmt.Errorf("engine %w", ErrNotFound)
)

// LookupError records which key failed to resolve.
type LookupError struct {
	Brand  string
	Engine string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Engine == "" {
		return fmt.Sprintf("content: %s: %q", e.Err, e.Brand)
	}
	return fmt.Sprintf("content: %s: %q/%q", e.Err, e.Brand, e.Engine)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Table is a read-only view over a brand → engine → page mapping.
type Table struct {
	brands map[string]BrandData
}

var defaultTable = NewTable(map[string]BrandData{
	"mclaren": mclaren,
})

// Default returns the built-in content table.
func Default() Table {
	return defaultTable
}

// NewTable wraps a copy of brands in a Table. Keys are normalised with
// NormalizeSlug.
func NewTable(brands map[string]BrandData) Table {
	t := Table{brands: make(map[string]BrandData, len(brands))}
	for slug, b := range brands {
		engines := make(map[string]EnginePageData, len(b.Engines))
		for es, p := range b.Engines {
			engines[NormalizeSlug(es)] = p.clone()
		}
		b.Engines = engines
		t.brands[NormalizeSlug(slug)] = b
	}
	return t
}

// NormalizeSlug turns a route parameter into a table key: percent-decoded,
// trimmed, lower-cased, with spaces and underscores folded to hyphens.
func NormalizeSlug(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		s = u
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "/")
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// Lookup resolves a brand and engine slug to a copy of its page. A missing
// key yields a *LookupError wrapping ErrBrandNotFound or ErrEngineNotFound.
func (t Table) Lookup(brand, engine string) (EnginePageData, error) {
	b, err := t.brand(brand)
	if err != nil {
		return EnginePageData{}, err
	}
	p, ok := b.Engines[NormalizeSlug(engine)]
	if !ok {
		return EnginePageData{}, &LookupError{Brand: brand, Engine: engine, Err: ErrEngineNotFound}
	}
	return p.clone(), nil
}

// Brand returns a copy of the brand record for slug, engines included.
func (t Table) Brand(slug string) (BrandData, error) {
	b, err := t.brand(slug)
	if err != nil {
		return BrandData{}, err
	}
	return b.clone(), nil
}

func (t Table) brand(slug string) (BrandData, error) {
	b, ok := t.brands[NormalizeSlug(slug)]
	if !ok {
		return BrandData{}, &LookupError{Brand: slug, Err: ErrBrandNotFound}
	}
	return b, nil
}

// Brands returns the brand slugs in sorted order.
func (t Table) Brands() []string {
	out := make([]string, 0, len(t.brands))
	for slug := range t.brands {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Engines returns the engine slugs of a brand in sorted order.
func (t Table) Engines(brand string) ([]string, error) {
	b, err := t.brand(brand)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(b.Engines))
	for slug := range b.Engines {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out, nil
}

// Each calls fn with a copy of every page in brand, then engine, slug order.
// It stops at the first error fn returns.
func (t Table) Each(fn func(brand, engine string, page EnginePageData) error) error {
	for _, bs := range t.Brands() {
		engines, _ := t.Engines(bs)
		for _, es := range engines {
			if err := fn(bs, es, t.brands[bs].Engines[es].clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of engine pages in the table.
func (t Table) Len() int {
	n := 0
	for _, b := range t.brands {
		n += len(b.Engines)
	}
	return n
}

// Title returns the page title. Pages without metadata fall back to the
// Article headline, then to fallback.
func (p EnginePageData) Title(fallback string) string {
	if s := strings.TrimSpace(p.Metadata.Title); s != "" {
		return s
	}
	if art, ok := p.Schema.Article(); ok && art.Headline != "" {
		return art.Headline
	}
	return fallback
}

// Description returns the meta description, falling back to the first
// intro paragraph.
func (p EnginePageData) Description() string {
	if s := strings.TrimSpace(p.Metadata.Description); s != "" {
		return s
	}
	if len(p.Hero.Intro) > 0 {
		return p.Hero.Intro[0]
	}
	return ""
}

// Spec returns the value of the named spec row.
func (p EnginePageData) Spec(parameter string) (string, bool) {
	for _, r := range p.TechnicalSpecifications.EngineSpecs {
		if strings.EqualFold(r.Parameter, parameter) {
			return r.Value, true
		}
	}
	return "", false
}
