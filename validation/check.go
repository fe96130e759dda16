package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/jsonld"
	"github.com/eringen/enginepages/markdown"
)

var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Issue is one integrity problem found on a page. Engine is empty for
// brand-level problems.
type Issue struct {
	Brand   string `json:"brand"`
	Engine  string `json:"engine,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	page := i.Brand
	if i.Engine != "" {
		page += "/" + i.Engine
	}
	return fmt.Sprintf("%s: %s: %s", page, i.Field, i.Message)
}

// Report is the result of Check.
type Report struct {
	Pages  int     `json:"pages"`
	Issues []Issue `json:"issues"`
}

// OK reports whether no issues were found.
func (r Report) OK() bool { return len(r.Issues) == 0 }

// ByPage groups issues by "brand/engine" (or "brand" for brand issues).
func (r Report) ByPage() map[string][]Issue {
	out := make(map[string][]Issue)
	for _, is := range r.Issues {
		key := is.Brand
		if is.Engine != "" {
			key += "/" + is.Engine
		}
		out[key] = append(out[key], is)
	}
	return out
}

// PageKeys returns the keys of ByPage in sorted order.
func (r Report) PageKeys() []string {
	groups := r.ByPage()
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type checker struct {
	brand, engine string
	issues        []Issue
}

func (c *checker) add(field, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Brand:   c.brand,
		Engine:  c.engine,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Check runs every integrity rule over the table: shape against the
// embedded schema, FAQ and reliability sync with the structured data,
// required model columns, link syntax, and a lossless JSON round trip of
// each graph.
func Check(t content.Table) Report {
	var r Report
	for _, bs := range t.Brands() {
		c := &checker{brand: bs}
		checkBrand(c, t, bs)
		r.Issues = append(r.Issues, c.issues...)
	}
	_ = t.Each(func(brand, engine string, p content.EnginePageData) error {
		r.Pages++
		c := &checker{brand: brand, engine: engine}
		checkPage(c, p)
		r.Issues = append(r.Issues, c.issues...)
		return nil
	})
	return r
}

func checkPage(c *checker, p content.EnginePageData) {
	if !reSlug.MatchString(c.engine) {
		c.add("slug", "engine slug %q is not a lowercase slug", c.engine)
	}
	checkShape(c, p)
	checkFAQs(c, p)
	checkReliability(c, p)
	checkModels(c, p)
	checkLinks(c, p)
	checkRoundTrip(c, p.Schema)
}

// PageIssues runs the page-level rules of Check on a single page.
func PageIssues(brand, engine string, p content.EnginePageData) []Issue {
	c := &checker{brand: brand, engine: engine}
	checkPage(c, p)
	return c.issues
}

func checkBrand(c *checker, t content.Table, slug string) {
	if !reSlug.MatchString(slug) {
		c.add("slug", "brand slug %q is not a lowercase slug", slug)
	}
	b, err := t.Brand(slug)
	if err != nil {
		c.add("brand", "%v", err)
		return
	}
	if len(b.Engines) == 0 {
		c.add("engines", "brand has no engines")
	}
	checkLink(c, "heroImage.src", b.HeroImage.Src)
	checkLink(c, "researchResources.serviceManual", b.ResearchResources.ServiceManual)
	checkLink(c, "researchResources.serviceBulletin", b.ResearchResources.ServiceBulletin)
}

func checkShape(c *checker, p content.EnginePageData) {
	err := ValidateStruct(SchemaEnginePage, p)
	if err == nil {
		return
	}
	if verr, ok := err.(ValidationError); ok {
		for _, msg := range verr.Errors {
			c.add("shape", "%s", msg)
		}
		return
	}
	c.add("shape", "%v", err)
}

func checkFAQs(c *checker, p content.EnginePageData) {
	faq, ok := p.Schema.FAQPage()
	if !ok {
		if len(p.FAQs) > 0 {
			c.add("schema", "page has FAQs but no FAQPage node")
		}
		return
	}
	if len(faq.MainEntity) != len(p.FAQs) {
		c.add("faqs", "%d FAQs but FAQPage has %d questions", len(p.FAQs), len(faq.MainEntity))
		return
	}
	for i, f := range p.FAQs {
		q := faq.MainEntity[i]
		if f.Question != q.Name {
			c.add(fmt.Sprintf("faqs[%d].question", i), "does not match FAQPage question %q", q.Name)
		}
		if f.Answer != q.AcceptedAnswer.Text {
			c.add(fmt.Sprintf("faqs[%d].answer", i), "does not match FAQPage accepted answer")
		}
	}
}

func checkReliability(c *checker, p content.EnginePageData) {
	art, ok := p.Schema.Article()
	if !ok || art.HasPart == nil {
		if len(p.CommonReliabilityIssues.Issues) > 0 {
			c.add("schema", "page lists reliability issues but the Article has no hasPart")
		}
		return
	}
	considered := make(map[string]bool, len(art.HasPart.ExpertConsiderations))
	for _, s := range art.HasPart.ExpertConsiderations {
		considered[s] = true
	}
	for i, is := range p.CommonReliabilityIssues.Issues {
		if !considered[is.Title] {
			c.add(fmt.Sprintf("commonReliabilityIssues.issues[%d]", i), "%q missing from Article expertConsiderations", is.Title)
		}
	}
}

func checkModels(c *checker, p content.EnginePageData) {
	for i, row := range p.CompatibleModels.Rows {
		for _, col := range []string{content.ColMake, content.ColModels, content.ColYears} {
			if strings.TrimSpace(row[col]) == "" {
				c.add(fmt.Sprintf("compatibleModels[%d].%s", i, col), "empty")
			}
		}
	}
}

func checkLinks(c *checker, p content.EnginePageData) {
	checkLink(c, "bannerImage", p.BannerImage)
	for i, target := range markdown.Links(p.CompatibleModels.Description) {
		checkLink(c, fmt.Sprintf("compatibleModels.description link %d", i), target)
	}
	for i, src := range p.TechnicalSpecifications.PracticalImplications.PrimarySources {
		if strings.Contains(src, "://") {
			checkLink(c, fmt.Sprintf("primarySources[%d]", i), src)
		}
	}

	raw, err := json.Marshal(p.Schema)
	if err != nil {
		c.add("schema", "marshal: %v", err)
		return
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.add("schema", "unmarshal: %v", err)
		return
	}
	walkURLs(doc, "schema", func(path, v string) {
		checkLink(c, path, v)
	})
}

var urlKeys = map[string]bool{"url": true, "contentUrl": true, "@id": true}

func walkURLs(v any, path string, fn func(path, v string)) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := t[k]
			if s, ok := child.(string); ok && urlKeys[k] {
				fn(path+"."+k, s)
				continue
			}
			walkURLs(child, path+"."+k, fn)
		}
	case []any:
		for i, child := range t {
			walkURLs(child, fmt.Sprintf("%s[%d]", path, i), fn)
		}
	}
}

// checkLink accepts root-relative paths and absolute http(s) URLs.
func checkLink(c *checker, field, v string) {
	if err := ValidLink(v); err != nil {
		c.add(field, "%v", err)
	}
}

// ValidLink reports whether v is a root-relative path or an absolute
// http(s) URL with a host.
func ValidLink(v string) error {
	if v == "" {
		return fmt.Errorf("empty link")
	}
	if strings.ContainsAny(v, " \t\n") {
		return fmt.Errorf("link %q contains whitespace", v)
	}
	u, err := url.Parse(v)
	if err != nil {
		return fmt.Errorf("link %q: %w", v, err)
	}
	if strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//") {
		return nil
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return nil
	}
	return fmt.Errorf("link %q is neither root-relative nor absolute http(s)", v)
}

// checkRoundTrip re-encodes the graph after decoding it. Comparing bytes
// rather than values ignores nil versus empty slices, which encode alike.
func checkRoundTrip(c *checker, g jsonld.Graph) {
	first, err := json.Marshal(g)
	if err != nil {
		c.add("schema", "marshal: %v", err)
		return
	}
	var back jsonld.Graph
	if err := json.Unmarshal(first, &back); err != nil {
		c.add("schema", "unmarshal: %v", err)
		return
	}
	second, err := json.Marshal(back)
	if err != nil {
		c.add("schema", "re-marshal: %v", err)
		return
	}
	if !bytes.Equal(first, second) {
		c.add("schema", "JSON round trip is lossy")
	}
}
