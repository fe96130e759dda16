package content

import (
	"maps"
	"slices"
)

// clone returns a deep copy of p so callers cannot reach the table's maps
// and slices through it.
func (p EnginePageData) clone() EnginePageData {
	p.Hero.Intro = slices.Clone(p.Hero.Intro)

	ts := &p.TechnicalSpecifications
	ts.EngineSpecs = slices.Clone(ts.EngineSpecs)
	ts.PracticalImplications.DataVerificationNotes = maps.Clone(ts.PracticalImplications.DataVerificationNotes)
	ts.PracticalImplications.PrimarySources = slices.Clone(ts.PracticalImplications.PrimarySources)

	cm := &p.CompatibleModels
	cm.Columns = slices.Clone(cm.Columns)
	if cm.Rows != nil {
		rows := make([]ModelRow, len(cm.Rows))
		for i, r := range cm.Rows {
			rows[i] = maps.Clone(r)
		}
		cm.Rows = rows
	}
	if cm.ExtraNotes != nil {
		notes := make([]NoteGroup, len(cm.ExtraNotes))
		for i, g := range cm.ExtraNotes {
			notes[i] = NoteGroup{Name: g.Name, Fields: cloneFields(g.Fields)}
		}
		cm.ExtraNotes = notes
	}

	p.CommonReliabilityIssues.Issues = slices.Clone(p.CommonReliabilityIssues.Issues)
	p.FAQs = slices.Clone(p.FAQs)
	p.Schema = p.Schema.Clone()
	return p
}

func cloneFields(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// clone copies b along with every engine page it holds.
func (b BrandData) clone() BrandData {
	if b.Engines == nil {
		return b
	}
	engines := make(map[string]EnginePageData, len(b.Engines))
	for slug, p := range b.Engines {
		engines[slug] = p.clone()
	}
	b.Engines = engines
	return b
}
