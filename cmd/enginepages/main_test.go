package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/jsonld"
	"github.com/eringen/enginepages/validation"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, validation.Report{Pages: 3, Issues: []validation.Issue{
		{Brand: "mclaren", Engine: "m630", Field: "faqs[0].answer", Message: "differs from FAQPage"},
		{Brand: "mclaren", Field: "engines", Message: "empty"},
	}}, false)

	out := buf.String()
	assert.Contains(t, out, "mclaren\n  engines empty\n")
	assert.Contains(t, out, "mclaren/m630\n  faqs[0].answer differs from FAQPage\n")
	assert.Contains(t, out, "✗ 3 pages checked, 2 issues")

	buf.Reset()
	writeReport(&buf, validation.Report{Pages: 8}, false)
	assert.Equal(t, "✓ 8 pages checked, 0 issues\n", buf.String())
}

func TestExportValue(t *testing.T) {
	tbl := content.Default()

	all, err := exportValue(tbl, nil, false)
	require.NoError(t, err)
	assert.Contains(t, all, "mclaren")

	brand, err := exportValue(tbl, []string{"mclaren"}, false)
	require.NoError(t, err)
	assert.Equal(t, "McLaren", brand.(content.BrandData).Name)

	page, err := exportValue(tbl, []string{"mclaren", "m838t"}, false)
	require.NoError(t, err)
	assert.IsType(t, content.EnginePageData{}, page)

	graph, err := exportValue(tbl, []string{"mclaren", "m838t"}, true)
	require.NoError(t, err)
	assert.IsType(t, jsonld.Graph{}, graph)

	_, err = exportValue(tbl, []string{"mclaren", "nope"}, false)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestEncodeRoundTripsThroughSchema(t *testing.T) {
	p, err := content.Default().Lookup("mclaren", "m630")
	require.NoError(t, err)

	js, err := encode(p, "json")
	require.NoError(t, err)
	assert.True(t, json.Valid(js))
	require.NoError(t, validation.ValidateDocument(validation.SchemaEnginePage, js))

	ym, err := encode(p, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(ym), "technicalSpecifications:")
	require.NoError(t, validation.ValidateYAML(validation.SchemaEnginePage, ym))
}

func TestValidateDocumentFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "graph.json")
	p, err := content.Default().Lookup("mclaren", "m838t")
	require.NoError(t, err)
	data, err := encode(p.Schema, "json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(good, data, 0o644))

	var buf bytes.Buffer
	require.NoError(t, validateDocument(&buf, good, validation.SchemaGraph, false))
	assert.Contains(t, buf.String(), "✓ "+good)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("\"@context\": https://example.org\n\"@graph\": []\n"), 0o644))
	buf.Reset()
	err = validateDocument(&buf, bad, validation.SchemaGraph, false)
	assert.ErrorIs(t, err, errIssues)
	assert.Contains(t, buf.String(), "✗ "+bad)
}
