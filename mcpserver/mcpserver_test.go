package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/enginepages/content"
)

const testBase = "https://example.com"

func callRequest(name string, args any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Request: mcp.Request{Method: "tools/call"},
		Params:  mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, r)
	require.NotEmpty(t, r.Content)
	tc, ok := r.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", r.Content[0])
	return tc.Text
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(content.Default(), testBase, "test"))
}

func TestListEngines(t *testing.T) {
	h := listEnginesHandler(content.Default(), testBase)

	args := ListEnginesRequest{Brand: "McLaren"}
	r, err := h(context.Background(), callRequest("listEngines", args), args)
	require.NoError(t, err)
	require.False(t, r.IsError)

	var resp ListEnginesResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, r)), &resp))
	assert.Len(t, resp.Engines, content.Default().Len())
	assert.Equal(t, "m630", resp.Engines[0].Engine)
	assert.Equal(t, testBase+"/engines/mclaren/m630/", resp.Engines[0].URL)

	args = ListEnginesRequest{Brand: "bugatti"}
	r, err = h(context.Background(), callRequest("listEngines", args), args)
	require.NoError(t, err)
	assert.True(t, r.IsError)
}

func TestGetEngine(t *testing.T) {
	h := getEngineHandler(content.Default(), testBase)

	args := GetEngineRequest{Brand: "mclaren", Engine: "m838t"}
	r, err := h(context.Background(), callRequest("getEngine", args), args)
	require.NoError(t, err)
	require.False(t, r.IsError)

	var resp GetEngineResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, r)), &resp))
	assert.Equal(t, "(2011–2017)", resp.Page.Hero.Years)
	faq, ok := resp.Page.Schema.FAQPage()
	require.True(t, ok)
	assert.Len(t, faq.MainEntity, len(resp.Page.FAQs))
}

func TestGetEngineErrors(t *testing.T) {
	h := getEngineHandler(content.Default(), testBase)
	tests := []struct {
		name string
		args GetEngineRequest
		want string
	}{
		{"missing brand", GetEngineRequest{Engine: "m838t"}, "brand is required"},
		{"missing engine", GetEngineRequest{Brand: "mclaren"}, "engine is required"},
		{"unknown engine", GetEngineRequest{Brand: "mclaren", Engine: "does-not-exist"}, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := h(context.Background(), callRequest("getEngine", tt.args), tt.args)
			require.NoError(t, err)
			assert.True(t, r.IsError)
			assert.Contains(t, resultText(t, r), tt.want)
		})
	}
}

func TestValidateEngine(t *testing.T) {
	h := validateEngineHandler(content.Default())
	args := GetEngineRequest{Brand: "mclaren", Engine: "m840t-r"}
	r, err := h(context.Background(), callRequest("validateEngine", args), args)
	require.NoError(t, err)
	require.False(t, r.IsError)

	var resp ValidateEngineResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, r)), &resp))
	assert.Empty(t, resp.Issues)
	assert.Equal(t, "m840t-r", resp.Engine)
}
