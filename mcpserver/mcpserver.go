// Package mcpserver exposes the engine table to MCP clients as tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eringen/enginepages/content"
	"github.com/eringen/enginepages/validation"
)

const Name = "Engine Pages MCP"

type ListEnginesRequest struct {
	Brand string `json:"brand"` // Optional brand slug filter
}

type EngineSummary struct {
	Brand  string `json:"brand"`
	Engine string `json:"engine"`
	Title  string `json:"title"`
	Years  string `json:"years"`
	URL    string `json:"url"`
}

type ListEnginesResponse struct {
	Engines []EngineSummary `json:"engines"`
}

type GetEngineRequest struct {
	Brand  string `json:"brand"`
	Engine string `json:"engine"`
}

type GetEngineResponse struct {
	Brand  string                 `json:"brand"`
	Engine string                 `json:"engine"`
	URL    string                 `json:"url"`
	Page   content.EnginePageData `json:"page"`
}

type ValidateEngineResponse struct {
	Brand  string             `json:"brand"`
	Engine string             `json:"engine"`
	Issues []validation.Issue `json:"issues"`
}

// NewServer creates an MCP server with the listEngines, getEngine and
// validateEngine tools over tbl. baseURL prefixes the page URLs it returns.
func NewServer(tbl content.Table, baseURL, version string) *server.MCPServer {
	s := server.NewMCPServer(Name, version, server.WithToolCapabilities(false))

	listTool := mcp.NewTool("listEngines",
		mcp.WithDescription("List the engines that have review pages, optionally for one brand"),
		mcp.WithString("brand",
			mcp.Description("Brand slug to filter by (e.g. 'mclaren'); empty lists every brand"),
		),
	)
	s.AddTool(listTool, mcp.NewTypedToolHandler(listEnginesHandler(tbl, baseURL)))

	getTool := mcp.NewTool("getEngine",
		mcp.WithDescription("Get the full review page data of one engine, including its schema.org graph"),
		mcp.WithString("brand",
			mcp.Required(),
			mcp.Description("Brand slug, e.g. 'mclaren'"),
		),
		mcp.WithString("engine",
			mcp.Required(),
			mcp.Description("Engine slug, e.g. 'm838t'"),
		),
	)
	s.AddTool(getTool, mcp.NewTypedToolHandler(getEngineHandler(tbl, baseURL)))

	validateTool := mcp.NewTool("validateEngine",
		mcp.WithDescription("Run the content integrity checks on one engine page"),
		mcp.WithString("brand", mcp.Required(), mcp.Description("Brand slug")),
		mcp.WithString("engine", mcp.Required(), mcp.Description("Engine slug")),
	)
	s.AddTool(validateTool, mcp.NewTypedToolHandler(validateEngineHandler(tbl)))

	return s
}

func listEnginesHandler(tbl content.Table, baseURL string) func(ctx context.Context, request mcp.CallToolRequest, args ListEnginesRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListEnginesRequest) (*mcp.CallToolResult, error) {
		want := content.NormalizeSlug(args.Brand)
		if want != "" {
			if _, err := tbl.Brand(want); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
		resp := ListEnginesResponse{Engines: []EngineSummary{}}
		_ = tbl.Each(func(brand, engine string, p content.EnginePageData) error {
			if want != "" && brand != want {
				return nil
			}
			resp.Engines = append(resp.Engines, EngineSummary{
				Brand:  brand,
				Engine: engine,
				Title:  p.Title(engine),
				Years:  p.Hero.Years,
				URL:    baseURL + content.EnginePath(brand, engine),
			})
			return nil
		})
		return jsonResult(resp)
	}
}

func getEngineHandler(tbl content.Table, baseURL string) func(ctx context.Context, request mcp.CallToolRequest, args GetEngineRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetEngineRequest) (*mcp.CallToolResult, error) {
		brand, engine, errResult := resolve(args)
		if errResult != nil {
			return errResult, nil
		}
		p, err := tbl.Lookup(brand, engine)
		if err != nil {
			return lookupError(err), nil
		}
		return jsonResult(GetEngineResponse{
			Brand:  brand,
			Engine: engine,
			URL:    baseURL + content.EnginePath(brand, engine),
			Page:   p,
		})
	}
}

func validateEngineHandler(tbl content.Table) func(ctx context.Context, request mcp.CallToolRequest, args GetEngineRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetEngineRequest) (*mcp.CallToolResult, error) {
		brand, engine, errResult := resolve(args)
		if errResult != nil {
			return errResult, nil
		}
		p, err := tbl.Lookup(brand, engine)
		if err != nil {
			return lookupError(err), nil
		}
		issues := validation.PageIssues(brand, engine, p)
		if issues == nil {
			issues = []validation.Issue{}
		}
		return jsonResult(ValidateEngineResponse{Brand: brand, Engine: engine, Issues: issues})
	}
}

func resolve(args GetEngineRequest) (brand, engine string, errResult *mcp.CallToolResult) {
	brand = content.NormalizeSlug(args.Brand)
	engine = content.NormalizeSlug(args.Engine)
	if brand == "" {
		return "", "", mcp.NewToolResultError("brand is required")
	}
	if engine == "" {
		return "", "", mcp.NewToolResultError("engine is required")
	}
	return brand, engine, nil
}

func lookupError(err error) *mcp.CallToolResult {
	if errors.Is(err, content.ErrNotFound) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Serve runs s over streamable HTTP when httpAddr is set, otherwise over
// stdio.
func Serve(s *server.MCPServer, httpAddr string) error {
	if httpAddr != "" {
		log.Printf("Starting MCP server on HTTP address: %s", httpAddr)
		return server.NewStreamableHTTPServer(s).Start(httpAddr)
	}
	return server.ServeStdio(s)
}
