// Package jsonld models the schema.org structured-data graph embedded in
// engine pages. The graph is a closed set of node kinds discriminated by
// their "@type" key; anything outside that set is rejected on decode.
package jsonld

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Context is the JSON-LD context every graph is published under.
const Context = "https://schema.org"

// Node kinds accepted in a graph.
const (
	TypeWebPage       = "WebPage"
	TypeWebSite       = "WebSite"
	TypeArticle       = "Article"
	TypeVehicleEngine = "VehicleEngine"
	TypeDataset       = "Dataset"
	TypeFAQPage       = "FAQPage"
)

// ErrUnknownType is returned when a graph node carries an "@type" outside
// the closed set above.
var ErrUnknownType = errors.New("jsonld: unknown @type")

// Node is one entry of a graph. The set of implementations is closed.
type Node interface {
	// Type returns the schema.org "@type" of the node.
	Type() string
	node()
}

// Graph is a schema.org "@graph" document.
type Graph struct {
	Context string
	Nodes   []Node
}

// New returns a graph under the schema.org context.
func New(nodes ...Node) Graph {
	return Graph{Context: Context, Nodes: nodes}
}

type graphJSON struct {
	Context string            `json:"@context"`
	Graph   []json.RawMessage `json:"@graph"`
}

// MarshalJSON encodes the graph as {"@context": ..., "@graph": [...]}.
func (g Graph) MarshalJSON() ([]byte, error) {
	ctx := g.Context
	if ctx == "" {
		ctx = Context
	}
	nodes := g.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	return json.Marshal(struct {
		Context string `json:"@context"`
		Graph   []Node `json:"@graph"`
	}{ctx, nodes})
}

// UnmarshalJSON decodes a graph, dispatching every node on its "@type".
func (g *Graph) UnmarshalJSON(b []byte) error {
	var raw graphJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	nodes := make([]Node, 0, len(raw.Graph))
	for i, r := range raw.Graph {
		n, err := decodeNode(r)
		if err != nil {
			return fmt.Errorf("jsonld: @graph[%d]: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	g.Context = raw.Context
	g.Nodes = nodes
	return nil
}

func decodeNode(raw json.RawMessage) (Node, error) {
	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case TypeWebPage:
		return decodeAs[WebPage](raw)
	case TypeWebSite:
		return decodeAs[WebSite](raw)
	case TypeArticle:
		return decodeAs[Article](raw)
	case TypeVehicleEngine:
		return decodeAs[VehicleEngine](raw)
	case TypeDataset:
		return decodeAs[Dataset](raw)
	case TypeFAQPage:
		return decodeAs[FAQPage](raw)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, head.Type)
	}
}

func decodeAs[T Node](raw json.RawMessage) (Node, error) {
	var n T
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	return n, nil
}

// Find returns the first node of type t.
func (g Graph) Find(t string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Type() == t {
			return n, true
		}
	}
	return nil, false
}

// FAQPage returns the graph's FAQ node, if any.
func (g Graph) FAQPage() (FAQPage, bool) {
	n, ok := g.Find(TypeFAQPage)
	if !ok {
		return FAQPage{}, false
	}
	return n.(FAQPage), true
}

// Article returns the graph's article node, if any.
func (g Graph) Article() (Article, bool) {
	n, ok := g.Find(TypeArticle)
	if !ok {
		return Article{}, false
	}
	return n.(Article), true
}

// VehicleEngine returns the graph's engine node, if any.
func (g Graph) VehicleEngine() (VehicleEngine, bool) {
	n, ok := g.Find(TypeVehicleEngine)
	if !ok {
		return VehicleEngine{}, false
	}
	return n.(VehicleEngine), true
}

// Script returns the graph as JSON safe to place inside a
// <script type="application/ld+json"> element.
func Script(g Graph) (string, error) {
	// json.Marshal escapes <, > and & so the payload cannot close the tag.
	b, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
