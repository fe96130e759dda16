package jsonld

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the graph through its JSON form so YAML exports keep
// the schema.org keys and node order.
func (g Graph) MarshalYAML() (any, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	blockStyle(root)
	return root, nil
}

// blockStyle drops the flow style yaml.v3 records when it parses JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
