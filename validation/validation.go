// Package validation checks engine pages against the embedded JSON schemas
// and against the consistency rules that keep the human-facing copy and its
// structured data in step.
package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Embedded schema names.
const (
	SchemaEnginePage = "engine-page.json"
	SchemaGraph      = "jsonld-graph.json"
)

// schemaBase makes the embedded schemas resolve each other's $ref without
// touching the filesystem.
const schemaBase = "https://www.enginepages.net/schemas/"

//go:embed *.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

// ValidationError lists every schema violation found in one document.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation failed: %s", e.Errors[0])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		names, err := ListAvailableSchemas()
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		for _, name := range names {
			data, err := schemaFS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("failed to load schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(schemaBase+name, strings.NewReader(string(data))); err != nil {
				compileErr = fmt.Errorf("failed to add schema %s: %w", name, err)
				return
			}
		}
		compiled = make(map[string]*jsonschema.Schema, len(names))
		for _, name := range names {
			s, err := c.Compile(schemaBase + name)
			if err != nil {
				compileErr = fmt.Errorf("failed to compile schema %s: %w", name, err)
				return
			}
			compiled[name] = s
		}
	})
	return compiled, compileErr
}

// ValidateJSON validates decoded JSON data (maps, slices, strings, float64,
// bool, nil) against the named embedded schema.
func ValidateJSON(schemaName string, data any) error {
	schemas, err := compileSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema %q", schemaName)
	}

	err = schema.Validate(data)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return ValidationError{Errors: []string{err.Error()}}
	}
	var msgs []string
	collect(verr, &msgs)
	if len(msgs) == 0 {
		msgs = append(msgs, verr.Message)
	}
	return ValidationError{Errors: msgs}
}

// collect gathers the leaf causes, which carry the useful messages.
func collect(e *jsonschema.ValidationError, out *[]string) {
	if len(e.Causes) == 0 {
		loc := e.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+e.Message)
		return
	}
	for _, c := range e.Causes {
		collect(c, out)
	}
}

// ValidateDocument decodes raw JSON and validates it.
func ValidateDocument(schemaName string, raw []byte) error {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return ValidateJSON(schemaName, data)
}

// ValidateYAML validates YAML content against the named embedded schema.
func ValidateYAML(schemaName string, yamlContent []byte) error {
	var data any
	if err := yaml.Unmarshal(yamlContent, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	// Re-encode so numbers and maps take their JSON shapes.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert YAML: %w", err)
	}
	return ValidateDocument(schemaName, raw)
}

// ValidateStruct marshals v to JSON and validates the result.
func ValidateStruct(schemaName string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal struct: %w", err)
	}
	return ValidateDocument(schemaName, raw)
}

// ListAvailableSchemas returns the embedded schema filenames.
func ListAvailableSchemas() ([]string, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}
	var schemas []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			schemas = append(schemas, entry.Name())
		}
	}
	return schemas, nil
}

// Schema returns the raw bytes of an embedded schema.
func Schema(name string) ([]byte, error) {
	return schemaFS.ReadFile(name)
}
