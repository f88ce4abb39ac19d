package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct.
// Only fields tagged with jsonschema "required" are listed as required.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{})
}

// VerifyAgainstSchema checks that every field required by the generated schema is set
func VerifyAgainstSchema(cfg *Config) error {
	schemaData, err := json.Marshal(GenerateSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	var missing []string
	for _, path := range requiredPaths(schema, defs, "", 0) {
		if isZero(lookup(configMap, path)) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required fields are empty: %s", strings.Join(missing, ", "))
	}
	return nil
}

// requiredPaths walks the schema and returns dotted paths of required properties
func requiredPaths(node, defs map[string]any, prefix string, depth int) []string {
	if depth > 10 {
		return nil
	}
	if ref, ok := node["$ref"].(string); ok {
		def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
		if !ok {
			return nil
		}
		node = def
	}

	var res []string
	if req, ok := node["required"].([]any); ok {
		for _, r := range req {
			if name, ok := r.(string); ok {
				res = append(res, prefix+name)
			}
		}
	}
	if props, ok := node["properties"].(map[string]any); ok {
		for name, p := range props {
			if child, ok := p.(map[string]any); ok {
				res = append(res, requiredPaths(child, defs, prefix+name+".", depth+1)...)
			}
		}
	}
	return res
}

func lookup(m map[string]any, path string) any {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = mm[part]
	}
	return cur
}

func isZero(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}
