// cmd/tools/worker-generator/schema.go
package main

import (
	"sort"
	"strings"
	"unicode"
)

// Field is one Input struct field derived from a JSON schema property.
type Field struct {
	Name     string
	JSONName string
	Type     string
	Required bool
}

// schemaFields lists the top-level properties of schema in name order.
func schemaFields(schema map[string]interface{}) []Field {
	props, _ := schema["properties"].(map[string]interface{})
	required := map[string]bool{}
	if list, ok := schema["required"].([]interface{}); ok {
		for _, r := range list {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	fields := make([]Field, 0, len(props))
	for name, raw := range props {
		prop, _ := raw.(map[string]interface{})
		fields = append(fields, Field{
			Name:     exportedName(name),
			JSONName: name,
			Type:     goType(prop),
			Required: required[name],
		})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].JSONName < fields[j].JSONName })
	return fields
}

func goType(prop map[string]interface{}) string {
	switch prop["type"] {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		items, _ := prop["items"].(map[string]interface{})
		if items == nil {
			return "[]interface{}"
		}
		return "[]" + goType(items)
	case "object":
		return "map[string]interface{}"
	default:
		return "interface{}"
	}
}

// exportedName turns "userId" or "user_id" into "UserID".
func exportedName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	out := b.String()
	if strings.HasSuffix(out, "Id") {
		out = strings.TrimSuffix(out, "Id") + "ID"
	}
	return out
}
