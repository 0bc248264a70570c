package yamlschema

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Type names recognized in Schema.Type.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNull    = "null"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeTime    = "time"
	TypeDate    = "date"
	TypeSymbol  = "symbol"
)

// TypeList holds a single type name or a non-empty ordered list of
// alternatives, tried left-to-right during validation. It decodes from both
// a scalar and a sequence in YAML and JSON.
type TypeList []string

// UnmarshalYAML accepts `type: string` as well as `type: [null, string]`.
// An unquoted null in type position names the null type rather than the
// absence of a value.
func (t *TypeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = TypeList{typeName(value)}
		return nil
	case yaml.SequenceNode:
		names := make([]string, 0, len(value.Content))
		for _, c := range value.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("yamlschema: type alternative must be a scalar, got %s", kindName(c))
			}
			names = append(names, typeName(c))
		}
		*t = TypeList(names)
		return nil
	}
	return fmt.Errorf("yamlschema: type must be a scalar or a sequence, got %s", kindName(value))
}

func (t TypeList) has(name string) bool {
	for _, n := range t {
		if n == name {
			return true
		}
	}
	return false
}

func typeName(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return TypeNull
	}
	return n.Value
}

// UnmarshalJSON accepts `"string"` as well as `["null","string"]`.
func (t *TypeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ss []string
		if err := gojson.Unmarshal(data, &ss); err != nil {
			return err
		}
		*t = TypeList(ss)
		return nil
	}
	var s string
	if err := gojson.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = TypeList{s}
	return nil
}

// Schema is the declarative JSON-Schema-like vocabulary the validator
// interprets. Schemas are immutable during validation; the validator never
// writes through these pointers.
type Schema struct {
	Type TypeList `yaml:"type" json:"type,omitempty"`

	// Object
	Properties           map[string]*Schema `yaml:"properties" json:"properties,omitempty"`
	Required             []string           `yaml:"required" json:"required,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties" json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `yaml:"propertyNames" json:"propertyNames,omitempty"`
	Tag                  string             `yaml:"tag" json:"tag,omitempty"`

	// Array
	Items       *Schema   `yaml:"items" json:"items,omitempty"`
	PrefixItems []*Schema `yaml:"prefixItems" json:"prefixItems,omitempty"`
	MinItems    *int      `yaml:"minItems" json:"minItems,omitempty"`
	MaxItems    *int      `yaml:"maxItems" json:"maxItems,omitempty"`

	// String (lengths are byte lengths, pattern is a full match)
	Pattern   string `yaml:"pattern" json:"pattern,omitempty"`
	MinLength *int   `yaml:"minLength" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength" json:"maxLength,omitempty"`
}

// LoadSchema decodes a YAML schema document.
func LoadSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yamlschema: decode schema: %w", err)
	}
	return &s, nil
}

// LoadSchemaJSON decodes a JSON schema document.
func LoadSchemaJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := gojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yamlschema: decode schema: %w", err)
	}
	return &s, nil
}
