package yamlschema

// Package yamlschema provides:
//
// - Declarative validation of parsed YAML node trees (gopkg.in/yaml.v3) against
//   a JSON-Schema-like vocabulary (type/properties/items/required/pattern/...)
// - YAML 1.1 implicit typing for unquoted scalars (integer vs string vs date ...)
// - Anchor/alias aware traversal with a per-call alias table
// - Slash-style pointer resolution into the same trees (Pointer/Resolve)
// - A stable error model via Violation (JSON Pointer path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the schema builder DSL under dsl/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	var doc yaml.Node
//	_ = yaml.Unmarshal(data, &doc)
//	s, err := yamlschema.LoadSchema(schemaBytes)
//	err = yamlschema.New().Validate(s, &doc)
//
//	n, err := yamlschema.Resolve("/spec/containers/0/name", &doc)
