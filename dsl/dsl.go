// Package dsl builds yamlschema.Schema values fluently, for callers who
// prefer code over schema documents.
package dsl

import (
	yamlschema "github.com/yamlschema/yamlschema"
)

// ObjectBuilder accumulates an object schema.
type ObjectBuilder struct {
	s *yamlschema.Schema
}

// Object creates a new object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{s: &yamlschema.Schema{
		Type:       yamlschema.TypeList{yamlschema.TypeObject},
		Properties: map[string]*yamlschema.Schema{},
	}}
}

// Prop registers a property with its sub-schema.
func (b *ObjectBuilder) Prop(name string, sub *yamlschema.Schema) *ObjectBuilder {
	b.s.Properties[name] = sub
	return b
}

// Require marks property names as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	b.s.Required = append(b.s.Required, names...)
	return b
}

// Tag sets the expected attached tag.
func (b *ObjectBuilder) Tag(tag string) *ObjectBuilder {
	b.s.Tag = tag
	return b
}

// Additional validates unmatched properties against sub instead of
// rejecting them.
func (b *ObjectBuilder) Additional(sub *yamlschema.Schema) *ObjectBuilder {
	b.s.AdditionalProperties = sub
	return b
}

// PropertyNames constrains the mapping keys themselves.
func (b *ObjectBuilder) PropertyNames(sub *yamlschema.Schema) *ObjectBuilder {
	b.s.PropertyNames = sub
	return b
}

// Schema returns the built schema.
func (b *ObjectBuilder) Schema() *yamlschema.Schema { return b.s }

// Map builds an object schema whose every value validates against sub, with
// no fixed property set.
func Map(sub *yamlschema.Schema) *yamlschema.Schema {
	return &yamlschema.Schema{
		Type:  yamlschema.TypeList{yamlschema.TypeObject},
		Items: sub,
	}
}

// ArrayBuilder accumulates an array schema.
type ArrayBuilder struct {
	s *yamlschema.Schema
}

// Array builds an array schema with a homogeneous element schema.
func Array(items *yamlschema.Schema) *ArrayBuilder {
	return &ArrayBuilder{s: &yamlschema.Schema{
		Type:  yamlschema.TypeList{yamlschema.TypeArray},
		Items: items,
	}}
}

// Tuple builds an array schema with positional element schemas.
func Tuple(prefix ...*yamlschema.Schema) *ArrayBuilder {
	return &ArrayBuilder{s: &yamlschema.Schema{
		Type:        yamlschema.TypeList{yamlschema.TypeArray},
		PrefixItems: prefix,
	}}
}

// MinItems bounds the element count from below.
func (b *ArrayBuilder) MinItems(n int) *ArrayBuilder {
	b.s.MinItems = &n
	return b
}

// MaxItems bounds the element count from above.
func (b *ArrayBuilder) MaxItems(n int) *ArrayBuilder {
	b.s.MaxItems = &n
	return b
}

// Schema returns the built schema.
func (b *ArrayBuilder) Schema() *yamlschema.Schema { return b.s }

// StringBuilder accumulates a string schema.
type StringBuilder struct {
	s *yamlschema.Schema
}

// String builds a string schema.
func String() *StringBuilder {
	return &StringBuilder{s: &yamlschema.Schema{Type: yamlschema.TypeList{yamlschema.TypeString}}}
}

// Pattern requires the full text to match pat.
func (b *StringBuilder) Pattern(pat string) *StringBuilder {
	b.s.Pattern = pat
	return b
}

// MinLength bounds the byte length from below.
func (b *StringBuilder) MinLength(n int) *StringBuilder {
	b.s.MinLength = &n
	return b
}

// MaxLength bounds the byte length from above.
func (b *StringBuilder) MaxLength(n int) *StringBuilder {
	b.s.MaxLength = &n
	return b
}

// Schema returns the built schema.
func (b *StringBuilder) Schema() *yamlschema.Schema { return b.s }

func typed(name string) *yamlschema.Schema {
	return &yamlschema.Schema{Type: yamlschema.TypeList{name}}
}

// Null matches the empty scalar.
func Null() *yamlschema.Schema { return typed(yamlschema.TypeNull) }

// Bool matches literal true/false.
func Bool() *yamlschema.Schema { return typed(yamlschema.TypeBoolean) }

// Int matches unquoted integer scalars.
func Int() *yamlschema.Schema { return typed(yamlschema.TypeInteger) }

// Float matches unquoted float scalars.
func Float() *yamlschema.Schema { return typed(yamlschema.TypeFloat) }

// Time matches unquoted timestamp scalars.
func Time() *yamlschema.Schema { return typed(yamlschema.TypeTime) }

// Date matches unquoted plain-date scalars.
func Date() *yamlschema.Schema { return typed(yamlschema.TypeDate) }

// Symbol matches unquoted :symbol scalars.
func Symbol() *yamlschema.Schema { return typed(yamlschema.TypeSymbol) }

// Types builds a union schema whose alternatives are tried left-to-right.
func Types(names ...string) *yamlschema.Schema {
	return &yamlschema.Schema{Type: yamlschema.TypeList(names)}
}
