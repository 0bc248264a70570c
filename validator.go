package yamlschema

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamlschema/yamlschema/internal/implicit"
)

// TagReader derives a node's effective tag. The indirection exists so
// callers can remap custom tag shorthands before the validator compares
// them against Schema.Tag.
type TagReader interface {
	ReadTag(n *yaml.Node) (string, bool)
}

// TagReaderFunc adapts a function to the TagReader interface.
type TagReaderFunc func(n *yaml.Node) (string, bool)

func (f TagReaderFunc) ReadTag(n *yaml.Node) (string, bool) { return f(n) }

// defaultTagReader reads the node's own attached tag, ignoring core-schema
// tags (!!str and friends): only custom application tags take part in tag
// checking.
type defaultTagReader struct{}

func (defaultTagReader) ReadTag(n *yaml.Node) (string, bool) {
	t, ok := explicitTag(n)
	if !ok || isCoreTag(t) {
		return "", false
	}
	return t, true
}

// Validator decides membership of a node tree in a schema. A Validator is
// immutable after construction and safe for concurrent use; all per-call
// state lives on the call stack.
type Validator struct {
	tags TagReader
}

// Option configures a Validator.
type Option func(*Validator)

// WithTagReader overrides the default tag extraction strategy.
func WithTagReader(tr TagReader) Option {
	return func(v *Validator) {
		if tr != nil {
			v.tags = tr
		}
	}
}

// New constructs a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{tags: defaultTagReader{}}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate walks n against s and returns nil on success, a *Violation on
// the first data error, or a *SchemaError when the schema itself is
// malformed. Validation is fail-fast: the descent stops at the first
// violation and propagates it unchanged.
func (v *Validator) Validate(s *Schema, n *yaml.Node) error {
	viol, err := v.Invalid(s, n)
	if err != nil {
		return err
	}
	if viol != nil {
		return viol
	}
	return nil
}

// Invalid is the non-throwing variant of Validate: it returns the violation
// value (nil when the node is valid) for programmatic inspection. The error
// return is reserved for schema-authoring mistakes.
func (v *Validator) Invalid(s *Schema, n *yaml.Node) (*Violation, error) {
	if s == nil {
		return nil, schemaErrorf("/", "nil schema")
	}
	if n == nil {
		return nil, schemaErrorf("/", "nil node")
	}
	return v.visit(s, unwrapDocument(n), aliasTable{}, pathRef{})
}

func (v *Validator) visit(s *Schema, n *yaml.Node, at aliasTable, p pathRef) (*Violation, error) {
	n = at.resolve(n)
	if n == nil {
		return nil, schemaErrorf(p.Pointer(), "alias to unbound anchor")
	}
	if len(s.Type) == 0 {
		return nil, schemaErrorf(p.Pointer(), "schema has no type")
	}
	// An expected tag belongs to the object type; with no object alternative
	// at all it is an authoring mistake. Checked once per frame so a union's
	// non-object branches stay free to fail on data.
	if s.Tag != "" && !s.Type.has(TypeObject) {
		return nil, schemaErrorf(p.Pointer(), "tag is only valid on object schemas, not %q", strings.Join(s.Type, ", "))
	}
	if len(s.Type) == 1 {
		return v.visitType(s.Type[0], s, n, at, p)
	}
	// Union: alternatives are tried left-to-right against the same starting
	// state; first success wins, all-fail keeps the last alternative's error.
	var last *Violation
	for _, typ := range s.Type {
		viol, err := v.visitType(typ, s, n, at, p)
		if err != nil {
			return nil, err
		}
		if viol == nil {
			return nil, nil
		}
		last = viol
	}
	return last, nil
}

func (v *Validator) visitType(typ string, s *Schema, n *yaml.Node, at aliasTable, p pathRef) (*Violation, error) {
	if viol, err := v.checkTag(typ, s, n, p); viol != nil || err != nil {
		return viol, err
	}
	switch typ {
	case TypeObject:
		return v.visitObject(s, n, at, p)
	case TypeArray:
		return v.visitArray(s, n, at, p)
	case TypeString:
		return v.visitString(s, n, p)
	case TypeNull, TypeBoolean, TypeInteger, TypeFloat, TypeTime, TypeDate, TypeSymbol:
		return v.visitScalar(typ, n, p), nil
	}
	return nil, schemaErrorf(p.Pointer(), "unknown type %q", typ)
}

// checkTag compares the node's effective tag against the schema. Only
// object schemas may carry an expected tag; on any other type an effective
// tag is itself a violation.
func (v *Validator) checkTag(typ string, s *Schema, n *yaml.Node, p pathRef) (*Violation, error) {
	tag, ok := v.tags.ReadTag(n)
	if typ != TypeObject {
		if ok {
			return p.violation(CodeUnexpectedTag, map[string]string{
				"expected": "no tag", "actual": fmt.Sprintf("tag %s", tag),
			}), nil
		}
		return nil, nil
	}
	want := s.Tag
	if !ok && want == "" {
		return nil, nil
	}
	if ok && tag == want {
		return nil, nil
	}
	return p.violation(CodeUnexpectedTag, map[string]string{
		"expected": describeTag(want), "actual": describeTag(tag),
	}), nil
}

func describeTag(tag string) string {
	if tag == "" {
		return "no tag"
	}
	return fmt.Sprintf("tag %s", tag)
}

// stringKey is the constraint applied to mapping keys when the schema gives
// no propertyNames of its own.
var stringKey = &Schema{Type: TypeList{TypeString}}

func (v *Validator) visitObject(s *Schema, n *yaml.Node, at aliasTable, p pathRef) (*Violation, error) {
	if n.Kind != yaml.MappingNode {
		return p.violation(CodeUnexpectedType, map[string]string{
			"expected": TypeObject, "actual": kindName(n),
		}), nil
	}
	if s.Properties == nil && s.Items == nil {
		return nil, schemaErrorf(p.Pointer(), "object schema needs properties or items")
	}
	keySchema := s.PropertyNames
	if keySchema == nil {
		keySchema = stringKey
	}
	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := at.resolve(n.Content[i])
		name := key.Value
		kp := p.Field(name)
		if viol, err := v.visit(keySchema, key, at, kp); viol != nil || err != nil {
			return viol, err
		}
		val := n.Content[i+1]
		if s.Properties == nil {
			seen[name] = struct{}{}
			if viol, err := v.visit(s.Items, val, at, kp); viol != nil || err != nil {
				return viol, err
			}
			continue
		}
		sub, ok := s.Properties[name]
		switch {
		case ok:
		case s.AdditionalProperties != nil:
			sub = s.AdditionalProperties
		default:
			return kp.violation(CodeUnexpectedProperty, map[string]string{"key": name}), nil
		}
		seen[name] = struct{}{}
		if viol, err := v.visit(sub, val, at, kp); viol != nil || err != nil {
			return viol, err
		}
	}
	// Required is a set difference against the keys consumed above; the
	// schema itself is never mutated.
	for _, req := range s.Required {
		if _, ok := seen[req]; !ok {
			return p.violation(CodeMissingRequiredField, map[string]string{"key": req}), nil
		}
	}
	return nil, nil
}

func (v *Validator) visitArray(s *Schema, n *yaml.Node, at aliasTable, p pathRef) (*Violation, error) {
	if n.Kind != yaml.SequenceNode {
		return p.violation(CodeUnexpectedType, map[string]string{
			"expected": TypeArray, "actual": kindName(n),
		}), nil
	}
	count := len(n.Content)
	if s.MaxItems != nil && count > *s.MaxItems {
		return p.violation(CodeUnexpectedValue, map[string]string{
			"expected": fmt.Sprintf("at most %d items", *s.MaxItems),
			"actual":   fmt.Sprintf("%d items", count),
		}), nil
	}
	if s.MinItems != nil && count < *s.MinItems {
		return p.violation(CodeUnexpectedValue, map[string]string{
			"expected": fmt.Sprintf("at least %d items", *s.MinItems),
			"actual":   fmt.Sprintf("%d items", count),
		}), nil
	}
	switch {
	case s.Items != nil && s.PrefixItems != nil:
		return nil, schemaErrorf(p.Pointer(), "array schema takes items or prefixItems, not both")
	case s.Items != nil:
		for i, c := range n.Content {
			if viol, err := v.visit(s.Items, c, at, p.Index(i)); viol != nil || err != nil {
				return viol, err
			}
		}
	case s.PrefixItems != nil:
		// Positional: zip over the shorter side; count policing belongs to
		// minItems/maxItems.
		for i, sub := range s.PrefixItems {
			if i >= count {
				break
			}
			if viol, err := v.visit(sub, n.Content[i], at, p.Index(i)); viol != nil || err != nil {
				return viol, err
			}
		}
	default:
		return nil, schemaErrorf(p.Pointer(), "array schema needs items or prefixItems")
	}
	return nil, nil
}

func (v *Validator) visitString(s *Schema, n *yaml.Node, p pathRef) (*Violation, error) {
	if n.Kind != yaml.ScalarNode {
		return p.violation(CodeUnexpectedType, map[string]string{
			"expected": TypeString, "actual": kindName(n),
		}), nil
	}
	// Quoting or an explicit !!str tag settles the classification; only bare
	// text goes through implicit typing.
	if !isQuoted(n) && !hasStringTag(n) {
		if k := implicit.Classify(n.Value); k != implicit.String {
			return p.violation(CodeUnexpectedValue, map[string]string{
				"expected": TypeString, "actual": k.String(),
			}), nil
		}
	}
	if s.MinLength != nil && len(n.Value) < *s.MinLength {
		return p.violation(CodeInvalidString, map[string]string{
			"detail": fmt.Sprintf("length %d is under minLength %d", len(n.Value), *s.MinLength),
		}), nil
	}
	if s.MaxLength != nil && len(n.Value) > *s.MaxLength {
		return p.violation(CodeInvalidString, map[string]string{
			"detail": fmt.Sprintf("length %d exceeds maxLength %d", len(n.Value), *s.MaxLength),
		}), nil
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(`\A(?:` + s.Pattern + `)\z`)
		if err != nil {
			return nil, schemaErrorf(p.Pointer(), "bad pattern %q: %v", s.Pattern, err)
		}
		if !re.MatchString(n.Value) {
			return p.violation(CodeInvalidString, map[string]string{
				"detail": fmt.Sprintf("%q does not match pattern %q", n.Value, s.Pattern),
			}), nil
		}
	}
	return nil, nil
}

// visitScalar handles the non-string scalar types: the text must be
// unquoted and classify as exactly the declared type. The reference
// rendition reported "expected X, got X" here; the found classification is
// reported instead.
func (v *Validator) visitScalar(typ string, n *yaml.Node, p pathRef) *Violation {
	if n.Kind != yaml.ScalarNode {
		return p.violation(CodeUnexpectedType, map[string]string{
			"expected": typ, "actual": kindName(n),
		})
	}
	if isQuoted(n) {
		return p.violation(CodeUnexpectedValue, map[string]string{
			"expected": typ, "actual": "quoted string",
		})
	}
	got := implicit.Classify(n.Value)
	if got.String() != typ {
		return p.violation(CodeUnexpectedValue, map[string]string{
			"expected": typ, "actual": got.String(),
		})
	}
	switch typ {
	case TypeNull:
		if n.Value != "" {
			return p.violation(CodeUnexpectedValue, map[string]string{
				"expected": "empty null literal", "actual": n.Value,
			})
		}
	case TypeBoolean:
		if n.Value != "true" && n.Value != "false" {
			return p.violation(CodeUnexpectedValue, map[string]string{
				"expected": "true or false", "actual": n.Value,
			})
		}
	}
	return nil
}
