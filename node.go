package yamlschema

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// unwrapDocument descends into a document wrapper's single child.
func unwrapDocument(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

// deref follows a decoder-resolved alias link. Traversal outside a
// validation call has no alias table, so the parser's own back-reference is
// authoritative.
func deref(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// isQuoted reports whether a scalar was single- or double-quoted in the
// source. Quoting suppresses implicit typing: '42' is a string, 42 is not.
func isQuoted(n *yaml.Node) bool {
	return n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0
}

// explicitTag returns the tag spelled out in the source, if any. The
// decoder resolves implicit tags for every node; only TaggedStyle marks a
// tag the author actually wrote.
func explicitTag(n *yaml.Node) (string, bool) {
	if n.Style&yaml.TaggedStyle != 0 && n.Tag != "" {
		return n.Tag, true
	}
	return "", false
}

// hasStringTag reports an explicit !!str tag on the node.
func hasStringTag(n *yaml.Node) bool {
	t, ok := explicitTag(n)
	return ok && (t == "!!str" || t == "tag:yaml.org,2002:str")
}

// isCoreTag reports a tag from the YAML core schema (!!str, !!int, ...).
// Custom application tags (!foo) are what the tag check compares.
func isCoreTag(tag string) bool {
	return strings.HasPrefix(tag, "!!") || strings.HasPrefix(tag, "tag:yaml.org,2002:")
}

// kindName names a node's structural kind for error messages.
func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// aliasTable binds anchor ids to the nodes that defined them, scoped to a
// single top-level validation call. Aliases are back-references: an alias
// whose anchor has not been bound yet falls back to the decoder-resolved
// target, which is a documented input precondition rather than a defended
// case.
type aliasTable map[string]*yaml.Node

// resolve replaces alias nodes with their bound target and records anchors
// as they are first encountered.
func (at aliasTable) resolve(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode {
		if t, ok := at[n.Value]; ok {
			return t
		}
		return n.Alias
	}
	if n.Anchor != "" {
		at[n.Anchor] = n
	}
	return n
}
