package yamlschema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrPointerFormat reports a non-empty path expression that does not start
// with '/'.
var ErrPointerFormat = errors.New("yamlschema: pointer must start with '/'")

// ErrPointerIndex reports a sequence lookup with a non-numeric or
// out-of-range segment.
var ErrPointerIndex = errors.New("yamlschema: bad sequence index")

// Pointer is a parsed path expression: an ordered list of unescaped segments.
type Pointer []string

// ParsePointer splits path on unescaped '/' and unescapes each segment.
// "" yields no segments and "/" a single empty segment. "^/" denotes a
// literal slash and "^^" a literal caret; "~1" (slash) and "~0" (tilde) are
// honored for RFC 6901 compatibility. A trailing '/' yields a trailing empty
// segment.
func ParsePointer(path string) (Pointer, error) {
	if path == "" {
		return Pointer{}, nil
	}
	if path[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrPointerFormat, path)
	}
	rest := path[1:]
	segs := Pointer{}
	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c == '^' && i+1 < len(rest) && (rest[i+1] == '/' || rest[i+1] == '^'):
			b.WriteByte(rest[i+1])
			i++
		case c == '/':
			segs = append(segs, unescapeSegment(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	segs = append(segs, unescapeSegment(b.String()))
	return segs, nil
}

// unescapeSegment substitutes '~1' -> '/' before '~0' -> '~' so that "~01"
// round-trips to "~1".
func unescapeSegment(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

// Eval walks n by successive mapping-key or sequence-index lookups. A
// document wrapper is unwrapped first and alias nodes are dereferenced
// through their decoder-resolved target. A nil node with a nil error means
// the path did not resolve (a mapping key was absent); callers that require
// presence must treat that as a lookup failure.
func (p Pointer) Eval(n *yaml.Node) (*yaml.Node, error) {
	cur := deref(unwrapDocument(n))
	for _, seg := range p {
		if cur == nil {
			return nil, nil
		}
		switch cur.Kind {
		case yaml.SequenceNode:
			idx, ok := parseIndex(seg)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not an index", ErrPointerIndex, seg)
			}
			if idx >= len(cur.Content) {
				return nil, fmt.Errorf("%w: %d out of range (len %d)", ErrPointerIndex, idx, len(cur.Content))
			}
			cur = deref(cur.Content[idx])
		case yaml.MappingNode:
			cur = deref(mappingValue(cur, seg))
		default:
			cur = nil
		}
	}
	return cur, nil
}

// Resolve is the indexing convenience: ParsePointer followed by Eval.
func Resolve(path string, n *yaml.Node) (*yaml.Node, error) {
	p, err := ParsePointer(path)
	if err != nil {
		return nil, err
	}
	return p.Eval(n)
}

// parseIndex accepts canonical base-10 indices only: no sign, no leading
// zero unless the literal is exactly "0". Atoi rejects values that do not
// fit in an int, so an absurdly long digit run reads as out of range rather
// than wrapping negative.
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// mappingValue scans key/value pairs in order and returns the first value
// whose key text equals name, or nil.
func mappingValue(m *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if deref(m.Content[i]).Value == name {
			return m.Content[i+1]
		}
	}
	return nil
}
