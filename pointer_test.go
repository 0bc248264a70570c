package yamlschema_test

import (
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	yamlschema "github.com/yamlschema/yamlschema"
)

func mustNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("unmarshal %q: %v", src, err)
	}
	return &n
}

func TestParsePointer(t *testing.T) {
	cases := []struct {
		path string
		want yamlschema.Pointer
	}{
		{"", yamlschema.Pointer{}},
		{"/", yamlschema.Pointer{""}},
		{"/a", yamlschema.Pointer{"a"}},
		{"/a/b/c", yamlschema.Pointer{"a", "b", "c"}},
		{"/a/", yamlschema.Pointer{"a", ""}},
		{"//b", yamlschema.Pointer{"", "b"}},
		// caret escapes
		{"/a^/b", yamlschema.Pointer{"a/b"}},
		{"/a^^b", yamlschema.Pointer{"a^b"}},
		{"/^/^^", yamlschema.Pointer{"/^"}},
		// RFC 6901 escapes
		{"/a~1b", yamlschema.Pointer{"a/b"}},
		{"/a~0b", yamlschema.Pointer{"a~b"}},
		{"/~01", yamlschema.Pointer{"~1"}},
	}
	for _, tc := range cases {
		got, err := yamlschema.ParsePointer(tc.path)
		if err != nil {
			t.Errorf("ParsePointer(%q): %v", tc.path, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParsePointer(%q) = %#v, want %#v", tc.path, got, tc.want)
		}
	}
}

func TestParsePointerFormatError(t *testing.T) {
	for _, path := range []string{"a", "a/b", "hello", "^/", "~1"} {
		if _, err := yamlschema.ParsePointer(path); !errors.Is(err, yamlschema.ErrPointerFormat) {
			t.Errorf("ParsePointer(%q) err = %v, want ErrPointerFormat", path, err)
		}
	}
}

func TestEvalMapping(t *testing.T) {
	doc := mustNode(t, "hello: world\n")
	n, err := yamlschema.Resolve("/hello", doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n == nil || n.Value != "world" {
		t.Fatalf("Resolve(/hello) = %v, want scalar world", n)
	}
}

func TestEvalMappingAbsentKey(t *testing.T) {
	doc := mustNode(t, "hello: world\n")
	n, err := yamlschema.Resolve("/goodbye", doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n != nil {
		t.Fatalf("Resolve(/goodbye) = %v, want absent", n)
	}
}

func TestEvalSequence(t *testing.T) {
	doc := mustNode(t, "- a\n- b\n- c\n")

	n, err := yamlschema.Resolve("/1", doc)
	if err != nil {
		t.Fatalf("Resolve(/1): %v", err)
	}
	if n == nil || n.Value != "b" {
		t.Fatalf("Resolve(/1) = %v, want scalar b", n)
	}

	if _, err := yamlschema.Resolve("/3", doc); !errors.Is(err, yamlschema.ErrPointerIndex) {
		t.Errorf("Resolve(/3) err = %v, want ErrPointerIndex", err)
	}
	if _, err := yamlschema.Resolve("/x", doc); !errors.Is(err, yamlschema.ErrPointerIndex) {
		t.Errorf("Resolve(/x) err = %v, want ErrPointerIndex", err)
	}
	// leading zeros are not canonical indices
	if _, err := yamlschema.Resolve("/01", doc); !errors.Is(err, yamlschema.ErrPointerIndex) {
		t.Errorf("Resolve(/01) err = %v, want ErrPointerIndex", err)
	}
	// a digit run too long for int must read as out of range, not wrap
	if _, err := yamlschema.Resolve("/9999999999999999999", doc); !errors.Is(err, yamlschema.ErrPointerIndex) {
		t.Errorf("Resolve(/9999999999999999999) err = %v, want ErrPointerIndex", err)
	}
	if _, err := yamlschema.Resolve("/-1", doc); !errors.Is(err, yamlschema.ErrPointerIndex) {
		t.Errorf("Resolve(/-1) err = %v, want ErrPointerIndex", err)
	}
}

func TestEvalNested(t *testing.T) {
	doc := mustNode(t, `
spec:
  containers:
    - name: app
      image: app:v1
    - name: sidecar
      image: sidecar:v2
`)
	n, err := yamlschema.Resolve("/spec/containers/1/name", doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n == nil || n.Value != "sidecar" {
		t.Fatalf("got %v, want sidecar", n)
	}
}

func TestEvalEscapedKeys(t *testing.T) {
	doc := mustNode(t, `
a/b: one
c^d: two
`)
	one, err := yamlschema.Resolve("/a^/b", doc)
	if err != nil || one == nil || one.Value != "one" {
		t.Fatalf("Resolve(/a^/b) = %v, %v", one, err)
	}
	alias, err := yamlschema.Resolve("/a~1b", doc)
	if err != nil || alias == nil || alias.Value != "one" {
		t.Fatalf("Resolve(/a~1b) = %v, %v", alias, err)
	}
	two, err := yamlschema.Resolve("/c^^d", doc)
	if err != nil || two == nil || two.Value != "two" {
		t.Fatalf("Resolve(/c^^d) = %v, %v", two, err)
	}
}

func TestEvalThroughAlias(t *testing.T) {
	doc := mustNode(t, `
base: &b
  host: localhost
mirror: *b
`)
	n, err := yamlschema.Resolve("/mirror/host", doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n == nil || n.Value != "localhost" {
		t.Fatalf("got %v, want localhost", n)
	}
}

func TestEvalScalarCannotDescend(t *testing.T) {
	doc := mustNode(t, "hello: world\n")
	n, err := yamlschema.Resolve("/hello/deeper", doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n != nil {
		t.Fatalf("got %v, want absent", n)
	}
}

func TestEvalEmptyPointerYieldsRoot(t *testing.T) {
	doc := mustNode(t, "hello: world\n")
	p, err := yamlschema.ParsePointer("")
	if err != nil {
		t.Fatalf("ParsePointer: %v", err)
	}
	n, err := p.Eval(doc)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if n == nil || n.Kind != yaml.MappingNode {
		t.Fatalf("got %v, want the unwrapped mapping root", n)
	}
}
