package yamlschema

import (
	"strconv"
	"strings"

	"github.com/yamlschema/yamlschema/i18n"
)

// pathRef builds JSON Pointer breadcrumbs in a chain-safe way as validation
// descends, and creates Violations carrying them.
type pathRef struct {
	parts []string
}

func (p pathRef) Field(name string) pathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p pathRef) Index(i int) pathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p pathRef) violation(code string, data map[string]string) *Violation {
	return &Violation{Path: p.Pointer(), Code: code, Message: i18n.T(code, data)}
}
