// Package implicit classifies the raw text of unquoted YAML scalars into
// the type the YAML 1.1 resolution rules imply: "42" is an integer,
// "2025-11-19" a date, "yes" a boolean, "foo" a string.
package implicit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the classification result.
type Kind int

const (
	String Kind = iota
	Null
	Bool
	Int
	Float
	Time
	Date
	Symbol
	Sexagesimal
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Time:
		return "time"
	case Date:
		return "date"
	case Symbol:
		return "symbol"
	case Sexagesimal:
		return "sexagesimal"
	}
	return "string"
}

var (
	timestampRE = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}([Tt]|[ \t]+)[0-9]{1,2}:[0-9]{2}:[0-9]{2}(\.[0-9]*)?([ \t]*(Z|[-+][0-9]{1,2}(:[0-9]{2})?))?$`)
	dateRE      = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}$`)
	infRE       = regexp.MustCompile(`^[-+]?\.(?i:inf)$`)
	nanRE       = regexp.MustCompile(`^\.(?i:nan)$`)
	sexRE       = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(:[0-5]?[0-9])+$`)
	sexFloatRE  = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(:[0-5]?[0-9])+\.[0-9_]*$`)
	floatRE     = regexp.MustCompile(`^[-+]?([0-9][0-9_,]*)?\.[0-9_]*([eE][-+][0-9]+)?$`)
	intRE       = regexp.MustCompile(`^[-+]?(0b[0-1_]+|0[0-7_]+|0|[1-9][0-9_]*|0x[0-9a-fA-F_]+)$`)
)

// Classify reports the type implied by text. The rule order is load-bearing:
// the long-word shortcut pre-empts reserved-token matching (no reserved token
// is longer than five bytes), and the sign-plus-bare-dot exception keeps "-."
// out of the float rule.
func Classify(text string) Kind {
	if text == "" {
		return Null
	}
	r, _ := utf8.DecodeRuneInString(text)
	if len(text) > 5 && wordLead(r) {
		return String
	}
	if unicode.IsLetter(r) || r == '~' {
		if k, ok := reservedKind(text); ok {
			return k
		}
		return String
	}
	switch {
	case timestampRE.MatchString(text):
		return Time
	case dateRE.MatchString(text):
		return Date
	case infRE.MatchString(text), nanRE.MatchString(text):
		return Float
	case len(text) >= 2 && text[0] == ':':
		return Symbol
	case sexRE.MatchString(text), sexFloatRE.MatchString(text):
		return Sexagesimal
	case floatRE.MatchString(text):
		if text == "+." || text == "-." {
			return String
		}
		return Float
	case intRE.MatchString(text):
		return Int
	}
	return String
}

// reservedKind exact-matches the case-insensitive reserved tokens.
func reservedKind(text string) (Kind, bool) {
	switch strings.ToLower(text) {
	case "~", "null":
		return Null, true
	case "yes", "true", "on", "no", "false", "off":
		return Bool, true
	}
	return String, false
}

// wordLead reports a leading rune that cannot begin any non-string token:
// letters, and punctuation or symbols other than the sign/dot/colon set.
func wordLead(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	if unicode.IsDigit(r) || strings.ContainsRune("+-.:", r) {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
