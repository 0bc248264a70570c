package i18n_test

import (
	"strings"
	"testing"

	"github.com/yamlschema/yamlschema/i18n"
)

func TestMessageEmbedsData(t *testing.T) {
	msg := i18n.T("unexpected_value", map[string]string{"expected": "integer", "actual": "string"})
	if !strings.Contains(msg, "integer") || !strings.Contains(msg, "string") {
		t.Errorf("message should embed expected/actual, got %q", msg)
	}
	msg = i18n.T("missing_required_field", map[string]string{"key": "bar"})
	if !strings.Contains(msg, "bar") {
		t.Errorf("message should name the field, got %q", msg)
	}
}

func TestMessageUnknownCodeFallsBack(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Errorf("unknown code should echo the code, got %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	defer i18n.SetLanguage("en")
	i18n.SetLanguage("ja")
	msg := i18n.T("missing_required_field", map[string]string{"key": "bar"})
	if !strings.Contains(msg, "bar") {
		t.Errorf("ja message should still name the field, got %q", msg)
	}
	if msg == i18n.T("unexpected_property", map[string]string{"key": "bar"}) {
		t.Errorf("distinct codes should render distinct messages")
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return strings.ToUpper(code)
}

func TestSetTranslator(t *testing.T) {
	defer i18n.SetTranslator(nil)
	i18n.SetTranslator(upperTranslator{})
	if got := i18n.T("unexpected_type", nil); got != "UNEXPECTED_TYPE" {
		t.Errorf("custom translator not used, got %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Errorf("nil translator should restore the dictionary, got %q", got)
	}
}
