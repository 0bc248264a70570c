package i18n

import "fmt"

// Translator retrieves localized messages for violation codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "actual" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "unexpected_type":
			return fmt.Sprintf("型が不正です (期待: %s, 実際: %s)", get("expected"), get("actual"))
		case "unexpected_tag":
			return fmt.Sprintf("タグが不正です (期待: %s, 実際: %s)", get("expected"), get("actual"))
		case "unexpected_property":
			return fmt.Sprintf("未知のプロパティです: %s", get("key"))
		case "unexpected_value":
			return fmt.Sprintf("値が不正です (期待: %s, 実際: %s)", get("expected"), get("actual"))
		case "invalid_string":
			return fmt.Sprintf("文字列が不正です: %s", get("detail"))
		case "missing_required_field":
			return fmt.Sprintf("必須プロパティが不足しています: %s", get("key"))
		}
	default: // "en"
		switch code {
		case "unexpected_type":
			return fmt.Sprintf("wanted %s, got %s", get("expected"), get("actual"))
		case "unexpected_tag":
			return fmt.Sprintf("wanted %s, got %s", get("expected"), get("actual"))
		case "unexpected_property":
			return fmt.Sprintf("unexpected property %q", get("key"))
		case "unexpected_value":
			return fmt.Sprintf("wanted %s, got %s", get("expected"), get("actual"))
		case "invalid_string":
			return fmt.Sprintf("invalid string: %s", get("detail"))
		case "missing_required_field":
			return fmt.Sprintf("missing required field %q", get("key"))
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
