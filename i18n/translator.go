package i18n

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator retrieves localized messages for Issue codes. args fill the
// verbs of the message registered for code. Numbers are passed pre-rendered
// as strings so that locale digit grouping does not apply.
type Translator interface {
	Message(code string, args ...any) string
}

var (
	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
	messages  = catalog.NewBuilder(catalog.Fallback(language.English))
)

func init() {
	en := map[string]string{
		"invalid_type":    "%s value cannot be interpreted as an integer",
		"out_of_range":    "number %s out of range (must be %s..%s)",
		"invalid_format":  "invalid Roman numeral %q",
		"parse_error":     "parse error: %v",
		"invalid_pointer": "invalid JSON pointer %q",
	}
	ja := map[string]string{
		"invalid_type":    "%s の値は整数として解釈できません",
		"out_of_range":    "数値 %s は範囲外です (%s..%s)",
		"invalid_format":  "不正なローマ数字です: %q",
		"parse_error":     "解析エラー: %v",
		"invalid_pointer": "不正な JSON ポインタです: %q",
	}
	for code, msg := range en {
		_ = messages.SetString(language.English, code, msg)
	}
	for code, msg := range ja {
		_ = messages.SetString(language.Japanese, code, msg)
	}
}

// dictTranslator is the built-in catalog-backed Translator.
type dictTranslator struct {
	printer *message.Printer
}

func newDictTranslator(tag language.Tag) dictTranslator {
	return dictTranslator{printer: message.NewPrinter(tag, message.Catalog(messages))}
}

func (t dictTranslator) Message(code string, args ...any) string {
	if !known(code) {
		return code
	}
	return t.printer.Sprintf(code, args...)
}

func known(code string) bool {
	switch code {
	case "invalid_type", "out_of_range", "invalid_format", "parse_error", "invalid_pointer":
		return true
	}
	return false
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = newDictTranslator(language.English)
)

// SetLanguage switches the built-in Translator language. Any BCP 47 tag is
// accepted; tags other than Japanese fall back to English.
func SetLanguage(lang string) {
	tag := language.English
	if t, err := language.Parse(lang); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	mu.Lock()
	currentTranslator = newDictTranslator(tag)
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = newDictTranslator(language.English)
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, args ...any) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, args...)
}
