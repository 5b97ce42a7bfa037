package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for failure codes.
// data provides values substituted into "{name}" placeholders of the message
// (for example "value" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var en = map[string]string{
	"invalid_type":          "invalid type: {value}",
	"not_string":            "not a string: {value}",
	"not_number":            "not a number: {value}",
	"not_boolean":           "not a boolean: {value}",
	"invalid_date":          "invalid date: {value}",
	"not_date":              "cannot convert {value} to date",
	"invalid_uuid":          "invalid uuid: {value}",
	"not_literal":           "{value}: does not match literal {expected}",
	"invalid_enum":          "invalid enumerated value {value} (expected one of {expected})",
	"cannot_map":            "cannot map value {value}",
	"no_match":              "no matching converter for {value}",
	"not_array":             "not an array: {value}",
	"not_record":            "not a string-keyed object: {value}",
	"not_object":            "not an object: {value}",
	"non_object":            "cannot get field {field} from non-object {value}",
	"cannot_convert":        "cannot convert non-object {value}",
	"not_a":                 "not a valid {description}: {value}",
	"field_not_found":       "field {field} not found in: {value}",
	"unexpected_property":   "{field}: unexpected property in source object",
	"discriminator_missing": "discriminator property {field} not present in {value}",
	"discriminator_unknown": "no converter for discriminator {field}={value}",
	"not_discriminated":     "not a discriminated object: {value}",
	"negative_index":        "element {index}: negative index",
	"index_out_of_range":    "element {index} out of range: {value}",
	"inverted_range":        "inverted range: {min} must be <= {max}",
	"constraint":            "{value}: {description}",
	"not_found":             "{description} not found",
	"too_many":              "{description} matches {count} items",
	"at_least_one":          "expected at least one {description}",
	"no_initializer":        "{field} is present but has no initializer",
	"parse_error":           "parse error: {value}",
	"duplicate_key":         "duplicate key {field} in {path}",
}

var ja = map[string]string{
	"invalid_type":          "型が不正です: {value}",
	"not_string":            "文字列ではありません: {value}",
	"not_number":            "数値ではありません: {value}",
	"not_boolean":           "真偽値ではありません: {value}",
	"not_array":             "配列ではありません: {value}",
	"not_object":            "オブジェクトではありません: {value}",
	"field_not_found":       "フィールド {field} が見つかりません: {value}",
	"unexpected_property":   "{field}: 未知のキーです",
	"discriminator_missing": "判別プロパティ {field} がありません: {value}",
	"inverted_range":        "範囲が逆転しています: {min} > {max}",
	"parse_error":           "解析エラー: {value}",
	"duplicate_key":         "キー {field} が重複しています: {path}",
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := "", false
	if t.lang == "ja" {
		tmpl, ok = ja[code]
	}
	if !ok {
		tmpl, ok = en[code]
	}
	if !ok {
		return code
	}
	return Expand(tmpl, data)
}

// Expand substitutes "{name}" placeholders in tmpl with values from data.
// Unknown placeholders are left untouched.
func Expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

var (
	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
)

// MatchLanguage picks the supported dictionary language ("en" or "ja") that
// best matches an Accept-Language style list such as "ja-JP,ja;q=0.9".
// Unparsable or unmatched input yields "en".
func MatchLanguage(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "en"
	}
	base, _ := supported[idx].Base()
	return base.String()
}
