package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
//
// The "en" dictionary is the wire format consumed by existing tooling and
// must stay bit-exact; translations are free to rephrase.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(key string) string {
		if data == nil {
			return ""
		}
		return data[key]
	}

	switch t.lang {
	case "ja":
		switch code {
		case "wrong_type":
			return "型が不正です: " + get("expected") + " が必要ですが " + get("actual") + " でした"
		case "field_missing":
			return "フィールド '" + get("field") + "' が見つかりません"
		case "extra_field":
			return "フィールド '" + get("field") + "' はスキーマで定義されていません"
		case "unknown_type":
			return "未知の型です: " + get("type")
		case "malformed_field":
			return "不正なフィールドです: " + get("error")
		case "unknown_schema":
			return "スキーマ '" + get("uri") + "' が見つかりません"
		case "multiple":
			return "複数のエラーが発生しました"
		}
	default: // "en"
		switch code {
		case "wrong_type":
			return "wrong type, expected " + get("expected") + " got " + get("actual")
		case "field_missing":
			return "missing field, '" + get("field") + "' not found"
		case "extra_field":
			return "field '" + get("field") + "' is not specified in the schema"
		case "unknown_type":
			return "unknown type specified: " + get("type")
		case "malformed_field":
			return "malformed field: " + get("error")
		case "unknown_schema":
			return "schema '" + get("uri") + "' references was not found"
		case "multiple":
			return "multiple errors were encountered"
		case "too_short":
			return "string length is less than minLength"
		case "too_long":
			return "string length is greater than maxLength"
		case "pattern":
			return "supplied value does not match regex pattern for field"
		case "lower_limit":
			return "value violates lower limit constraint"
		case "upper_limit":
			return "value violates upper limit constraint"
		case "multiple_of":
			return "value must be a multiple of the multipleOf field"
		case "min_items":
			return "array contains fewer than minItems items"
		case "max_items":
			return "array contains more than maxItems items"
		case "duplicate_item":
			return "array contains duplicate key"
		case "min_contains":
			return "fewer than minContains items validated against schema in 'contains'"
		case "max_contains":
			return "more than maxContains items validated against schema in 'contains'"
		case "contains_none":
			return "at least one item in the array must match the 'contains' schema"
		case "inversion":
			return "validation inversion failed because inner result matched"
		case "one_of_ambiguous":
			return "multiple branches validated successfully"
		}
	}

	// Constraint codes have no localized variants yet; fall back to en.
	if t.lang != "en" {
		return dictTranslator{lang: "en"}.Message(code, data)
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
