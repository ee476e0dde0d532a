package i18n

// Translator retrieves localized messages for violation codes. data carries
// structured detail to embed in the message (for example "field", "min",
// "max", "pattern", "got").
type Translator interface {
	Message(code uint32, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code uint32, data map[string]string) string {
	field := data["field"]
	switch t.lang {
	case "ja":
		switch code {
		case 1001:
			return field + " は最小長 " + data["min"] + " より短いです"
		case 1002:
			return field + " は最大長 " + data["max"] + " を超えています"
		case 1003:
			return field + " は最小値 " + data["min"] + " を下回っています"
		case 1004:
			return field + " は最大値 " + data["max"] + " を超えています"
		case 1005:
			return field + " は要求されたパターンに一致しません"
		case 1006:
			return field + " は許可されたコードではありません"
		case 1007:
			return field + " は必須要素ですが存在しません"
		case 1008:
			return field + " は択一要素です"
		case 9999:
			return "不明なドキュメント種別です"
		}
	default: // "en"
		switch code {
		case 1001:
			return field + " is shorter than the minimum length of " + data["min"]
		case 1002:
			return field + " exceeds the maximum length of " + data["max"]
		case 1003:
			return field + " is less than the minimum value of " + data["min"]
		case 1004:
			return field + " exceeds the maximum value of " + data["max"]
		case 1005:
			return field + " does not match the required pattern"
		case 1006:
			return field + " is not one of the permitted codes"
		case 1007:
			return field + " is required but absent"
		case 1008:
			return "exactly one alternative of " + field + " must be present, found " + data["got"]
		case 9999:
			return "Unknown document type"
		}
	}
	return field
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
func T(code uint32, data map[string]string) string { return currentTranslator.Message(code, data) }
