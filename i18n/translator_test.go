package i18n_test

import (
	"strings"
	"testing"

	"github.com/open-payments/isoval/i18n"
)

func TestEnglishMessages(t *testing.T) {
	got := i18n.T(1001, map[string]string{"field": "MsgId", "min": "1"})
	if got != "MsgId is shorter than the minimum length of 1" {
		t.Fatalf("unexpected message: %q", got)
	}
	got = i18n.T(9999, nil)
	if got != "Unknown document type" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestJapaneseMessages(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	got := i18n.T(1002, map[string]string{"field": "Nm", "max": "140"})
	if !strings.Contains(got, "最大長") || !strings.Contains(got, "Nm") {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	i18n.SetLanguage("fr")
	defer i18n.SetLanguage("en")

	got := i18n.T(1005, map[string]string{"field": "Ctry"})
	if got != "Ctry does not match the required pattern" {
		t.Fatalf("unexpected message: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code uint32, data map[string]string) string {
	return strings.ToUpper(data["field"])
}

func TestCustomTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)

	if got := i18n.T(1001, map[string]string{"field": "msgid"}); got != "MSGID" {
		t.Fatalf("custom translator not used: %q", got)
	}
}

func TestNilTranslatorRestoresDefault(t *testing.T) {
	i18n.SetTranslator(nil)
	got := i18n.T(1007, map[string]string{"field": "Req"})
	if got != "Req is required but absent" {
		t.Fatalf("unexpected message: %q", got)
	}
}
