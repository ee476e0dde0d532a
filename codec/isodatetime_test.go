package codec_test

import (
	"testing"
	"time"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
)

func TestParseDateTimeWireForms(t *testing.T) {
	cases := []string{
		"2024-03-01T10:15:30Z",
		"2024-03-01T10:15:30.123Z",
		"2024-03-01T10:15:30-05:00",
		"2024-03-01T10:15:30",
	}
	for _, s := range cases {
		if _, err := codec.ParseDateTime(s); err != nil {
			t.Errorf("ParseDateTime(%q): %v", s, err)
		}
	}

	if _, err := codec.ParseDateTime("03/01/2024 10:15"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestFormatDateTimeIsUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	in := time.Date(2024, 3, 1, 10, 15, 30, 0, loc)
	if got := codec.FormatDateTime(in); got != "2024-03-01T15:15:30Z" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := codec.ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := codec.FormatDate(d); got != "2024-03-01" {
		t.Fatalf("FormatDate = %q", got)
	}
	if _, err := codec.ParseDate("2024-13-01"); err == nil {
		t.Fatalf("expected parse failure for month 13")
	}
}

func TestCheckDateTime(t *testing.T) {
	if err := codec.CheckDateTime("CreDt", "2024-03-01T10:15:30Z"); err != nil {
		t.Fatalf("valid datetime: %v", err)
	}
	err := codec.CheckDateTime("CreDt", "yesterday")
	ve, ok := isoval.AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Code != isoval.CodePattern || ve.Path != "/CreDt" {
		t.Fatalf("got code=%d path=%q", ve.Code, ve.Path)
	}
}

func TestCheckDate(t *testing.T) {
	if err := codec.CheckDate("IntrBkSttlmDt", "2024-03-01"); err != nil {
		t.Fatalf("valid date: %v", err)
	}
	err := codec.CheckDate("IntrBkSttlmDt", "2024-03-01T00:00:00Z")
	ve, ok := isoval.AsValidationError(err)
	if !ok || ve.Code != isoval.CodePattern {
		t.Fatalf("expected pattern violation, got %v", err)
	}
}
