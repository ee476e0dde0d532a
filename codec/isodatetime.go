package codec

import (
	"time"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

// ISODateTime wire layouts. ISO 20022 permits UTC, offset and local (no zone
// designator) forms.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

const dateLayout = "2006-01-02"

// ParseDateTime decodes an ISODateTime wire string into a time.Time.
func ParseDateTime(s string) (time.Time, error) {
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatDateTime encodes t in the canonical UTC wire form.
func FormatDateTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// ParseDate decodes an ISODate wire string (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) { return time.Parse(dateLayout, s) }

// FormatDate encodes t as an ISODate wire string.
func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// CheckDateTime validates the wire form of an ISODateTime field, reporting a
// pattern violation on failure.
func CheckDateTime(field, value string) error {
	if _, err := ParseDateTime(value); err != nil {
		return isoval.NewValidationError(isoval.CodePattern, field, i18n.T(isoval.CodePattern, map[string]string{
			"field": field, "pattern": "ISODateTime",
		}))
	}
	return nil
}

// CheckDate validates the wire form of an ISODate field.
func CheckDate(field, value string) error {
	if _, err := ParseDate(value); err != nil {
		return isoval.NewValidationError(isoval.CodePattern, field, i18n.T(isoval.CodePattern, map[string]string{
			"field": field, "pattern": "ISODate",
		}))
	}
	return nil
}
