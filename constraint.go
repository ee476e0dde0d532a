package isoval

import (
	"strconv"
	"unicode/utf8"

	"github.com/open-payments/isoval/i18n"
)

// CheckTextLength enforces inclusive character-count bounds on a text leaf.
// A zero bound means the side is unconstrained. Lengths are counted in runes,
// matching the XML schema character model.
func CheckTextLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if min > 0 && n < min {
		return NewValidationError(CodeTooShort, field, i18n.T(CodeTooShort, map[string]string{
			"field": field, "min": strconv.Itoa(min),
		}))
	}
	if max > 0 && n > max {
		return NewValidationError(CodeTooLong, field, i18n.T(CodeTooLong, map[string]string{
			"field": field, "max": strconv.Itoa(max),
		}))
	}
	return nil
}

// CheckPattern matches the whole value against pattern (anchored).
func CheckPattern(field, value, pattern string) error {
	if !compiledPattern(pattern).MatchString(value) {
		return NewValidationError(CodePattern, field, i18n.T(CodePattern, map[string]string{
			"field": field, "pattern": pattern,
		}))
	}
	return nil
}

// CheckText applies the declared leaf constraints in order: length-min,
// length-max, then pattern. The first failing constraint is reported.
func CheckText(field, value string, min, max int, pattern string) error {
	if err := CheckTextLength(field, value, min, max); err != nil {
		return err
	}
	if pattern == "" {
		return nil
	}
	return CheckPattern(field, value, pattern)
}

// CheckEnum requires value to be one of a closed set of permitted codes.
func CheckEnum(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(CodeInvalidEnum, field, i18n.T(CodeInvalidEnum, map[string]string{
		"field": field, "got": value,
	}))
}

// CheckDecimalMin requires value >= min (inclusive).
func CheckDecimalMin(field string, value, min float64) error {
	if value < min {
		return NewValidationError(CodeBelowMinimum, field, i18n.T(CodeBelowMinimum, map[string]string{
			"field": field, "min": formatDecimal(min),
		}))
	}
	return nil
}

// CheckDecimalMax requires value <= max (inclusive).
func CheckDecimalMax(field string, value, max float64) error {
	if value > max {
		return NewValidationError(CodeAboveMaximum, field, i18n.T(CodeAboveMaximum, map[string]string{
			"field": field, "max": formatDecimal(max),
		}))
	}
	return nil
}

// formatDecimal renders bounds the way the generated corpus does (six
// fractional digits, e.g. "0.000000").
func formatDecimal(f float64) string { return strconv.FormatFloat(f, 'f', 6, 64) }
