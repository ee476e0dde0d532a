package isoval

import (
	"errors"
	"fmt"
)

// Violation codes (exported consts for IDE completion and stable wire
// contracts). Codes are stable per constraint kind, never per field; the
// message carries the field-specific detail.
const (
	CodeTooShort        uint32 = 1001 // below minimum character count
	CodeTooLong         uint32 = 1002 // above maximum character count
	CodeBelowMinimum    uint32 = 1003 // numeric value below minimum
	CodeAboveMaximum    uint32 = 1004 // numeric value above maximum
	CodePattern         uint32 = 1005 // string form does not match pattern
	CodeInvalidEnum     uint32 = 1006 // not one of the permitted codes
	CodeRequired        uint32 = 1007 // required element absent
	CodeChoice          uint32 = 1008 // choice cardinality violated
	CodeUnknownDocument uint32 = 9999 // unrecognized document root
)

// ValidationError is the single violation reported by a Validate call.
// Path addresses the offending field from the node Validate was called on,
// using external element names (for example /GrpHdr/SttlmInf/SttlmMtd,
// /CdtTrfTxInf/1/IntrBkSttlmAmt).
type ValidationError struct {
	Code    uint32
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" || e.Path == "/" {
		return fmt.Sprintf("%d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%d at %s: %s", e.Code, e.Path, e.Message)
}

// NewValidationError builds a violation for a named field of the current node.
func NewValidationError(code uint32, field, message string) *ValidationError {
	return &ValidationError{Code: code, Path: "/" + field, Message: message}
}

// AsValidationError extracts a ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// InField rebases a child violation under the enclosing slot name so the
// path stays addressable from the document root. Non-violation errors pass
// through unchanged.
func InField(name string, err error) error {
	if err == nil {
		return nil
	}
	ve, ok := AsValidationError(err)
	if !ok {
		return err
	}
	base := "/" + name
	p := ve.Path
	switch {
	case p == "" || p == "/":
		p = base
	case p[0] == '/':
		p = base + p
	default:
		p = base + "/" + p
	}
	return &ValidationError{Code: ve.Code, Path: p, Message: ve.Message}
}
