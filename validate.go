package isoval

import (
	"strconv"

	"github.com/open-payments/isoval/i18n"
)

// Validatable is the single capability every node of a document tree exposes.
// Composite types implement it by walking their slots in schema-declaration
// order and returning the first violation (fail-fast, depth-first,
// left-to-right). Validation never mutates the tree.
type Validatable interface {
	Validate() error
}

// ValidateField validates a present child slot and rebases any violation
// under the slot name.
func ValidateField(name string, v Validatable) error {
	return InField(name, v.Validate())
}

// ValidateRequired validates a required child slot. Absence is a structural
// violation, distinct from the value-level constraint violations.
func ValidateRequired[T any, PT interface {
	*T
	Validatable
}](name string, p PT) error {
	if p == nil {
		return NewValidationError(CodeRequired, name, i18n.T(CodeRequired, map[string]string{"field": name}))
	}
	return InField(name, p.Validate())
}

// ValidateOptional validates an optional child slot when present; absence is
// not an error regardless of the child's own constraints.
func ValidateOptional[T any, PT interface {
	*T
	Validatable
}](name string, p PT) error {
	if p == nil {
		return nil
	}
	return InField(name, p.Validate())
}

// ValidateEach validates a repeated slot in sequence-position order. The
// element index joins the path, e.g. /CdtTrfTxInf/1/PmtId/EndToEndId.
func ValidateEach[T any, PT interface {
	*T
	Validatable
}](name string, items []T) error {
	for i := range items {
		if err := PT(&items[i]).Validate(); err != nil {
			return InField(name+"/"+strconv.Itoa(i), err)
		}
	}
	return nil
}

// Alt names one populated alternative of a choice slot.
type Alt struct {
	Name string
	Node Validatable
}

// CheckExactlyOne enforces choice cardinality: callers collect the populated
// alternatives and exactly one must be present. The populated alternative is
// then validated with its name joined to the path. field names the choice in
// the message only; the structural violation addresses the choice node itself.
func CheckExactlyOne(field string, present ...Alt) error {
	if len(present) != 1 {
		return &ValidationError{Code: CodeChoice, Path: "/", Message: i18n.T(CodeChoice, map[string]string{
			"field": field, "got": strconv.Itoa(len(present)),
		})}
	}
	return InField(present[0].Name, present[0].Node.Validate())
}

// TextAlt adapts a constrained simple-type value to a choice alternative.
// Violations carry the alternative's name in the message while staying
// self-relative in the path, so CheckExactlyOne rebases them once.
func TextAlt(name, value string, min, max int, pattern string) Alt {
	return Alt{Name: name, Node: textNode{name, value, min, max, pattern}}
}

type textNode struct {
	name    string
	value   string
	min     int
	max     int
	pattern string
}

func (n textNode) Validate() error {
	err := CheckText(n.name, n.value, n.min, n.max, n.pattern)
	ve, ok := AsValidationError(err)
	if !ok {
		return err
	}
	return &ValidationError{Code: ve.Code, Path: "/", Message: ve.Message}
}
