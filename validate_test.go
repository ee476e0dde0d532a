package isoval_test

import (
	"strings"
	"testing"

	isoval "github.com/open-payments/isoval"
)

// ref is a minimal leaf component: a single reference constrained to 1..35
// characters.
type ref struct {
	Id string
}

func (r *ref) Validate() error {
	return isoval.CheckTextLength("Id", r.Id, 1, 35)
}

// record is a minimal composite: one required slot, one optional slot, one
// repeated slot, walked in declaration order.
type record struct {
	Req   *ref
	Opt   *ref
	Items []ref
}

func (r *record) Validate() error {
	if err := isoval.ValidateRequired("Req", r.Req); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("Opt", r.Opt); err != nil {
		return err
	}
	return isoval.ValidateEach("Items", r.Items)
}

func TestRequiredSlotMissing(t *testing.T) {
	r := record{}
	ve := mustViolation(t, r.Validate(), isoval.CodeRequired, "/Req")
	if !strings.Contains(ve.Message, "Req is required but absent") {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestOptionalSlotAbsentIsNotAnError(t *testing.T) {
	r := record{Req: &ref{Id: "R1"}}
	if err := r.Validate(); err != nil {
		t.Fatalf("optional absent should pass: %v", err)
	}
}

func TestChildViolationPathIsRebased(t *testing.T) {
	r := record{Req: &ref{Id: ""}}
	mustViolation(t, r.Validate(), isoval.CodeTooShort, "/Req/Id")

	r = record{Req: &ref{Id: "R1"}, Opt: &ref{Id: strings.Repeat("x", 36)}}
	mustViolation(t, r.Validate(), isoval.CodeTooLong, "/Opt/Id")
}

func TestRepeatedSlotIndexInPath(t *testing.T) {
	r := record{
		Req:   &ref{Id: "R1"},
		Items: []ref{{Id: "ok"}, {Id: ""}, {Id: "also ok"}},
	}
	mustViolation(t, r.Validate(), isoval.CodeTooShort, "/Items/1/Id")
}

func TestFailFastStopsAtFirstViolation(t *testing.T) {
	// Both the required slot and an element violate; only the earlier slot
	// is reported.
	r := record{Items: []ref{{Id: ""}}}
	mustViolation(t, r.Validate(), isoval.CodeRequired, "/Req")
}

func TestValidationDoesNotMutate(t *testing.T) {
	r := record{Req: &ref{Id: ""}, Items: []ref{{Id: "a"}}}
	_ = r.Validate()
	if r.Req.Id != "" || len(r.Items) != 1 || r.Items[0].Id != "a" {
		t.Fatalf("validation mutated the document: %+v", r)
	}
}

func TestCheckExactlyOne(t *testing.T) {
	good := &ref{Id: "R1"}
	bad := &ref{Id: ""}

	if err := isoval.CheckExactlyOne("Ch", isoval.Alt{Name: "A", Node: good}); err != nil {
		t.Fatalf("one valid alternative: %v", err)
	}

	// Zero populated alternatives.
	ve := mustViolation(t, isoval.CheckExactlyOne("Ch"), isoval.CodeChoice, "/")
	if !strings.Contains(ve.Message, "exactly one alternative of Ch") {
		t.Fatalf("unexpected message: %q", ve.Message)
	}

	// Two populated alternatives.
	err := isoval.CheckExactlyOne("Ch",
		isoval.Alt{Name: "A", Node: good},
		isoval.Alt{Name: "B", Node: good},
	)
	mustViolation(t, err, isoval.CodeChoice, "/")

	// The populated alternative is validated under its own name.
	err = isoval.CheckExactlyOne("Ch", isoval.Alt{Name: "A", Node: bad})
	mustViolation(t, err, isoval.CodeTooShort, "/A/Id")
}

func TestChoiceViolationRebasesUnderParentSlot(t *testing.T) {
	// A choice violation is self-relative, so the enclosing composite's slot
	// name lands in front of it exactly once.
	err := isoval.InField("Fr", isoval.CheckExactlyOne("Party44Choice"))
	mustViolation(t, err, isoval.CodeChoice, "/Fr")
}

func TestTextAlt(t *testing.T) {
	err := isoval.CheckExactlyOne("SchmeNm", isoval.TextAlt("Cd", "TOOLONG", 1, 4, ""))
	ve := mustViolation(t, err, isoval.CodeTooLong, "/Cd")
	if !strings.Contains(ve.Message, "Cd exceeds the maximum length of 4") {
		t.Fatalf("unexpected message: %q", ve.Message)
	}

	if err := isoval.CheckExactlyOne("SchmeNm", isoval.TextAlt("Cd", "ABCD", 1, 4, "")); err != nil {
		t.Fatalf("valid alternative: %v", err)
	}
}

func TestInField(t *testing.T) {
	mustViolation(t, isoval.InField("GrpHdr", isoval.CheckTextLength("MsgId", "", 1, 35)), isoval.CodeTooShort, "/GrpHdr/MsgId")
	if err := isoval.InField("GrpHdr", nil); err != nil {
		t.Fatalf("nil passes through: %v", err)
	}
}
