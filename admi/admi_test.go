package admi_test

import (
	"strings"
	"testing"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/admi"
)

func str(s string) *string { return &s }

func TestMessageRejectValid(t *testing.T) {
	m := admi.Admi00200101{
		RltdRef: admi.MessageReference{Ref: "BMSG-20240301-0001"},
		Rsn: admi.RejectionReason2{
			RjctgPtyRsn: "E010",
			RjctnDtTm:   str("2024-03-01T10:15:31Z"),
			RsnDesc:     str("Message failed schema validation"),
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid reject: %v", err)
	}
}

func TestMessageRejectConstraints(t *testing.T) {
	m := admi.Admi00200101{
		RltdRef: admi.MessageReference{Ref: strings.Repeat("x", 36)},
		Rsn:     admi.RejectionReason2{RjctgPtyRsn: "E010"},
	}
	ve, ok := isoval.AsValidationError(m.Validate())
	if !ok || ve.Code != isoval.CodeTooLong || ve.Path != "/RltdRef/Ref" {
		t.Fatalf("got %v", ve)
	}

	m.RltdRef.Ref = "BMSG-20240301-0001"
	m.Rsn.RjctnDtTm = str("later")
	ve, ok = isoval.AsValidationError(m.Validate())
	if !ok || ve.Code != isoval.CodePattern || ve.Path != "/Rsn/RjctnDtTm" {
		t.Fatalf("got %v", ve)
	}

	m.Rsn.RjctnDtTm = nil
	m.Rsn.ErrLctn = str(strings.Repeat("x", 351))
	ve, ok = isoval.AsValidationError(m.Validate())
	if !ok || ve.Code != isoval.CodeTooLong || ve.Path != "/Rsn/ErrLctn" {
		t.Fatalf("got %v", ve)
	}

	// AddtlData allows very large payloads up to 20000 characters.
	m.Rsn.ErrLctn = nil
	m.Rsn.AddtlData = str(strings.Repeat("x", 20000))
	if err := m.Validate(); err != nil {
		t.Fatalf("20000 characters within bound: %v", err)
	}
	m.Rsn.AddtlData = str(strings.Repeat("x", 20001))
	ve, ok = isoval.AsValidationError(m.Validate())
	if !ok || ve.Code != isoval.CodeTooLong || ve.Path != "/Rsn/AddtlData" {
		t.Fatalf("got %v", ve)
	}
}
