package common_test

import (
	"encoding/xml"
	"strings"
	"testing"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/common"
)

func str(s string) *string { return &s }

func mustViolation(t *testing.T, err error, code uint32, path string) *isoval.ValidationError {
	t.Helper()
	ve, ok := isoval.AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError code=%d, got %T: %v", code, err, err)
	}
	if ve.Code != code || ve.Path != path {
		t.Fatalf("got code=%d path=%q, want code=%d path=%q (%v)", ve.Code, ve.Path, code, path, ve)
	}
	return ve
}

func TestPostalAddress24(t *testing.T) {
	a := common.PostalAddress24{
		StrtNm:  str("Main Street"),
		TwnNm:   str("Springfield"),
		Ctry:    str("US"),
		AdrLine: []string{"1 Main Street", "Suite 4"},
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid address: %v", err)
	}

	a.Ctry = str("usa")
	mustViolation(t, a.Validate(), isoval.CodePattern, "/Ctry")

	a.Ctry = str("US")
	a.AdrLine = []string{"ok", strings.Repeat("x", 71)}
	mustViolation(t, a.Validate(), isoval.CodeTooLong, "/AdrLine/1")
}

func TestClearingSystemIdentification2Choice(t *testing.T) {
	c := common.ClearingSystemIdentification2Choice{}
	mustViolation(t, c.Validate(), isoval.CodeChoice, "/")

	c = common.ClearingSystemIdentification2Choice{Cd: str("USABA"), Prtry: str("X")}
	mustViolation(t, c.Validate(), isoval.CodeChoice, "/")

	c = common.ClearingSystemIdentification2Choice{Cd: str("TOOLONG")}
	mustViolation(t, c.Validate(), isoval.CodeTooLong, "/Cd")

	c = common.ClearingSystemIdentification2Choice{Cd: str("USABA")}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid choice: %v", err)
	}
}

func TestFinancialInstitutionIdentification18(t *testing.T) {
	f := common.FinancialInstitutionIdentification18{
		BICFI: str("TESTUS33"),
		LEI:   str("529900T8BM49AURSDO55"),
		Nm:    str("Test Bank"),
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid identification: %v", err)
	}

	f.BICFI = str("testus33")
	mustViolation(t, f.Validate(), isoval.CodePattern, "/BICFI")

	f.BICFI = str("TESTUS33XXX")
	if err := f.Validate(); err != nil {
		t.Fatalf("11-character BIC is valid: %v", err)
	}

	f.LEI = str("NOT-AN-LEI")
	mustViolation(t, f.Validate(), isoval.CodePattern, "/LEI")
}

func TestBranchAndFinancialInstitutionIdentification6(t *testing.T) {
	b := common.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: common.FinancialInstitutionIdentification18{
			ClrSysMmbId: &common.ClearingSystemMemberIdentification2{MmbId: "021000021"},
		},
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid agent: %v", err)
	}

	b.FinInstnId.ClrSysMmbId.MmbId = ""
	mustViolation(t, b.Validate(), isoval.CodeTooShort, "/FinInstnId/ClrSysMmbId/MmbId")
}

func TestPartyIdentification135(t *testing.T) {
	p := common.PartyIdentification135{
		Nm:        str("Jane Doe"),
		CtryOfRes: str("US"),
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid party: %v", err)
	}

	p.Nm = str(strings.Repeat("x", 141))
	mustViolation(t, p.Validate(), isoval.CodeTooLong, "/Nm")
}

func TestActiveCurrencyAndAmountXML(t *testing.T) {
	var a common.ActiveCurrencyAndAmount
	in := `<IntrBkSttlmAmt Ccy="USD">1000.25</IntrBkSttlmAmt>`
	if err := xml.Unmarshal([]byte(in), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Ccy != "USD" || a.Value != 1000.25 {
		t.Fatalf("decoded %+v", a)
	}

	out, err := xml.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `<ActiveCurrencyAndAmount Ccy="USD">1000.25</ActiveCurrencyAndAmount>` {
		t.Fatalf("encoded %s", out)
	}

	if err := xml.Unmarshal([]byte(`<Amt Ccy="USD">lots</Amt>`), &a); err == nil {
		t.Fatalf("expected decode failure for non-numeric amount")
	}
}

func TestActiveCurrencyAndAmountValidate(t *testing.T) {
	a := common.ActiveCurrencyAndAmount{Ccy: "USD", Value: 12.5}
	if err := a.Validate(); err != nil {
		t.Fatalf("valid amount: %v", err)
	}

	a.Ccy = "usd"
	mustViolation(t, a.Validate(), isoval.CodePattern, "/Ccy")

	a.Ccy = "USD"
	a.Value = -1
	ve := mustViolation(t, a.Validate(), isoval.CodeBelowMinimum, "/Value")
	if !strings.Contains(ve.Message, "0.000000") {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}
