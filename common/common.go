// Package common holds the ISO 20022 component types shared across message
// families: parties, agents, postal addresses and the identifier simple types
// they constrain (BICFI, LEI, country codes).
package common

import (
	"strconv"

	isoval "github.com/open-payments/isoval"
)

// Identifier patterns shared by the catalog packages.
const (
	PatternBICFI   = "[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}"
	PatternLEI     = "[A-Z0-9]{18,18}[0-9]{2,2}"
	PatternCountry = "[A-Z]{2,2}"
	PatternPhone   = `\+[0-9]{1,3}-[0-9()+\-]{1,30}`
)

// PostalAddress24 ...
type PostalAddress24 struct {
	Dept        *string  `xml:"Dept,omitempty" json:"Dept,omitempty"`
	StrtNm      *string  `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *string  `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *string  `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *string  `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *string  `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *string  `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []string `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a *PostalAddress24) Validate() error {
	if v := a.Dept; v != nil {
		if err := isoval.CheckTextLength("Dept", *v, 1, 70); err != nil {
			return err
		}
	}
	if v := a.StrtNm; v != nil {
		if err := isoval.CheckTextLength("StrtNm", *v, 1, 70); err != nil {
			return err
		}
	}
	if v := a.BldgNb; v != nil {
		if err := isoval.CheckTextLength("BldgNb", *v, 1, 16); err != nil {
			return err
		}
	}
	if v := a.PstCd; v != nil {
		if err := isoval.CheckTextLength("PstCd", *v, 1, 16); err != nil {
			return err
		}
	}
	if v := a.TwnNm; v != nil {
		if err := isoval.CheckTextLength("TwnNm", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := a.CtrySubDvsn; v != nil {
		if err := isoval.CheckTextLength("CtrySubDvsn", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := a.Ctry; v != nil {
		if err := isoval.CheckPattern("Ctry", *v, PatternCountry); err != nil {
			return err
		}
	}
	for i, line := range a.AdrLine {
		if err := isoval.CheckTextLength("AdrLine/"+strconv.Itoa(i), line, 1, 70); err != nil {
			return err
		}
	}
	return nil
}

// ClearingSystemIdentification2Choice ...
type ClearingSystemIdentification2Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate() error {
	var present []isoval.Alt
	if c.Cd != nil {
		present = append(present, isoval.TextAlt("Cd", *c.Cd, 1, 5, ""))
	}
	if c.Prtry != nil {
		present = append(present, isoval.TextAlt("Prtry", *c.Prtry, 1, 35, ""))
	}
	return isoval.CheckExactlyOne("ClearingSystemIdentification2Choice", present...)
}

// ClearingSystemMemberIdentification2 ...
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    string                               `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate() error {
	if err := isoval.ValidateOptional("ClrSysId", c.ClrSysId); err != nil {
		return err
	}
	return isoval.CheckTextLength("MmbId", c.MmbId, 1, 35)
}

// FinancialIdentificationSchemeName1Choice ...
type FinancialIdentificationSchemeName1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *FinancialIdentificationSchemeName1Choice) Validate() error {
	var present []isoval.Alt
	if c.Cd != nil {
		present = append(present, isoval.TextAlt("Cd", *c.Cd, 1, 4, ""))
	}
	if c.Prtry != nil {
		present = append(present, isoval.TextAlt("Prtry", *c.Prtry, 1, 35, ""))
	}
	return isoval.CheckExactlyOne("FinancialIdentificationSchemeName1Choice", present...)
}

// GenericFinancialIdentification1 ...
type GenericFinancialIdentification1 struct {
	Id      string                                    `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *string                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericFinancialIdentification1) Validate() error {
	if err := isoval.CheckTextLength("Id", g.Id, 1, 35); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("SchmeNm", g.SchmeNm); err != nil {
		return err
	}
	if v := g.Issr; v != nil {
		if err := isoval.CheckTextLength("Issr", *v, 1, 35); err != nil {
			return err
		}
	}
	return nil
}

// FinancialInstitutionIdentification18 ...
type FinancialInstitutionIdentification18 struct {
	BICFI       *string                              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *string                              `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *string                              `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate() error {
	if v := f.BICFI; v != nil {
		if err := isoval.CheckPattern("BICFI", *v, PatternBICFI); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("ClrSysMmbId", f.ClrSysMmbId); err != nil {
		return err
	}
	if v := f.LEI; v != nil {
		if err := isoval.CheckPattern("LEI", *v, PatternLEI); err != nil {
			return err
		}
	}
	if v := f.Nm; v != nil {
		if err := isoval.CheckTextLength("Nm", *v, 1, 140); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("PstlAdr", f.PstlAdr); err != nil {
		return err
	}
	return isoval.ValidateOptional("Othr", f.Othr)
}

// BranchData3 ...
type BranchData3 struct {
	Id      *string          `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *string          `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *string          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b *BranchData3) Validate() error {
	if v := b.Id; v != nil {
		if err := isoval.CheckTextLength("Id", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := b.LEI; v != nil {
		if err := isoval.CheckPattern("LEI", *v, PatternLEI); err != nil {
			return err
		}
	}
	if v := b.Nm; v != nil {
		if err := isoval.CheckTextLength("Nm", *v, 1, 140); err != nil {
			return err
		}
	}
	return isoval.ValidateOptional("PstlAdr", b.PstlAdr)
}

// BranchAndFinancialInstitutionIdentification6 ...
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData3                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate() error {
	if err := isoval.ValidateField("FinInstnId", &b.FinInstnId); err != nil {
		return err
	}
	return isoval.ValidateOptional("BrnchId", b.BrnchId)
}

// Contact4 ...
type Contact4 struct {
	Nm       *string `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb   *string `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	EmailAdr *string `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
}

func (c *Contact4) Validate() error {
	if v := c.Nm; v != nil {
		if err := isoval.CheckTextLength("Nm", *v, 1, 140); err != nil {
			return err
		}
	}
	if v := c.PhneNb; v != nil {
		if err := isoval.CheckPattern("PhneNb", *v, PatternPhone); err != nil {
			return err
		}
	}
	if v := c.EmailAdr; v != nil {
		if err := isoval.CheckTextLength("EmailAdr", *v, 1, 2048); err != nil {
			return err
		}
	}
	return nil
}

// PartyIdentification135 ...
type PartyIdentification135 struct {
	Nm        *string          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	CtryOfRes *string          `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p *PartyIdentification135) Validate() error {
	if v := p.Nm; v != nil {
		if err := isoval.CheckTextLength("Nm", *v, 1, 140); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("PstlAdr", p.PstlAdr); err != nil {
		return err
	}
	if v := p.CtryOfRes; v != nil {
		if err := isoval.CheckPattern("CtryOfRes", *v, PatternCountry); err != nil {
			return err
		}
	}
	return isoval.ValidateOptional("CtctDtls", p.CtctDtls)
}

// SignatureEnvelope carries a detached signature; its content is opaque to
// validation.
type SignatureEnvelope struct{}

func (*SignatureEnvelope) Validate() error { return nil }
