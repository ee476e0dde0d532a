// Package pacs implements the payments clearing and settlement messages
// carried over FedNow: the customer credit transfer (pacs.008.001.08) and the
// payment status report (pacs.002.001.10).
package pacs

import (
	"strconv"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
	"github.com/open-payments/isoval/common"
	"github.com/open-payments/isoval/i18n"
)

// PatternUETR constrains the Unique End-to-end Transaction Reference, an
// RFC 4122 version 4 UUID.
const PatternUETR = "[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}"

const patternNbOfTxs = "[0-9]{1,15}"

// ClearingSystemIdentification3Choice ...
type ClearingSystemIdentification3Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification3Choice) Validate() error {
	var present []isoval.Alt
	if c.Cd != nil {
		present = append(present, isoval.TextAlt("Cd", *c.Cd, 1, 3, ""))
	}
	if c.Prtry != nil {
		present = append(present, isoval.TextAlt("Prtry", *c.Prtry, 1, 35, ""))
	}
	return isoval.CheckExactlyOne("ClearingSystemIdentification3Choice", present...)
}

// SettlementInstruction7 ...
type SettlementInstruction7 struct {
	SttlmMtd string                               `xml:"SttlmMtd" json:"SttlmMtd"`
	ClrSys   *ClearingSystemIdentification3Choice `xml:"ClrSys,omitempty" json:"ClrSys,omitempty"`
}

func (s *SettlementInstruction7) Validate() error {
	if err := isoval.CheckEnum("SttlmMtd", s.SttlmMtd, "INDA", "INGA", "COVE", "CLRG"); err != nil {
		return err
	}
	return isoval.ValidateOptional("ClrSys", s.ClrSys)
}

// GroupHeader93 ...
type GroupHeader93 struct {
	MsgId             string                                               `xml:"MsgId" json:"MsgId"`
	CreDtTm           string                                               `xml:"CreDtTm" json:"CreDtTm"`
	BtchBookg         *bool                                                `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs           string                                               `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum           *float64                                             `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *common.ActiveCurrencyAndAmount                      `xml:"TtlIntrBkSttlmAmt,omitempty" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *string                                              `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction7                               `xml:"SttlmInf" json:"SttlmInf"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (g *GroupHeader93) Validate() error {
	if err := isoval.CheckTextLength("MsgId", g.MsgId, 1, 35); err != nil {
		return err
	}
	if err := codec.CheckDateTime("CreDtTm", g.CreDtTm); err != nil {
		return err
	}
	if err := isoval.CheckPattern("NbOfTxs", g.NbOfTxs, patternNbOfTxs); err != nil {
		return err
	}
	if v := g.CtrlSum; v != nil {
		if err := isoval.CheckDecimalMin("CtrlSum", *v, 0); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("TtlIntrBkSttlmAmt", g.TtlIntrBkSttlmAmt); err != nil {
		return err
	}
	if v := g.IntrBkSttlmDt; v != nil {
		if err := codec.CheckDate("IntrBkSttlmDt", *v); err != nil {
			return err
		}
	}
	if err := isoval.ValidateField("SttlmInf", &g.SttlmInf); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("InstgAgt", g.InstgAgt); err != nil {
		return err
	}
	return isoval.ValidateOptional("InstdAgt", g.InstdAgt)
}

// PaymentIdentification7 ...
type PaymentIdentification7 struct {
	InstrId    *string `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId string  `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *string `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       *string `xml:"UETR,omitempty" json:"UETR,omitempty"`
	ClrSysRef  *string `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

func (p *PaymentIdentification7) Validate() error {
	if v := p.InstrId; v != nil {
		if err := isoval.CheckTextLength("InstrId", *v, 1, 35); err != nil {
			return err
		}
	}
	if err := isoval.CheckTextLength("EndToEndId", p.EndToEndId, 1, 35); err != nil {
		return err
	}
	if v := p.TxId; v != nil {
		if err := isoval.CheckTextLength("TxId", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := p.UETR; v != nil {
		if err := isoval.CheckPattern("UETR", *v, PatternUETR); err != nil {
			return err
		}
	}
	if v := p.ClrSysRef; v != nil {
		if err := isoval.CheckTextLength("ClrSysRef", *v, 1, 35); err != nil {
			return err
		}
	}
	return nil
}

// RemittanceInformation16 ...
type RemittanceInformation16 struct {
	Ustrd []string `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

func (r *RemittanceInformation16) Validate() error {
	for i, u := range r.Ustrd {
		if err := isoval.CheckTextLength("Ustrd/"+strconv.Itoa(i), u, 1, 140); err != nil {
			return err
		}
	}
	return nil
}

// CreditTransferTransaction39 ...
type CreditTransferTransaction39 struct {
	PmtId          PaymentIdentification7                               `xml:"PmtId" json:"PmtId"`
	IntrBkSttlmAmt common.ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt  *string                                              `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	ChrgBr         string                                               `xml:"ChrgBr" json:"ChrgBr"`
	InstgAgt       *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt       *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	Dbtr           common.PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAgt        common.BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	CdtrAgt        common.BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	Cdtr           common.PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	RmtInf         *RemittanceInformation16                             `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
}

func (t *CreditTransferTransaction39) Validate() error {
	if err := isoval.ValidateField("PmtId", &t.PmtId); err != nil {
		return err
	}
	if err := isoval.ValidateField("IntrBkSttlmAmt", &t.IntrBkSttlmAmt); err != nil {
		return err
	}
	if v := t.IntrBkSttlmDt; v != nil {
		if err := codec.CheckDate("IntrBkSttlmDt", *v); err != nil {
			return err
		}
	}
	if err := isoval.CheckEnum("ChrgBr", t.ChrgBr, "DEBT", "CRED", "SHAR", "SLEV"); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("InstgAgt", t.InstgAgt); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("InstdAgt", t.InstdAgt); err != nil {
		return err
	}
	if err := isoval.ValidateField("Dbtr", &t.Dbtr); err != nil {
		return err
	}
	if err := isoval.ValidateField("DbtrAgt", &t.DbtrAgt); err != nil {
		return err
	}
	if err := isoval.ValidateField("CdtrAgt", &t.CdtrAgt); err != nil {
		return err
	}
	if err := isoval.ValidateField("Cdtr", &t.Cdtr); err != nil {
		return err
	}
	return isoval.ValidateOptional("RmtInf", t.RmtInf)
}

// FIToFICustomerCreditTransferV08 ...
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

func (m *FIToFICustomerCreditTransferV08) Validate() error {
	if err := isoval.ValidateField("GrpHdr", &m.GrpHdr); err != nil {
		return err
	}
	if len(m.CdtTrfTxInf) == 0 {
		return isoval.NewValidationError(isoval.CodeRequired, "CdtTrfTxInf",
			i18n.T(isoval.CodeRequired, map[string]string{"field": "CdtTrfTxInf"}))
	}
	return isoval.ValidateEach("CdtTrfTxInf", m.CdtTrfTxInf)
}
