package pacs

import (
	"strconv"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
	"github.com/open-payments/isoval/common"
)

// GroupHeader91 ...
type GroupHeader91 struct {
	MsgId    string                                               `xml:"MsgId" json:"MsgId"`
	CreDtTm  string                                               `xml:"CreDtTm" json:"CreDtTm"`
	InstgAgt *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (g *GroupHeader91) Validate() error {
	if err := isoval.CheckTextLength("MsgId", g.MsgId, 1, 35); err != nil {
		return err
	}
	if err := codec.CheckDateTime("CreDtTm", g.CreDtTm); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("InstgAgt", g.InstgAgt); err != nil {
		return err
	}
	return isoval.ValidateOptional("InstdAgt", g.InstdAgt)
}

// StatusReason6Choice ...
type StatusReason6Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *StatusReason6Choice) Validate() error {
	var present []isoval.Alt
	if c.Cd != nil {
		present = append(present, isoval.TextAlt("Cd", *c.Cd, 1, 4, ""))
	}
	if c.Prtry != nil {
		present = append(present, isoval.TextAlt("Prtry", *c.Prtry, 1, 35, ""))
	}
	return isoval.CheckExactlyOne("StatusReason6Choice", present...)
}

// StatusReasonInformation12 ...
type StatusReasonInformation12 struct {
	Orgtr    *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *StatusReason6Choice           `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []string                       `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (s *StatusReasonInformation12) Validate() error {
	if err := isoval.ValidateOptional("Orgtr", s.Orgtr); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("Rsn", s.Rsn); err != nil {
		return err
	}
	for i, a := range s.AddtlInf {
		if err := isoval.CheckTextLength("AddtlInf/"+strconv.Itoa(i), a, 1, 105); err != nil {
			return err
		}
	}
	return nil
}

// OriginalGroupInformation29 ...
type OriginalGroupInformation29 struct {
	OrgnlMsgId   string  `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId string  `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (o *OriginalGroupInformation29) Validate() error {
	if err := isoval.CheckTextLength("OrgnlMsgId", o.OrgnlMsgId, 1, 35); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("OrgnlMsgNmId", o.OrgnlMsgNmId, 1, 35); err != nil {
		return err
	}
	if v := o.OrgnlCreDtTm; v != nil {
		if err := codec.CheckDateTime("OrgnlCreDtTm", *v); err != nil {
			return err
		}
	}
	return nil
}

// OriginalGroupHeader17 ...
type OriginalGroupHeader17 struct {
	OrgnlMsgId   string                      `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId string                      `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string                     `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	GrpSts       *string                     `xml:"GrpSts,omitempty" json:"GrpSts,omitempty"`
	StsRsnInf    []StatusReasonInformation12 `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
}

func (o *OriginalGroupHeader17) Validate() error {
	if err := isoval.CheckTextLength("OrgnlMsgId", o.OrgnlMsgId, 1, 35); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("OrgnlMsgNmId", o.OrgnlMsgNmId, 1, 35); err != nil {
		return err
	}
	if v := o.OrgnlCreDtTm; v != nil {
		if err := codec.CheckDateTime("OrgnlCreDtTm", *v); err != nil {
			return err
		}
	}
	if v := o.GrpSts; v != nil {
		if err := isoval.CheckTextLength("GrpSts", *v, 1, 4); err != nil {
			return err
		}
	}
	return isoval.ValidateEach("StsRsnInf", o.StsRsnInf)
}

// PaymentTransaction110 ...
type PaymentTransaction110 struct {
	StsId           *string                                              `xml:"StsId,omitempty" json:"StsId,omitempty"`
	OrgnlGrpInf     *OriginalGroupInformation29                          `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId    *string                                              `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                                              `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *string                                              `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR       *string                                              `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	TxSts           *string                                              `xml:"TxSts,omitempty" json:"TxSts,omitempty"`
	StsRsnInf       []StatusReasonInformation12                          `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
	AccptncDtTm     *string                                              `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	ClrSysRef       *string                                              `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	InstgAgt        *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt        *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (t *PaymentTransaction110) Validate() error {
	if v := t.StsId; v != nil {
		if err := isoval.CheckTextLength("StsId", *v, 1, 35); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("OrgnlGrpInf", t.OrgnlGrpInf); err != nil {
		return err
	}
	if v := t.OrgnlInstrId; v != nil {
		if err := isoval.CheckTextLength("OrgnlInstrId", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := t.OrgnlEndToEndId; v != nil {
		if err := isoval.CheckTextLength("OrgnlEndToEndId", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := t.OrgnlTxId; v != nil {
		if err := isoval.CheckTextLength("OrgnlTxId", *v, 1, 35); err != nil {
			return err
		}
	}
	if v := t.OrgnlUETR; v != nil {
		if err := isoval.CheckPattern("OrgnlUETR", *v, PatternUETR); err != nil {
			return err
		}
	}
	if v := t.TxSts; v != nil {
		if err := isoval.CheckTextLength("TxSts", *v, 1, 4); err != nil {
			return err
		}
	}
	if err := isoval.ValidateEach("StsRsnInf", t.StsRsnInf); err != nil {
		return err
	}
	if v := t.AccptncDtTm; v != nil {
		if err := codec.CheckDateTime("AccptncDtTm", *v); err != nil {
			return err
		}
	}
	if v := t.ClrSysRef; v != nil {
		if err := isoval.CheckTextLength("ClrSysRef", *v, 1, 35); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("InstgAgt", t.InstgAgt); err != nil {
		return err
	}
	return isoval.ValidateOptional("InstdAgt", t.InstdAgt)
}

// FIToFIPaymentStatusReportV10 ...
type FIToFIPaymentStatusReportV10 struct {
	GrpHdr            GroupHeader91           `xml:"GrpHdr" json:"GrpHdr"`
	OrgnlGrpInfAndSts []OriginalGroupHeader17 `xml:"OrgnlGrpInfAndSts,omitempty" json:"OrgnlGrpInfAndSts,omitempty"`
	TxInfAndSts       []PaymentTransaction110 `xml:"TxInfAndSts,omitempty" json:"TxInfAndSts,omitempty"`
}

func (m *FIToFIPaymentStatusReportV10) Validate() error {
	if err := isoval.ValidateField("GrpHdr", &m.GrpHdr); err != nil {
		return err
	}
	if err := isoval.ValidateEach("OrgnlGrpInfAndSts", m.OrgnlGrpInfAndSts); err != nil {
		return err
	}
	return isoval.ValidateEach("TxInfAndSts", m.TxInfAndSts)
}
