// Package head implements the ISO 20022 Business Application Header
// (head.001.001.02) that frames every FedNow payload.
package head

import (
	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
	"github.com/open-payments/isoval/common"
)

// Party44Choice ...
type Party44Choice struct {
	OrgId *common.PartyIdentification135                       `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	FIId  *common.BranchAndFinancialInstitutionIdentification6 `xml:"FIId,omitempty" json:"FIId,omitempty"`
}

func (p *Party44Choice) Validate() error {
	var present []isoval.Alt
	if p.OrgId != nil {
		present = append(present, isoval.Alt{Name: "OrgId", Node: p.OrgId})
	}
	if p.FIId != nil {
		present = append(present, isoval.Alt{Name: "FIId", Node: p.FIId})
	}
	return isoval.CheckExactlyOne("Party44Choice", present...)
}

// ImplementationSpecification1 ...
type ImplementationSpecification1 struct {
	Regy string `xml:"Regy" json:"Regy"`
	Id   string `xml:"Id" json:"Id"`
}

func (i *ImplementationSpecification1) Validate() error {
	if err := isoval.CheckTextLength("Regy", i.Regy, 1, 350); err != nil {
		return err
	}
	return isoval.CheckTextLength("Id", i.Id, 1, 2048)
}

// BusinessApplicationHeader5 is the related-header component carried under
// Rltd. It repeats the envelope of a prior message this one responds to.
type BusinessApplicationHeader5 struct {
	CharSet    *string                   `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice             `xml:"Fr" json:"Fr"`
	To         Party44Choice             `xml:"To" json:"To"`
	BizMsgIdr  string                    `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  string                    `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *string                   `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt      string                    `xml:"CreDt" json:"CreDt"`
	CpyDplct   *string                   `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *bool                     `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *string                   `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *common.SignatureEnvelope `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
}

func (h *BusinessApplicationHeader5) Validate() error {
	if err := isoval.ValidateField("Fr", &h.Fr); err != nil {
		return err
	}
	if err := isoval.ValidateField("To", &h.To); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("BizMsgIdr", h.BizMsgIdr, 1, 35); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("MsgDefIdr", h.MsgDefIdr, 1, 35); err != nil {
		return err
	}
	if v := h.BizSvc; v != nil {
		if err := isoval.CheckTextLength("BizSvc", *v, 1, 35); err != nil {
			return err
		}
	}
	if err := codec.CheckDateTime("CreDt", h.CreDt); err != nil {
		return err
	}
	if v := h.CpyDplct; v != nil {
		if err := isoval.CheckEnum("CpyDplct", *v, "CODU", "COPY", "DUPL"); err != nil {
			return err
		}
	}
	if v := h.Prty; v != nil {
		if err := isoval.CheckTextLength("Prty", *v, 1, 35); err != nil {
			return err
		}
	}
	return isoval.ValidateOptional("Sgntr", h.Sgntr)
}

// BusinessApplicationHeaderV02 ...
type BusinessApplicationHeaderV02 struct {
	CharSet    *string                       `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice                 `xml:"Fr" json:"Fr"`
	To         Party44Choice                 `xml:"To" json:"To"`
	BizMsgIdr  string                        `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  string                        `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *string                       `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      string                        `xml:"CreDt" json:"CreDt"`
	BizPrcgDt  *string                       `xml:"BizPrcgDt,omitempty" json:"BizPrcgDt,omitempty"`
	CpyDplct   *string                       `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *bool                         `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *string                       `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *common.SignatureEnvelope     `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (h *BusinessApplicationHeaderV02) Validate() error {
	if err := isoval.ValidateField("Fr", &h.Fr); err != nil {
		return err
	}
	if err := isoval.ValidateField("To", &h.To); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("BizMsgIdr", h.BizMsgIdr, 1, 35); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("MsgDefIdr", h.MsgDefIdr, 1, 35); err != nil {
		return err
	}
	if v := h.BizSvc; v != nil {
		if err := isoval.CheckTextLength("BizSvc", *v, 1, 35); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("MktPrctc", h.MktPrctc); err != nil {
		return err
	}
	if err := codec.CheckDateTime("CreDt", h.CreDt); err != nil {
		return err
	}
	if v := h.BizPrcgDt; v != nil {
		if err := codec.CheckDateTime("BizPrcgDt", *v); err != nil {
			return err
		}
	}
	if v := h.CpyDplct; v != nil {
		if err := isoval.CheckEnum("CpyDplct", *v, "CODU", "COPY", "DUPL"); err != nil {
			return err
		}
	}
	if v := h.Prty; v != nil {
		if err := isoval.CheckEnum("Prty", *v, "URGT", "HIGH", "NORM"); err != nil {
			return err
		}
	}
	if err := isoval.ValidateOptional("Sgntr", h.Sgntr); err != nil {
		return err
	}
	return isoval.ValidateEach("Rltd", h.Rltd)
}
