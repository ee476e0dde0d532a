// Package fednow ties the catalog packages together: the Document payload
// choice, the AppHdr+Document envelope pairs, the incoming and outgoing
// message sets, and the parse and marshal entry points for both wire forms.
package fednow

import (
	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/admi"
	"github.com/open-payments/isoval/i18n"
	"github.com/open-payments/isoval/pacs"
)

// Document is the payload choice carried under every envelope. Element names
// follow the ISO 20022 message root names, so the populated field doubles as
// the document type. At most one field may be set; an empty Document is an
// unknown document type.
type Document struct {
	Admi00200101      *admi.Admi00200101                    `xml:"admi.002.001.01,omitempty" json:"admi.002.001.01,omitempty"`
	FIToFIPmtStsRpt   *pacs.FIToFIPaymentStatusReportV10    `xml:"FIToFIPmtStsRpt,omitempty" json:"FIToFIPmtStsRpt,omitempty"`
	FIToFICstmrCdtTrf *pacs.FIToFICustomerCreditTransferV08 `xml:"FIToFICstmrCdtTrf,omitempty" json:"FIToFICstmrCdtTrf,omitempty"`
}

func (d *Document) Validate() error {
	var present []isoval.Alt
	if d.Admi00200101 != nil {
		present = append(present, isoval.Alt{Name: "admi.002.001.01", Node: d.Admi00200101})
	}
	if d.FIToFIPmtStsRpt != nil {
		present = append(present, isoval.Alt{Name: "FIToFIPmtStsRpt", Node: d.FIToFIPmtStsRpt})
	}
	if d.FIToFICstmrCdtTrf != nil {
		present = append(present, isoval.Alt{Name: "FIToFICstmrCdtTrf", Node: d.FIToFICstmrCdtTrf})
	}
	if len(present) == 0 {
		return isoval.NewValidationError(isoval.CodeUnknownDocument, "",
			i18n.T(isoval.CodeUnknownDocument, nil))
	}
	return isoval.CheckExactlyOne("Document", present...)
}
