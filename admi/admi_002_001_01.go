// Package admi implements the administration messages: the message reject
// advice (admi.002.001.01) FedNow returns when an inbound message cannot be
// processed.
package admi

import (
	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
)

// MessageReference ...
type MessageReference struct {
	Ref string `xml:"Ref" json:"Ref"`
}

func (m *MessageReference) Validate() error {
	return isoval.CheckTextLength("Ref", m.Ref, 1, 35)
}

// RejectionReason2 ...
type RejectionReason2 struct {
	RjctgPtyRsn string  `xml:"RjctgPtyRsn" json:"RjctgPtyRsn"`
	RjctnDtTm   *string `xml:"RjctnDtTm,omitempty" json:"RjctnDtTm,omitempty"`
	ErrLctn     *string `xml:"ErrLctn,omitempty" json:"ErrLctn,omitempty"`
	RsnDesc     *string `xml:"RsnDesc,omitempty" json:"RsnDesc,omitempty"`
	AddtlData   *string `xml:"AddtlData,omitempty" json:"AddtlData,omitempty"`
}

func (r *RejectionReason2) Validate() error {
	if err := isoval.CheckTextLength("RjctgPtyRsn", r.RjctgPtyRsn, 1, 35); err != nil {
		return err
	}
	if v := r.RjctnDtTm; v != nil {
		if err := codec.CheckDateTime("RjctnDtTm", *v); err != nil {
			return err
		}
	}
	if v := r.ErrLctn; v != nil {
		if err := isoval.CheckTextLength("ErrLctn", *v, 1, 350); err != nil {
			return err
		}
	}
	if v := r.RsnDesc; v != nil {
		if err := isoval.CheckTextLength("RsnDesc", *v, 1, 350); err != nil {
			return err
		}
	}
	if v := r.AddtlData; v != nil {
		if err := isoval.CheckTextLength("AddtlData", *v, 1, 20000); err != nil {
			return err
		}
	}
	return nil
}

// Admi00200101 is the message reject advice body.
type Admi00200101 struct {
	RltdRef MessageReference `xml:"RltdRef" json:"RltdRef"`
	Rsn     RejectionReason2 `xml:"Rsn" json:"Rsn"`
}

func (m *Admi00200101) Validate() error {
	if err := isoval.ValidateField("RltdRef", &m.RltdRef); err != nil {
		return err
	}
	return isoval.ValidateField("Rsn", &m.Rsn)
}
