package fednow

import (
	"encoding/xml"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/head"
	"github.com/open-payments/isoval/keyexchange"
)

// FedNowTechnicalHeader is reserved by the service; it carries no elements
// the participant validates.
type FedNowTechnicalHeader struct{}

func (*FedNowTechnicalHeader) Validate() error { return nil }

// FedNowMessageReject pairs a business application header with a message
// reject advice (admi.002.001.01).
type FedNowMessageReject struct {
	AppHdr   *head.BusinessApplicationHeaderV02 `xml:"AppHdr" json:"AppHdr"`
	Document *Document                          `xml:"Document" json:"Document"`
}

func (m *FedNowMessageReject) Validate() error {
	if err := isoval.ValidateRequired("AppHdr", m.AppHdr); err != nil {
		return err
	}
	return isoval.ValidateRequired("Document", m.Document)
}

// FedNowPaymentStatus pairs a business application header with a payment
// status report (pacs.002.001.10).
type FedNowPaymentStatus struct {
	AppHdr   *head.BusinessApplicationHeaderV02 `xml:"AppHdr" json:"AppHdr"`
	Document *Document                          `xml:"Document" json:"Document"`
}

func (m *FedNowPaymentStatus) Validate() error {
	if err := isoval.ValidateRequired("AppHdr", m.AppHdr); err != nil {
		return err
	}
	return isoval.ValidateRequired("Document", m.Document)
}

// FedNowCustomerCreditTransfer pairs a business application header with a
// customer credit transfer (pacs.008.001.08).
type FedNowCustomerCreditTransfer struct {
	AppHdr   *head.BusinessApplicationHeaderV02 `xml:"AppHdr" json:"AppHdr"`
	Document *Document                          `xml:"Document" json:"Document"`
}

func (m *FedNowCustomerCreditTransfer) Validate() error {
	if err := isoval.ValidateRequired("AppHdr", m.AppHdr); err != nil {
		return err
	}
	return isoval.ValidateRequired("Document", m.Document)
}

// FedNowIncomingMessageSignatureManagement carries participant-initiated key
// management requests. SenderId is the participant's routing number.
type FedNowIncomingMessageSignatureManagement struct {
	SenderId                          string                                         `xml:"SenderId" json:"SenderId"`
	GetAllFedNowActivePublicKeys      *keyexchange.GetAllFedNowActivePublicKeys      `xml:"GetAllFedNowActivePublicKeys,omitempty" json:"GetAllFedNowActivePublicKeys,omitempty"`
	GetAllCustomerPublicKeys          *keyexchange.GetAllCustomerPublicKeys          `xml:"GetAllCustomerPublicKeys,omitempty" json:"GetAllCustomerPublicKeys,omitempty"`
	FedNowMessageSignatureKeyExchange *keyexchange.FedNowMessageSignatureKeyExchange `xml:"FedNowMessageSignatureKeyExchange,omitempty" json:"FedNowMessageSignatureKeyExchange,omitempty"`
}

func (m *FedNowIncomingMessageSignatureManagement) Validate() error {
	if err := isoval.CheckPattern("SenderId", m.SenderId, keyexchange.PatternRoutingNumber); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("GetAllFedNowActivePublicKeys", m.GetAllFedNowActivePublicKeys); err != nil {
		return err
	}
	if err := isoval.ValidateOptional("GetAllCustomerPublicKeys", m.GetAllCustomerPublicKeys); err != nil {
		return err
	}
	return isoval.ValidateOptional("FedNowMessageSignatureKeyExchange", m.FedNowMessageSignatureKeyExchange)
}

// FedNowOutgoingMessageSignatureManagement carries the service's key
// management responses.
type FedNowOutgoingMessageSignatureManagement struct {
	FedNowPublicKeyResponses                           *keyexchange.FedNowPublicKeyResponses                           `xml:"FedNowPublicKeyResponses,omitempty" json:"FedNowPublicKeyResponses,omitempty"`
	FedNowCustomerMessageSignatureKeyOperationResponse *keyexchange.FedNowCustomerMessageSignatureKeyOperationResponse `xml:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty" json:"FedNowCustomerMessageSignatureKeyOperationResponse,omitempty"`
}

func (m *FedNowOutgoingMessageSignatureManagement) Validate() error {
	if err := isoval.ValidateOptional("FedNowPublicKeyResponses", m.FedNowPublicKeyResponses); err != nil {
		return err
	}
	return isoval.ValidateOptional("FedNowCustomerMessageSignatureKeyOperationResponse", m.FedNowCustomerMessageSignatureKeyOperationResponse)
}

// FedNowIncomingMessage is the choice of participant-to-service messages.
type FedNowIncomingMessage struct {
	FedNowMessageReject                      *FedNowMessageReject                      `xml:"FedNowMessageReject,omitempty" json:"FedNowMessageReject,omitempty"`
	FedNowPaymentStatus                      *FedNowPaymentStatus                      `xml:"FedNowPaymentStatus,omitempty" json:"FedNowPaymentStatus,omitempty"`
	FedNowCustomerCreditTransfer             *FedNowCustomerCreditTransfer             `xml:"FedNowCustomerCreditTransfer,omitempty" json:"FedNowCustomerCreditTransfer,omitempty"`
	FedNowIncomingMessageSignatureManagement *FedNowIncomingMessageSignatureManagement `xml:"FedNowIncomingMessageSignatureManagement,omitempty" json:"FedNowIncomingMessageSignatureManagement,omitempty"`
}

func (m *FedNowIncomingMessage) Validate() error {
	var present []isoval.Alt
	if m.FedNowMessageReject != nil {
		present = append(present, isoval.Alt{Name: "FedNowMessageReject", Node: m.FedNowMessageReject})
	}
	if m.FedNowPaymentStatus != nil {
		present = append(present, isoval.Alt{Name: "FedNowPaymentStatus", Node: m.FedNowPaymentStatus})
	}
	if m.FedNowCustomerCreditTransfer != nil {
		present = append(present, isoval.Alt{Name: "FedNowCustomerCreditTransfer", Node: m.FedNowCustomerCreditTransfer})
	}
	if m.FedNowIncomingMessageSignatureManagement != nil {
		present = append(present, isoval.Alt{Name: "FedNowIncomingMessageSignatureManagement", Node: m.FedNowIncomingMessageSignatureManagement})
	}
	return isoval.CheckExactlyOne("FedNowIncomingMessage", present...)
}

// FedNowOutgoingMessage is the choice of service-to-participant messages.
type FedNowOutgoingMessage struct {
	FedNowMessageReject                      *FedNowMessageReject                      `xml:"FedNowMessageReject,omitempty" json:"FedNowMessageReject,omitempty"`
	FedNowPaymentStatus                      *FedNowPaymentStatus                      `xml:"FedNowPaymentStatus,omitempty" json:"FedNowPaymentStatus,omitempty"`
	FedNowCustomerCreditTransfer             *FedNowCustomerCreditTransfer             `xml:"FedNowCustomerCreditTransfer,omitempty" json:"FedNowCustomerCreditTransfer,omitempty"`
	FedNowOutgoingMessageSignatureManagement *FedNowOutgoingMessageSignatureManagement `xml:"FedNowOutgoingMessageSignatureManagement,omitempty" json:"FedNowOutgoingMessageSignatureManagement,omitempty"`
}

func (m *FedNowOutgoingMessage) Validate() error {
	var present []isoval.Alt
	if m.FedNowMessageReject != nil {
		present = append(present, isoval.Alt{Name: "FedNowMessageReject", Node: m.FedNowMessageReject})
	}
	if m.FedNowPaymentStatus != nil {
		present = append(present, isoval.Alt{Name: "FedNowPaymentStatus", Node: m.FedNowPaymentStatus})
	}
	if m.FedNowCustomerCreditTransfer != nil {
		present = append(present, isoval.Alt{Name: "FedNowCustomerCreditTransfer", Node: m.FedNowCustomerCreditTransfer})
	}
	if m.FedNowOutgoingMessageSignatureManagement != nil {
		present = append(present, isoval.Alt{Name: "FedNowOutgoingMessageSignatureManagement", Node: m.FedNowOutgoingMessageSignatureManagement})
	}
	return isoval.CheckExactlyOne("FedNowOutgoingMessage", present...)
}

// FedNowIncoming is the participant-to-service transport root.
type FedNowIncoming struct {
	XMLName               xml.Name               `xml:"FedNowIncoming" json:"-"`
	FedNowTechnicalHeader *FedNowTechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	FedNowIncomingMessage FedNowIncomingMessage  `xml:"FedNowIncomingMessage" json:"FedNowIncomingMessage"`
}

func (m *FedNowIncoming) Validate() error {
	if err := isoval.ValidateOptional("FedNowTechnicalHeader", m.FedNowTechnicalHeader); err != nil {
		return err
	}
	return isoval.ValidateField("FedNowIncomingMessage", &m.FedNowIncomingMessage)
}

// FedNowOutgoing is the service-to-participant transport root.
type FedNowOutgoing struct {
	XMLName               xml.Name               `xml:"FedNowOutgoing" json:"-"`
	FedNowTechnicalHeader *FedNowTechnicalHeader `xml:"FedNowTechnicalHeader,omitempty" json:"FedNowTechnicalHeader,omitempty"`
	FedNowOutgoingMessage FedNowOutgoingMessage  `xml:"FedNowOutgoingMessage" json:"FedNowOutgoingMessage"`
}

func (m *FedNowOutgoing) Validate() error {
	if err := isoval.ValidateOptional("FedNowTechnicalHeader", m.FedNowTechnicalHeader); err != nil {
		return err
	}
	return isoval.ValidateField("FedNowOutgoingMessage", &m.FedNowOutgoingMessage)
}

// FednowMessage is the direction choice a wire document resolves to.
type FednowMessage struct {
	FedNowIncoming *FedNowIncoming `xml:"FedNowIncoming,omitempty" json:"FedNowIncoming,omitempty"`
	FedNowOutgoing *FedNowOutgoing `xml:"FedNowOutgoing,omitempty" json:"FedNowOutgoing,omitempty"`
}

func (m *FednowMessage) Validate() error {
	var present []isoval.Alt
	if m.FedNowIncoming != nil {
		present = append(present, isoval.Alt{Name: "FedNowIncoming", Node: m.FedNowIncoming})
	}
	if m.FedNowOutgoing != nil {
		present = append(present, isoval.Alt{Name: "FedNowOutgoing", Node: m.FedNowOutgoing})
	}
	return isoval.CheckExactlyOne("FednowMessage", present...)
}
