// Package keyexchange implements the FedNow message signature key exchange
// catalog: key addition and revocation requests and the public-key responses
// returned by the service.
package keyexchange

import (
	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/codec"
)

// Key identifier and participant identifier patterns.
const (
	PatternKeyID         = `[A-Za-z0-9\-_]{1,300}`
	PatternRoutingNumber = "[0-9]{9,9}"
)

// FedNowMessageSignatureKeyStatus ...
type FedNowMessageSignatureKeyStatus struct {
	KeyStatus      string `xml:"KeyStatus" json:"KeyStatus"`
	StatusDateTime string `xml:"StatusDateTime" json:"StatusDateTime"`
}

func (s *FedNowMessageSignatureKeyStatus) Validate() error {
	if err := isoval.CheckTextLength("KeyStatus", s.KeyStatus, 1, 300); err != nil {
		return err
	}
	return codec.CheckDateTime("StatusDateTime", s.StatusDateTime)
}

// FedNowMessageSignatureKey ...
type FedNowMessageSignatureKey struct {
	FedNowKeyID         string  `xml:"FedNowKeyID" json:"FedNowKeyID"`
	Name                string  `xml:"Name" json:"Name"`
	EncodedPublicKey    string  `xml:"EncodedPublicKey" json:"EncodedPublicKey"`
	Encoding            string  `xml:"Encoding" json:"Encoding"`
	Algorithm           *string `xml:"Algorithm,omitempty" json:"Algorithm,omitempty"`
	KeyCreationDateTime *string `xml:"KeyCreationDateTime,omitempty" json:"KeyCreationDateTime,omitempty"`
}

func (k *FedNowMessageSignatureKey) Validate() error {
	if err := isoval.CheckPattern("FedNowKeyID", k.FedNowKeyID, PatternKeyID); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("Name", k.Name, 1, 300); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("EncodedPublicKey", k.EncodedPublicKey, 1, 0); err != nil {
		return err
	}
	if err := isoval.CheckTextLength("Encoding", k.Encoding, 1, 50); err != nil {
		return err
	}
	if v := k.Algorithm; v != nil {
		if err := isoval.CheckTextLength("Algorithm", *v, 1, 50); err != nil {
			return err
		}
	}
	if v := k.KeyCreationDateTime; v != nil {
		if err := codec.CheckDateTime("KeyCreationDateTime", *v); err != nil {
			return err
		}
	}
	return nil
}

// KeyAddition ...
type KeyAddition struct {
	Key *FedNowMessageSignatureKey `xml:"Key,omitempty" json:"Key,omitempty"`
}

func (k *KeyAddition) Validate() error {
	return isoval.ValidateOptional("Key", k.Key)
}

// KeyRevocation ...
type KeyRevocation struct {
	KeyRevocation           *string `xml:"KeyRevocation,omitempty" json:"KeyRevocation,omitempty"`
	FedNowStatusDescription *string `xml:"FedNowStatusDescription,omitempty" json:"FedNowStatusDescription,omitempty"`
	FedNowKeyID             *string `xml:"FedNowKeyID,omitempty" json:"FedNowKeyID,omitempty"`
}

func (k *KeyRevocation) Validate() error {
	if v := k.FedNowStatusDescription; v != nil {
		if err := isoval.CheckTextLength("FedNowStatusDescription", *v, 1, 300); err != nil {
			return err
		}
	}
	if v := k.FedNowKeyID; v != nil {
		if err := isoval.CheckPattern("FedNowKeyID", *v, PatternKeyID); err != nil {
			return err
		}
	}
	return nil
}

// FedNowMessageSignatureKeyExchange ...
type FedNowMessageSignatureKeyExchange struct {
	KeyAddition   *KeyAddition `xml:"KeyAddition,omitempty" json:"KeyAddition,omitempty"`
	KeyRevocation *string      `xml:"KeyRevocation,omitempty" json:"KeyRevocation,omitempty"`
}

func (k *FedNowMessageSignatureKeyExchange) Validate() error {
	return isoval.ValidateOptional("KeyAddition", k.KeyAddition)
}

// FedNowCustomerMessageSignatureKeyOperationResponse ...
type FedNowCustomerMessageSignatureKeyOperationResponse struct {
	FedNowKeyID string  `xml:"FedNowKeyID" json:"FedNowKeyID"`
	Status      string  `xml:"Status" json:"Status"`
	ErrorCode   *string `xml:"ErrorCode,omitempty" json:"ErrorCode,omitempty"`
}

func (r *FedNowCustomerMessageSignatureKeyOperationResponse) Validate() error {
	return isoval.CheckPattern("FedNowKeyID", r.FedNowKeyID, PatternKeyID)
}

// GetAllFedNowActivePublicKeys ...
type GetAllFedNowActivePublicKeys struct{}

func (*GetAllFedNowActivePublicKeys) Validate() error { return nil }

// GetAllCustomerPublicKeys ...
type GetAllCustomerPublicKeys struct{}

func (*GetAllCustomerPublicKeys) Validate() error { return nil }

// FedNowPublicKeyResponse ...
type FedNowPublicKeyResponse struct {
	FedNowMessageSignatureKeyStatus FedNowMessageSignatureKeyStatus `xml:"FedNowMessageSignatureKeyStatus" json:"FedNowMessageSignatureKeyStatus"`
	FedNowMessageSignatureKey       FedNowMessageSignatureKey       `xml:"FedNowMessageSignatureKey" json:"FedNowMessageSignatureKey"`
}

func (r *FedNowPublicKeyResponse) Validate() error {
	if err := isoval.ValidateField("FedNowMessageSignatureKeyStatus", &r.FedNowMessageSignatureKeyStatus); err != nil {
		return err
	}
	return isoval.ValidateField("FedNowMessageSignatureKey", &r.FedNowMessageSignatureKey)
}

// FedNowPublicKeyResponses ...
type FedNowPublicKeyResponses struct {
	PublicKeys []FedNowPublicKeyResponse `xml:"PublicKeys" json:"PublicKeys"`
}

func (r *FedNowPublicKeyResponses) Validate() error {
	return isoval.ValidateEach("PublicKeys", r.PublicKeys)
}
