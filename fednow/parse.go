package fednow

import (
	"bytes"
	"encoding/xml"

	"github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

func unknownRoot(name string) error {
	return isoval.NewValidationError(isoval.CodeUnknownDocument, name,
		i18n.T(isoval.CodeUnknownDocument, map[string]string{"field": name}))
}

// ParseXML decodes an XML wire document into a FednowMessage. The root
// element selects the direction; any other root is an unknown document type.
// Parsing does not validate content: call Validate on the result.
func ParseXML(data []byte) (*FednowMessage, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "FedNowIncoming":
			var in FedNowIncoming
			if err := dec.DecodeElement(&in, &start); err != nil {
				return nil, err
			}
			return &FednowMessage{FedNowIncoming: &in}, nil
		case "FedNowOutgoing":
			var out FedNowOutgoing
			if err := dec.DecodeElement(&out, &start); err != nil {
				return nil, err
			}
			return &FednowMessage{FedNowOutgoing: &out}, nil
		default:
			return nil, unknownRoot(start.Name.Local)
		}
	}
}

// ParseJSON decodes a JSON wire document into a FednowMessage. The top-level
// key selects the direction the way the XML root element does.
func ParseJSON(data []byte) (*FednowMessage, error) {
	var m FednowMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.FedNowIncoming == nil && m.FedNowOutgoing == nil {
		return nil, unknownRoot("")
	}
	return &m, nil
}

// MarshalXML encodes the message back to its XML wire form, mirroring
// ParseXML.
func MarshalXML(m *FednowMessage) ([]byte, error) {
	switch {
	case m.FedNowIncoming != nil:
		return xml.Marshal(m.FedNowIncoming)
	case m.FedNowOutgoing != nil:
		return xml.Marshal(m.FedNowOutgoing)
	}
	return nil, unknownRoot("")
}

// MarshalJSON encodes the message back to its JSON wire form, mirroring
// ParseJSON.
func MarshalJSON(m *FednowMessage) ([]byte, error) {
	if m.FedNowIncoming == nil && m.FedNowOutgoing == nil {
		return nil, unknownRoot("")
	}
	return json.Marshal(m)
}
