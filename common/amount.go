package common

import (
	"encoding/xml"
	"strconv"
	"strings"

	isoval "github.com/open-payments/isoval"
)

// PatternCurrency constrains ISO 4217 alphabetic currency codes.
const PatternCurrency = "[A-Z]{3,3}"

// ActiveCurrencyAndAmount is an amount element whose currency rides on the
// Ccy attribute and whose value is the element text, e.g.
// <IntrBkSttlmAmt Ccy="USD">1000.00</IntrBkSttlmAmt>. encoding/xml cannot
// bind character data to float64 directly, so the wire codec goes through a
// string intermediate.
type ActiveCurrencyAndAmount struct {
	Ccy   string  `json:"Ccy"`
	Value float64 `json:"Amt"`
}

type rawAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

func decodeAmount(d *xml.Decoder, start xml.StartElement) (string, float64, error) {
	var raw rawAmount
	if err := d.DecodeElement(&raw, &start); err != nil {
		return "", 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw.Value), 64)
	if err != nil {
		return "", 0, err
	}
	return raw.Ccy, v, nil
}

func encodeAmount(e *xml.Encoder, start xml.StartElement, ccy string, value float64) error {
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "Ccy"}, Value: ccy})
	return e.EncodeElement(strconv.FormatFloat(value, 'f', -1, 64), start)
}

func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	ccy, v, err := decodeAmount(d, start)
	if err != nil {
		return err
	}
	a.Ccy, a.Value = ccy, v
	return nil
}

func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeAmount(e, start, a.Ccy, a.Value)
}

func (a *ActiveCurrencyAndAmount) Validate() error {
	if err := isoval.CheckPattern("Ccy", a.Ccy, PatternCurrency); err != nil {
		return err
	}
	return isoval.CheckDecimalMin("Value", a.Value, 0)
}

// ActiveOrHistoricCurrencyAndAmount is the historic-currency variant; the
// wire shape and constraints match ActiveCurrencyAndAmount.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   string  `json:"Ccy"`
	Value float64 `json:"Amt"`
}

func (a *ActiveOrHistoricCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	ccy, v, err := decodeAmount(d, start)
	if err != nil {
		return err
	}
	a.Ccy, a.Value = ccy, v
	return nil
}

func (a ActiveOrHistoricCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeAmount(e, start, a.Ccy, a.Value)
}

func (a *ActiveOrHistoricCurrencyAndAmount) Validate() error {
	if err := isoval.CheckPattern("Ccy", a.Ccy, PatternCurrency); err != nil {
		return err
	}
	return isoval.CheckDecimalMin("Value", a.Value, 0)
}
