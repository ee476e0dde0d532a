// Package isoval provides:
//
// - Leaf constraint checks for ISO 20022 simple types (length bounds, anchored
//   patterns, closed enumerations, numeric bounds)
// - A stable error model via ValidationError (numeric code, JSON-Pointer-style
//   path, message)
// - Generic traversal helpers composing per-type Validate methods across
//   required/optional/repeated/choice slots
//
// Design policy:
// - Keep only the engine API in the root package; message catalogs live in
//   their own packages (common, head, pacs, admi, keyexchange, fednow).
// - Place wire codecs under codec/ and the CLI under cmd/isoval.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	msg, err := fednow.ParseXML(data)
//	if err != nil { ... }
//	if err := msg.Validate(); err != nil {
//		ve, _ := isoval.AsValidationError(err)
//		log.Printf("code=%d path=%s %s", ve.Code, ve.Path, ve.Message)
//	}
package isoval
