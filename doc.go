// Package roman converts between integers (1..3999) and canonical Roman
// numerals and decides whether a string is a proper numeral.
//
// It provides:
//
// - Encode/Decode/IsValid over a single shared four-field recognizer
// - A stable error model via Issues (JSON Pointer, code, message) with
//   errors.Is support for ErrType, ErrRange and ErrFormat
// - Schema/Codec views of the same operations for use in validation pipelines
// - The Numeral value type, which marshals as text, JSON and YAML
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place codecs under codec/, document conversion under transcode/, and the
//   CLI under cmd/roman.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := roman.Encode(1994) // "MCMXCIV"
//	n, err := roman.Decode("xiv") // 14
//	ok := roman.IsValid("IIII")   // false
//
//	c := codec.Numeral()
//	dm, err := c.DecodeWithMeta(ctx, "mmxxv")
//	wire, err := c.EncodePreserving(ctx, dm)
package roman
