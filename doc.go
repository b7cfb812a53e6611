package numeral

// Package numeral provides:
//
// - Locale-configurable read/write codecs for real numbers and integers
//   (Transformer: prefix parse + format as an inverse pair)
// - A declarative configuration surface (NumberFormatOptions) covering sign
//   policy, digit grouping, fractional/integer digit bounds, and scientific
//   notation
// - A stable error model via Issues (code, message, params)
// - Radix-2/8/16 unsigned integer codecs and a catalog of named presets
//
// Design policy:
// - Keep only public APIs in the root package; put digit-string arithmetic
//   under internal/.
// - Failures are values: configuration errors at construction, NoMatch and
//   NotRepresentable at call time. No panics cross the public boundary.
// - Everything the writer produces is re-parsed identically by the reader
//   built from the same options (round-trip law).
//
// Typical usage:
//
//  tr, err := numeral.Float(opts...)
//  v, rest, err := tr.Read("1,048.30kg")
//  s, err := tr.Write(-1740.7654)
//
//  tr, ok := numeral.LookupFloat("ukFloatingPoint")
//
