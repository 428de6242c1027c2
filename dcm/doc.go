// Package dcm implements the dcm binary form of a document.
//
// A value is a one byte tag followed by its payload:
//
//	'n'                              null
//	'i' int32                        integer
//	'f' float64                      IEEE 754 double
//	'b' byte                         0 or 1
//	's' uint32 len, bytes            string
//	'o' uint32 count, count* (uint32 len, key bytes, value)
//	'a' uint32 count, count* value
//
// Fixed width fields use the host byte order, so encoded bytes are only
// portable between hosts of the same endianness.
//
// Decoding is bounds checked. Malformed input yields an *Error, which
// matches ir.ErrParse under errors.Is.
package dcm
