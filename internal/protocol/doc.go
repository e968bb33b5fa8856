// Package protocol owns the ASCII instrument wire contract.
//
// Ownership boundary:
// - request/command frame construction and checksums
// - response frame parsing and validation
// - the invalid-character filter default
//
// One frame is `AAA TT NNN LL DATA CCC <CR>` (no spaces on the wire):
// 3-digit address, 2-digit action, 3-digit parameter number, 2-digit data
// length, ASCII payload, 3-digit mod-256 checksum, carriage return.
package protocol
