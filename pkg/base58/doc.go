// Package base58 converts between bytes and Base58 text, with optional
// Base58Check or CB58 checksums.
//
// Requests are built with Encode and Decode and written through a Target:
//
//	text := base58.Encode(payload).WithCheckVersion(0x1e).IntoString()
//	data, err := base58.Decode(text).WithCheckVersion(0x1e).IntoBytes()
//
//	var buf [32]byte
//	n, err := base58.Decode(text).Into(base58.Fixed(buf[:]))
//
// Alphabets are immutable and may be shared between goroutines; a call only
// borrows its target for the duration of the call.
package base58
