package base58

import (
	"github.com/minio/sha256-simd"
)

// ChecksumLen is the number of checksum bytes appended by Base58Check and
// CB58.
const ChecksumLen = 4

// CheckMode selects the checksum framing of an encode or decode.
type CheckMode uint8

const (
	NoCheck CheckMode = iota
	// Base58Check: first 4 bytes of SHA256(SHA256(payload)).
	// https://en.bitcoin.it/wiki/Base58Check_encoding
	Base58Check
	// CB58: last 4 bytes of SHA256(payload).
	CB58
)

func (m CheckMode) String() string {
	switch m {
	case NoCheck:
		return "none"
	case Base58Check:
		return "check"
	case CB58:
		return "cb58"
	}
	return "unknown"
}

// ParseCheckMode is the inverse of CheckMode.String.
func ParseCheckMode(s string) (CheckMode, bool) {
	switch s {
	case "", "none":
		return NoCheck, true
	case "check", "base58check":
		return Base58Check, true
	case "cb58":
		return CB58, true
	}
	return NoCheck, false
}

// check is the checksum part of a request: the framing plus the optional
// version byte.
type check struct {
	mode       CheckMode
	version    byte
	hasVersion bool
}

// sum computes the checksum of the concatenation of parts.
func (m CheckMode) sum(parts ...[]byte) (out [ChecksumLen]byte) {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var digest [sha256.Size]byte
	h.Sum(digest[:0])
	switch m {
	case Base58Check:
		second := sha256.Sum256(digest[:])
		copy(out[:], second[:ChecksumLen])
	case CB58:
		copy(out[:], digest[sha256.Size-ChecksumLen:])
	default:
		panic("base58: checksum requested without a check mode")
	}
	return
}

// Checksum returns the 4 checksum bytes mode would append to payload.
func Checksum(mode CheckMode, payload []byte) [ChecksumLen]byte {
	return mode.sum(payload)
}

// verify checks the decoded bytes (payload ++ checksum) and returns the
// payload length.
func (c check) verify(decoded []byte) (int, error) {
	if len(decoded) < ChecksumLen {
		return 0, &DecodeError{Code: NoChecksum}
	}
	split := len(decoded) - ChecksumLen
	payload := decoded[:split]
	calculated := c.mode.sum(payload)
	var given [ChecksumLen]byte
	copy(given[:], decoded[split:])
	if calculated != given {
		return 0, &DecodeError{Code: InvalidChecksum, Checksum: calculated, ExpectedChecksum: given}
	}
	if c.hasVersion {
		var ver byte
		if len(payload) > 0 {
			ver = payload[0]
		}
		if len(payload) == 0 || ver != c.version {
			return 0, &DecodeError{Code: InvalidVersion, Version: ver, ExpectedVersion: c.version}
		}
	}
	return split, nil
}
