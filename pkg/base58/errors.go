package base58

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	BufferTooSmall     ErrorCode = "buffer-too-small"
	InvalidCharacter   ErrorCode = "invalid-character"
	NonAsciiCharacter  ErrorCode = "non-ascii-character"
	DuplicateCharacter ErrorCode = "duplicate-character"
	NoChecksum         ErrorCode = "no-checksum"
	InvalidChecksum    ErrorCode = "invalid-checksum"
	InvalidVersion     ErrorCode = "invalid-version"
)

// AlphabetError is returned by NewAlphabet when the 58 symbols do not form
// a valid table.
type AlphabetError struct {
	Code      ErrorCode
	Character byte // DuplicateCharacter
	Index     int  // NonAsciiCharacter
	First     int  // DuplicateCharacter: index of the first occurrence
	Second    int  // DuplicateCharacter: index of the repeat
}

func (e *AlphabetError) Error() string {
	switch e.Code {
	case NonAsciiCharacter:
		return fmt.Sprintf("alphabet contained non-ascii character at byte %d", e.Index)
	case DuplicateCharacter:
		return fmt.Sprintf("alphabet contained a duplicate character %q at indexes %d and %d", e.Character, e.First, e.Second)
	}
	return string(e.Code)
}

func (e *AlphabetError) ErrorCode() ErrorCode { return e.Code }

// DecodeError describes why a base58 string could not be decoded. Only the
// fields relevant to Code are set.
type DecodeError struct {
	Code             ErrorCode
	Character        byte // InvalidCharacter
	Index            int  // InvalidCharacter, NonAsciiCharacter
	Checksum         [ChecksumLen]byte
	ExpectedChecksum [ChecksumLen]byte
	Version          byte
	ExpectedVersion  byte
}

func (e *DecodeError) Error() string {
	switch e.Code {
	case BufferTooSmall:
		return "buffer provided to decode base58 encoded string into was too small"
	case InvalidCharacter:
		return fmt.Sprintf("provided string contained invalid character %q at byte %d", e.Character, e.Index)
	case NonAsciiCharacter:
		return fmt.Sprintf("provided string contained non-ascii character starting at byte %d", e.Index)
	case NoChecksum:
		return "provided string is too small to contain a checksum"
	case InvalidChecksum:
		return fmt.Sprintf("invalid checksum, calculated checksum: %x, expected checksum: %x", e.Checksum, e.ExpectedChecksum)
	case InvalidVersion:
		return fmt.Sprintf("invalid version, payload version: %#02x, expected version: %#02x", e.Version, e.ExpectedVersion)
	}
	return string(e.Code)
}

func (e *DecodeError) ErrorCode() ErrorCode { return e.Code }

// EncodeError is returned when the encoded text does not fit the target.
type EncodeError struct {
	Code ErrorCode
}

func (e *EncodeError) Error() string {
	if e.Code == BufferTooSmall {
		return "buffer provided to encode base58 string into was too small"
	}
	return string(e.Code)
}

func (e *EncodeError) ErrorCode() ErrorCode { return e.Code }

// IsError reports whether err, or any error it wraps, is a base58 error
// carrying the given code.
func IsError(err error, code ErrorCode) bool {
	var coded interface{ ErrorCode() ErrorCode }
	if errors.As(err, &coded) {
		return coded.ErrorCode() == code
	}
	return false
}

func errBufferTooSmall() error {
	return &DecodeError{Code: BufferTooSmall}
}

func errInvalidCharacter(c byte, index int) error {
	if c >= 128 {
		return &DecodeError{Code: NonAsciiCharacter, Index: index}
	}
	return &DecodeError{Code: InvalidCharacter, Character: c, Index: index}
}
