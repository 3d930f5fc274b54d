package giga

import (
	"errors"
	"fmt"

	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

type ErrorCode string

const (
	BadRequest      ErrorCode = "bad-request"
	InvalidEncoding ErrorCode = "invalid-encoding"
	InvalidChecksum ErrorCode = "invalid-checksum"
	NotFound        ErrorCode = "not-found"
	UnknownError    ErrorCode = "unknown-error"
)

type ErrorInfo struct {
	Code    ErrorCode // machine-readble ErrorCode enumeration
	Message string    // human-readable debug message
}

func (e *ErrorInfo) Error() string {
	return string(e.Message)
}

func NewErr(code ErrorCode, format string, args ...any) error {
	return &ErrorInfo{Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBadRequestError(err error) bool {
	return IsError(err, BadRequest)
}

func IsError(err error, ofType ErrorCode) bool {
	var e *ErrorInfo
	if errors.As(err, &e) {
		return e.Code == ofType
	}
	return false
}

// codecErr classifies a base58 error for callers of the Codec.
func codecErr(err error) error {
	switch {
	case err == nil:
		return nil
	case base58.IsError(err, base58.NoChecksum),
		base58.IsError(err, base58.InvalidChecksum),
		base58.IsError(err, base58.InvalidVersion):
		return &ErrorInfo{Code: InvalidChecksum, Message: err.Error()}
	case base58.IsError(err, base58.InvalidCharacter),
		base58.IsError(err, base58.NonAsciiCharacter):
		return &ErrorInfo{Code: InvalidEncoding, Message: err.Error()}
	case base58.IsError(err, base58.DuplicateCharacter),
		base58.IsError(err, base58.BufferTooSmall):
		return &ErrorInfo{Code: BadRequest, Message: err.Error()}
	}
	return &ErrorInfo{Code: UnknownError, Message: err.Error()}
}
