package doge

import (
	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

func Base58Encode(bytes []byte) string {
	return base58.Encode(bytes).IntoString()
}

// Base58EncodeCheck appends a double-SHA256 checksum before encoding.
// https://en.bitcoin.it/Base58Check_encoding
func Base58EncodeCheck(bytes []byte) string {
	return base58.Encode(bytes).WithCheck().IntoString()
}

func Base58Decode(str string) ([]byte, error) {
	return base58.Decode(str).IntoBytes()
}

// Base58DecodeCheck verifies and strips the 4-byte checksum.
func Base58DecodeCheck(str string) ([]byte, error) {
	return base58.Decode(str).WithCheck().IntoBytes()
}

// Base58DecodeVersion verifies the checksum and that the first byte is
// version. The returned payload excludes the version byte.
func Base58DecodeVersion(str string, version byte) ([]byte, error) {
	data, err := base58.Decode(str).WithCheckVersion(version).IntoBytes()
	if err != nil {
		return nil, err
	}
	return data[1:], nil
}
