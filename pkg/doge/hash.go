package doge

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

type Hash256 = []byte

func Sha256(bytes []byte) Hash256 {
	result := sha256.Sum256(bytes)
	return result[:]
}

func DoubleSha256(bytes []byte) Hash256 {
	hash := sha256.Sum256(bytes)
	result := sha256.Sum256(hash[:])
	return result[:]
}

func RIPEMD160(bytes []byte) []byte {
	hash := ripemd160.New()
	n, err := hash.Write(bytes)
	if err != nil || n != len(bytes) {
		panic("RIPEMD160: cannot write bytes")
	}
	return hash.Sum(nil)
}

// Hash160 is RIPEMD160(SHA256(bytes)), the hash behind P2PKH and P2SH addresses.
func Hash160(bytes []byte) []byte {
	return RIPEMD160(Sha256(bytes))
}
