package doge

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	ECPrivKeyLen            = 32 // bytes.
	ECPubKeyCompressedLen   = 33 // bytes: [2/3][32-X] 2=even 3=odd
	ECPubKeyUncompressedLen = 65 // bytes: [4][32-X][32-Y]
)

type ECPrivKey = []byte            // 32 bytes.
type ECPubKeyCompressed = []byte   // 33 bytes.
type ECPubKeyUncompressed = []byte // 65 bytes.

func ECPubKeyFromECPrivKey(key ECPrivKey) ECPubKeyCompressed {
	if len(key) != ECPrivKeyLen {
		panic("ECPubKeyFromECPrivKey: wrong key length")
	}
	return secp256k1.PrivKeyFromBytes(key).PubKey().SerializeCompressed()
}

// CompressECPubKey accepts a compressed or uncompressed public key and
// returns it in compressed form.
func CompressECPubKey(key []byte) (ECPubKeyCompressed, error) {
	pubkey, err := secp256k1.ParsePubKey(key)
	if err != nil {
		return nil, err
	}
	return pubkey.SerializeCompressed(), nil
}

// ECKeyIsValid reports whether key is a usable secp256k1 private key:
// non-zero and less than the group order N.
func ECKeyIsValid(key ECPrivKey) bool {
	if len(key) != ECPrivKeyLen {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(key)
	return !overflow && !s.IsZero()
}
