package doge

import (
	"fmt"

	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

// EncodeECPrivKeyWIF encodes a private key whose public key is compressed.
// https://en.bitcoin.it/wiki/Wallet_import_format
func EncodeECPrivKeyWIF(key ECPrivKey, chain *ChainParams) string {
	data := [ECPrivKeyLen + 1]byte{}
	if copy(data[:], key) != ECPrivKeyLen {
		panic("EncodeECPrivKeyWIF: wrong key length")
	}
	data[ECPrivKeyLen] = 0x01 // pubkey will be compressed.
	return base58.Encode(data[:]).WithCheckVersion(chain.pkey_prefix).IntoString()
}

func EncodeECPrivKeyUncompressedWIF(key ECPrivKey, chain *ChainParams) string {
	if len(key) != ECPrivKeyLen {
		panic("EncodeECPrivKeyUncompressedWIF: wrong key length")
	}
	// pubkey will be uncompressed (no 0x01 byte)
	return base58.Encode(key).WithCheckVersion(chain.pkey_prefix).IntoString()
}

// DecodeECPrivKeyWIF returns the private key, the chain named by its
// prefix, and whether the matching public key is compressed.
func DecodeECPrivKeyWIF(str string) (ECPrivKey, *ChainParams, bool, error) {
	data, err := Base58DecodeCheck(str)
	if err != nil {
		return nil, nil, false, err
	}
	if len(data) == 0 {
		return nil, nil, false, fmt.Errorf("DecodeECPrivKeyWIF: empty key")
	}
	chain, ok := ChainFromWIFPrefix(data[0])
	if !ok {
		return nil, nil, false, fmt.Errorf("DecodeECPrivKeyWIF: wrong key prefix: %#02x", data[0])
	}
	compressed := false
	switch {
	case len(data) == 1+ECPrivKeyLen+1 && data[1+ECPrivKeyLen] == 0x01:
		compressed = true
	case len(data) == 1+ECPrivKeyLen:
	default:
		return nil, nil, false, fmt.Errorf("DecodeECPrivKeyWIF: wrong key length")
	}
	if !ECKeyIsValid(data[1 : 1+ECPrivKeyLen]) {
		return nil, nil, false, fmt.Errorf("DecodeECPrivKeyWIF: invalid EC key (zero or >= N)")
	}
	pk := [ECPrivKeyLen]byte{}
	copy(pk[:], data[1:1+ECPrivKeyLen])
	return pk[:], chain, compressed, nil
}
