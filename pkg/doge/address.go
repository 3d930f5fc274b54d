package doge

import (
	"errors"

	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

type Address string // Dogecoin address (base-58 Public Key Hash aka PKH)

func Hash160toAddress(hash []byte, prefix byte) Address {
	if len(hash) != 20 {
		panic("Hash160toAddress: wrong RIPEMD-160 length")
	}
	return Address(base58.Encode(hash).WithCheckVersion(prefix).IntoString())
}

// PubKeyToAddress hashes a compressed public key into a P2PKH address with
// the given version prefix. Uncompressed keys are compressed first.
func PubKeyToAddress(key []byte, prefix byte) (Address, error) {
	if len(key) == ECPubKeyUncompressedLen && key[0] == 0x04 {
		compressed, err := CompressECPubKey(key)
		if err != nil {
			return "", err
		}
		key = compressed
	}
	if len(key) != ECPubKeyCompressedLen || (key[0] != 0x02 && key[0] != 0x03) {
		return "", errors.New("PubKeyToAddress: invalid pubkey")
	}
	return Hash160toAddress(Hash160(key), prefix), nil
}

func PubKeyToP2PKH(key []byte, chain *ChainParams) (Address, error) {
	return PubKeyToAddress(key, chain.p2pkh_address_prefix)
}

func ScriptToP2SH(redeemScript []byte, chain *ChainParams) Address {
	if len(redeemScript) < 1 {
		panic("ScriptToP2SH: bad script length")
	}
	return Hash160toAddress(Hash160(redeemScript), chain.p2sh_address_prefix)
}

func ValidateP2PKH(address Address, chain *ChainParams) bool {
	hash, err := Base58DecodeVersion(string(address), chain.p2pkh_address_prefix)
	return err == nil && len(hash) == 20
}

func ValidateP2SH(address Address, chain *ChainParams) bool {
	hash, err := Base58DecodeVersion(string(address), chain.p2sh_address_prefix)
	return err == nil && len(hash) == 20
}
