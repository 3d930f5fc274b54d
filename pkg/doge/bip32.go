package doge

import (
	"fmt"

	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

// https://en.bitcoin.it/wiki/BIP_0032
type Bip32Key struct {
	chain        *ChainParams
	version      uint32   // 4 version bytes (ChainParams.bip32_privkey_prefix / bip32_pubkey_prefix)
	depth        byte     // 0x00 for master nodes, 0x01 for level-1 derived keys, ...
	fingerprint  uint32   // the fingerprint of the parent's key (0x00000000 if master key)
	child_number uint32   // child number. ser32(i) for i in xi = xpar/i, with xi the key being serialized. (0x00000000 if master key)
	chain_code   [32]byte // the chain code
	pub_priv_key [33]byte // public key or private key data (serP(K) for public keys, 0x00 || ser256(k) for private keys)
}

func (key *Bip32Key) Chain() *ChainParams { return key.chain }
func (key *Bip32Key) Depth() byte { return key.depth }
func (key *Bip32Key) ChildNumber() uint32 { return key.child_number }
func (key *Bip32Key) IsPrivate() bool { return key.pub_priv_key[0] == 0x00 }

func (key *Bip32Key) GetECPrivKey() (ECPrivKey, error) {
	if !key.IsPrivate() {
		return nil, fmt.Errorf("Bip32Key is not a private key")
	}
	pk := [ECPrivKeyLen]byte{}
	copy(pk[:], key.pub_priv_key[1:33])
	return pk[:], nil
}

// GetECPubKey returns the compressed public key, deriving it for a private
// key. It fails if the private scalar is zero or >= N, or if the public key
// is not a point on the curve.
func (key *Bip32Key) GetECPubKey() (ECPubKeyCompressed, error) {
	if key.IsPrivate() {
		if !ECKeyIsValid(key.pub_priv_key[1:33]) {
			return nil, fmt.Errorf("Bip32Key: invalid EC key (zero or >= N)")
		}
		return ECPubKeyFromECPrivKey(key.pub_priv_key[1:33]), nil
	}
	pub := [ECPubKeyCompressedLen]byte{}
	copy(pub[:], key.pub_priv_key[:])
	if _, err := CompressECPubKey(pub[:]); err != nil {
		return nil, fmt.Errorf("Bip32Key: invalid EC public key: %v", err)
	}
	return pub[:], nil
}

// Clear zeroes the key material.
func (key *Bip32Key) Clear() {
	clear(key.chain_code[:])
	clear(key.pub_priv_key[:])
}

const (
	SerializedBip32KeyLength = 4 + 1 + 4 + 4 + 32 + 33
)

// DecodeBip32WIF parses an extended key (xpub, dgpv, tprv...). When chain is
// nil the chain is inferred from the version bytes; otherwise the version
// must belong to that chain.
func DecodeBip32WIF(extendedKey string, chain *ChainParams) (*Bip32Key, error) {
	var data [SerializedBip32KeyLength + base58.ChecksumLen]byte
	n, err := base58.Decode(extendedKey).WithCheck().Into(base58.Fixed(data[:]))
	if err != nil {
		if base58.IsError(err, base58.BufferTooSmall) {
			return nil, fmt.Errorf("DecodeBip32WIF: not a bip32 extended key (too long)")
		}
		return nil, err
	}
	if n != SerializedBip32KeyLength {
		return nil, fmt.Errorf("DecodeBip32WIF: not a bip32 extended key (wrong length)")
	}
	var key Bip32Key
	key.version = deser32(data[0:])
	if chain == nil {
		found, ok := ChainFromBip32Version(key.version)
		if !ok {
			return nil, fmt.Errorf("DecodeBip32WIF: not a bip32 extended key (unknown prefix)")
		}
		chain = found
	} else if key.version != chain.bip32_privkey_prefix && key.version != chain.bip32_pubkey_prefix {
		return nil, fmt.Errorf("DecodeBip32WIF: not a bip32 extended key (wrong prefix)")
	}
	key.chain = chain
	key.depth = data[4]
	key.fingerprint = deser32(data[5:])
	key.child_number = deser32(data[9:])
	copy(key.chain_code[:], data[13:45])
	copy(key.pub_priv_key[:], data[45:78])
	if key.IsPrivate() != (key.version == chain.bip32_privkey_prefix) {
		return nil, fmt.Errorf("DecodeBip32WIF: key data does not match version")
	}
	return &key, nil
}

func EncodeBip32WIF(key *Bip32Key) (string, error) {
	data := [SerializedBip32KeyLength]byte{}
	ser32(key.version, data[0:4])
	data[4] = key.depth
	ser32(key.fingerprint, data[5:9])
	ser32(key.child_number, data[9:13])
	copy(data[13:45], key.chain_code[:])
	copy(data[45:78], key.pub_priv_key[:])
	return base58.Encode(data[:]).WithCheck().IntoString(), nil
}

func ser32(i uint32, to []byte) {
	// serialize a 32-bit unsigned integer, most significant byte first.
	to[0] = byte(i >> 24)
	to[1] = byte(i >> 16)
	to[2] = byte(i >> 8)
	to[3] = byte(i >> 0)
}

func deser32(from []byte) uint32 {
	// deserialize a 32-bit unsigned integer, most significant byte first.
	return (uint32(from[0]) << 24) | (uint32(from[1]) << 16) | (uint32(from[2]) << 8) | (uint32(from[3]))
}
