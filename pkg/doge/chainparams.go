package doge

import "fmt"

type ChainParams struct {
	name                 string
	p2pkh_address_prefix byte
	p2sh_address_prefix  byte
	pkey_prefix          byte
	bip32_privkey_prefix uint32
	bip32_pubkey_prefix  uint32
}

var MainChain ChainParams = ChainParams{
	name:                 "doge",
	p2pkh_address_prefix: 0x1e,       // D
	p2sh_address_prefix:  0x16,       // 9 or A
	pkey_prefix:          0x9e,       // Q or 6
	bip32_privkey_prefix: 0x02fac398, // dgpv
	bip32_pubkey_prefix:  0x02facafd, // dgub
}

var TestChain ChainParams = ChainParams{
	name:                 "testnet",
	p2pkh_address_prefix: 0x71,       // n
	p2sh_address_prefix:  0xc4,       // 2
	pkey_prefix:          0xf1,       // 9 or c
	bip32_privkey_prefix: 0x04358394, // tprv
	bip32_pubkey_prefix:  0x043587cf, // tpub
}

var RegTestChain ChainParams = ChainParams{
	name:                 "regtest",
	p2pkh_address_prefix: 0x6f,       // m or n
	p2sh_address_prefix:  0xc4,       // 2
	pkey_prefix:          0xef,       // 9 or c
	bip32_privkey_prefix: 0x04358394, // tprv
	bip32_pubkey_prefix:  0x043587cf, // tpub
}

var BitcoinMainChain ChainParams = ChainParams{
	name:                 "bitcoin",
	p2pkh_address_prefix: 0x00,       // 1
	p2sh_address_prefix:  0x05,       // 3
	pkey_prefix:          0x80,       // 5H,5J,5K
	bip32_privkey_prefix: 0x0488ADE4, // xprv
	bip32_pubkey_prefix:  0x0488B21E, // xpub
}

// Chains lists every known chain, Dogecoin main chain first.
var Chains = []*ChainParams{&MainChain, &TestChain, &RegTestChain, &BitcoinMainChain}

func (c *ChainParams) Name() string { return c.name }
func (c *ChainParams) P2PKHAddressPrefix() byte { return c.p2pkh_address_prefix }
func (c *ChainParams) P2SHAddressPrefix() byte { return c.p2sh_address_prefix }
func (c *ChainParams) PrivKeyPrefix() byte { return c.pkey_prefix }

// ChainByName looks up a chain by the names used in configuration and on
// the command line: doge (or mainnet), testnet, regtest, bitcoin.
func ChainByName(name string) (*ChainParams, error) {
	switch name {
	case "doge", "mainnet", "":
		return &MainChain, nil
	case "testnet":
		return &TestChain, nil
	case "regtest":
		return &RegTestChain, nil
	case "bitcoin":
		return &BitcoinMainChain, nil
	}
	return nil, fmt.Errorf("unknown chain: %q", name)
}

func ChainFromTestNetFlag(is_testnet bool) *ChainParams {
	if is_testnet {
		return &TestChain
	}
	return &MainChain
}

// ChainFromWIFPrefix picks the chain whose private key prefix matches the
// first decoded byte. Regtest shares its prefixes with testnet for
// everything but keys, so 0xef resolves to regtest.
func ChainFromWIFPrefix(prefix byte) (*ChainParams, bool) {
	for _, chain := range Chains {
		if chain.pkey_prefix == prefix {
			return chain, true
		}
	}
	return nil, false
}

// SharesBip32Versions reports whether extended keys of c are also valid
// for other (testnet and regtest share tprv/tpub).
func (c *ChainParams) SharesBip32Versions(other *ChainParams) bool {
	return c.bip32_privkey_prefix == other.bip32_privkey_prefix && c.bip32_pubkey_prefix == other.bip32_pubkey_prefix
}

// ChainFromBip32Version returns the first chain using the version, so a
// tprv/tpub key is reported as testnet.
func ChainFromBip32Version(version uint32) (*ChainParams, bool) {
	for _, chain := range Chains {
		if version == chain.bip32_privkey_prefix || version == chain.bip32_pubkey_prefix {
			return chain, true
		}
	}
	return nil, false
}
