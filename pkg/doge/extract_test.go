package doge

import (
	"testing"
)

func TestExtract(t *testing.T) {
	extECT(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", "L52XzL2cMkHxqxBXRyEpnPQZGUs3uKiL3R11XbAdHigRzDozKZeW")
	extECT(t, "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7", "L5BmPijJjrKbiUfG4zbiFKNqkvuJ8usooJmzuD7Z8dkRoTThYnAT")
	extECT(t, "dgpv51eADS3spNJh9Gjth94XcPwAczvQaDJs9rqx11kvxKs6r3Ek8AgERHhjLs6mzXQFHRzQqGwqdeoDkZmr8jQMBfi43b7sT3sx3cCSk5fGeUR", "QWRT9AqbcMn65Uaa2F5cfcFAjWtcwsr8vfgvKDZU25HnS9gkJG7W")
	if _, err := ExtractECPrivKeyFromBip32("xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"); err == nil {
		t.Errorf("ExtractECPrivKeyFromBip32: extracted a private key from an xpub")
	}
}

func TestGenerateP2PKH(t *testing.T) {
	addr, err := GenerateP2PKHFromECPrivKeyWIF("KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617")
	if err != nil {
		t.Fatalf("GenerateP2PKHFromECPrivKeyWIF: %v", err)
	}
	pub := ECPubKeyFromECPrivKey(hx2b("0C28FCA386C7A227600B2FE50B7CAE11EC86D3BF1FBE471BE89827E19D72AA1D"))
	want, _ := PubKeyToP2PKH(pub, &BitcoinMainChain)
	if addr != want {
		t.Errorf("GenerateP2PKHFromECPrivKeyWIF: %s vs %s", addr, want)
	}
}

func extECT(t *testing.T, ext_key string, ec_key string) {
	key, err := ExtractECPrivKeyFromBip32(ext_key)
	if err != nil {
		t.Errorf("ExtractECPrivKeyFromBip32: %v", err)
	}
	if key != ec_key {
		t.Errorf("Base58: extracted EC Key doesn't match: %s vs %s", key, ec_key)
	}
}
