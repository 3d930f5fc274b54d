package base58

import (
	"fmt"
	"strings"
)

const absent = 0xff

// Alphabet is a prepared base58 symbol table. It is immutable once built
// and safe to share between goroutines.
type Alphabet struct {
	encode [58]byte
	decode [128]byte
}

var (
	// Bitcoin's alphabet as defined in their Base58Check encoding.
	// https://en.bitcoin.it/wiki/Base58Check_encoding#Base58_symbol_chart
	Bitcoin = MustAlphabet(symbols("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"))

	// Monero uses the same ordering as Bitcoin.
	// https://forum.getmonero.org/4/academic-and-technical/221/creating-a-standard-for-physical-coins
	Monero = MustAlphabet(symbols("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"))

	// Ripple's alphabet. https://xrpl.org/base58-encodings.html
	Ripple = MustAlphabet(symbols("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"))

	// Flickr's alphabet for short photo URLs.
	Flickr = MustAlphabet(symbols("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"))

	// Default is used by Encode and Decode unless WithAlphabet is given.
	Default = Bitcoin
)

// NewAlphabet builds the encode/decode tables for the given 58 symbols.
// Every symbol must be ASCII and appear once.
func NewAlphabet(base [58]byte) (*Alphabet, error) {
	a := Alphabet{encode: base}
	for i := range a.decode {
		a.decode[i] = absent
	}
	for i, c := range base {
		if c >= 128 {
			return nil, &AlphabetError{Code: NonAsciiCharacter, Index: i}
		}
		if first := a.decode[c]; first != absent {
			return nil, &AlphabetError{Code: DuplicateCharacter, Character: c, First: int(first), Second: i}
		}
		a.decode[c] = byte(i)
	}
	return &a, nil
}

// MustAlphabet is NewAlphabet for tables that are known to be valid; it
// panics otherwise.
func MustAlphabet(base [58]byte) *Alphabet {
	a, err := NewAlphabet(base)
	if err != nil {
		panic("base58: " + err.Error())
	}
	return a
}

// ParseAlphabet resolves an alphabet by name: bitcoin, monero, ripple,
// flickr, or custom(<58 symbols>).
func ParseAlphabet(name string) (*Alphabet, error) {
	switch name {
	case "", "default":
		return Default, nil
	case "bitcoin":
		return Bitcoin, nil
	case "monero":
		return Monero, nil
	case "ripple":
		return Ripple, nil
	case "flickr":
		return Flickr, nil
	}
	if strings.HasPrefix(name, "custom(") && strings.HasSuffix(name, ")") {
		custom := name[len("custom(") : len(name)-1]
		if len(custom) != 58 {
			return nil, fmt.Errorf("custom alphabet is %d bytes long, want 58", len(custom))
		}
		return NewAlphabet(symbols(custom))
	}
	return nil, fmt.Errorf("%q is not a known alphabet", name)
}

// Zero is the symbol that stands for a leading zero byte.
func (a *Alphabet) Zero() byte {
	return a.encode[0]
}

// Symbol returns the symbol for the digit d (0 <= d < 58).
func (a *Alphabet) Symbol(d int) byte {
	return a.encode[d]
}

// Digit returns the value of symbol c, or false if c is not in the alphabet.
func (a *Alphabet) Digit(c byte) (byte, bool) {
	if c >= 128 || a.decode[c] == absent {
		return 0, false
	}
	return a.decode[c], true
}

func (a *Alphabet) String() string {
	return string(a.encode[:])
}

func symbols(s string) (base [58]byte) {
	if copy(base[:], s) != 58 {
		panic("base58: alphabet must be 58 bytes")
	}
	return
}
