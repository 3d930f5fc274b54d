package giga

import (
	"fmt"
	"strconv"

	"github.com/dogecoinfoundation/gigabase58/pkg/base58"
)

// Codec is a resolved set of encoding options: alphabet, checksum framing
// and optional version byte.
type Codec struct {
	Alphabet *base58.Alphabet
	Check    base58.CheckMode
	Version  int // -1 when there is no version byte
}

func NewCodec(alphabet string, check string, version int) (Codec, error) {
	alpha, err := base58.ParseAlphabet(alphabet)
	if err != nil {
		return Codec{}, NewErr(BadRequest, "alphabet: %v", err)
	}
	mode, ok := base58.ParseCheckMode(check)
	if !ok {
		return Codec{}, NewErr(BadRequest, "check: %q is not one of none, check, cb58", check)
	}
	if version < -1 || version > 255 {
		return Codec{}, NewErr(BadRequest, "version: %d is not a byte", version)
	}
	if version >= 0 && mode == base58.NoCheck {
		return Codec{}, NewErr(BadRequest, "version: a version byte needs check or cb58")
	}
	return Codec{Alphabet: alpha, Check: mode, Version: version}, nil
}

func CodecFromConfig(config Config) (Codec, error) {
	version, err := ParseVersion(config.Codec.Version)
	if err != nil {
		return Codec{}, err
	}
	return NewCodec(config.Codec.Alphabet, config.Codec.Check, version)
}

// ParseVersion reads a version byte in decimal or 0x hex; empty means none
// and returns -1.
func ParseVersion(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, NewErr(BadRequest, "version: %q is not a byte", s)
	}
	return int(v), nil
}

func (c Codec) Encode(payload []byte) string {
	r := base58.Encode(payload).WithAlphabet(c.Alphabet)
	switch {
	case c.Version >= 0 && c.Check == base58.CB58:
		r = r.AsCB58Version(byte(c.Version))
	case c.Version >= 0:
		r = r.WithCheckVersion(byte(c.Version))
	default:
		r = r.WithCheckMode(c.Check)
	}
	return r.IntoString()
}

// Decode returns the payload, including the version byte if there is one.
func (c Codec) Decode(text string) ([]byte, error) {
	r := base58.Decode(text).WithAlphabet(c.Alphabet)
	switch {
	case c.Version >= 0 && c.Check == base58.CB58:
		r = r.AsCB58Version(byte(c.Version))
	case c.Version >= 0:
		r = r.WithCheckVersion(byte(c.Version))
	default:
		r = r.WithCheckMode(c.Check)
	}
	data, err := r.IntoBytes()
	return data, codecErr(err)
}

func (c Codec) String() string {
	if c.Version >= 0 {
		return fmt.Sprintf("%s/%s/%#02x", alphabetName(c.Alphabet), c.Check, c.Version)
	}
	return fmt.Sprintf("%s/%s", alphabetName(c.Alphabet), c.Check)
}

func alphabetName(a *base58.Alphabet) string {
	switch a {
	case base58.Bitcoin:
		return "bitcoin"
	case base58.Monero:
		return "monero"
	case base58.Ripple:
		return "ripple"
	case base58.Flickr:
		return "flickr"
	}
	return "custom(" + a.String() + ")"
}
