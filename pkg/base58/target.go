package base58

import "unicode/utf8"

// Target is a destination for encoded or decoded output.
//
// WriteWith makes at least max bytes available (or whatever a fixed buffer
// holds), calls f with them, and returns the number of bytes f wrote. f must
// only write to the front of the slice and report how much it wrote.
//
// Every target accepts encoded text. Only a ByteTarget accepts decoded
// binary output.
type Target interface {
	WriteWith(max int, f func(buf []byte) (int, error)) (int, error)
}

// ByteTarget is a Target that can hold arbitrary bytes.
type ByteTarget interface {
	Target
	holdsBytes()
}

// Growable returns a target that appends to *b. On error *b is left as it
// was before the call.
func Growable(b *[]byte) ByteTarget {
	return growable{b}
}

// GrowableString returns a text target that appends to *s.
func GrowableString(s *string) Target {
	return growableString{s}
}

// Fixed returns a target writing from the start of b. b is never resized;
// bytes past the written length are left untouched on success.
func Fixed(b []byte) ByteTarget {
	return fixed(b)
}

// Text returns a fixed target over a UTF-8 text buffer. Whatever happens
// during the write, b holds valid UTF-8 afterwards: any sequence left broken
// (for example a multi-byte character partly overwritten) is zeroed.
func Text(b []byte) Target {
	return text(b)
}

type growable struct {
	b *[]byte
}

func (g growable) WriteWith(max int, f func([]byte) (int, error)) (n int, err error) {
	buf := *g.b
	original := len(buf)
	if cap(buf)-original < max {
		grown := make([]byte, original, original+max)
		copy(grown, buf)
		buf = grown
	}
	buf = buf[:original+max]
	clear(buf[original:])
	defer func() {
		if err != nil {
			n = 0
		}
		*g.b = buf[:original+n]
	}()
	return f(buf[original:])
}

func (growable) holdsBytes() {}

type growableString struct {
	s *string
}

func (g growableString) WriteWith(max int, f func([]byte) (int, error)) (int, error) {
	buf := make([]byte, max)
	n, err := f(buf)
	if err != nil {
		return 0, err
	}
	*g.s += string(buf[:n])
	return n, nil
}

type fixed []byte

func (b fixed) WriteWith(max int, f func([]byte) (int, error)) (int, error) {
	return f(b)
}

func (fixed) holdsBytes() {}

type text []byte

func (b text) WriteWith(max int, f func([]byte) (int, error)) (int, error) {
	defer sanitizeUTF8(b)
	return f(b)
}

// sanitizeUTF8 zeroes every byte that is not part of a valid UTF-8
// sequence.
func sanitizeUTF8(b []byte) {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			b[i] = 0
		}
		i += size
	}
}
