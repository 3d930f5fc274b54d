package base58

import "math/bits"

// DecodeRequest describes a pending decode. It is a plain value: every
// With* method returns a modified copy.
type DecodeRequest struct {
	input []byte
	alpha *Alphabet
	check check
}

// Decode sets up a decode of input using the Default alphabet.
//
// Passing a []byte avoids the copy a string conversion makes.
func Decode[T ~string | ~[]byte](input T) DecodeRequest {
	return DecodeRequest{input: []byte(input), alpha: Default}
}

func (r DecodeRequest) WithAlphabet(a *Alphabet) DecodeRequest {
	r.alpha = a
	return r
}

// WithCheck expects and verifies a Base58Check checksum.
func (r DecodeRequest) WithCheck() DecodeRequest {
	r.check = check{mode: Base58Check}
	return r
}

// WithCheckVersion is WithCheck that also requires the first payload byte
// to be version.
func (r DecodeRequest) WithCheckVersion(version byte) DecodeRequest {
	r.check = check{mode: Base58Check, version: version, hasVersion: true}
	return r
}

// AsCB58 expects and verifies a CB58 checksum.
func (r DecodeRequest) AsCB58() DecodeRequest {
	r.check = check{mode: CB58}
	return r
}

// AsCB58Version is AsCB58 that also requires the first payload byte to be
// version.
func (r DecodeRequest) AsCB58Version(version byte) DecodeRequest {
	r.check = check{mode: CB58, version: version, hasVersion: true}
	return r
}

// WithCheckMode selects the checksum framing by value, clearing any
// expected version.
func (r DecodeRequest) WithCheckMode(mode CheckMode) DecodeRequest {
	r.check = check{mode: mode}
	return r
}

// Into decodes through t and returns the number of payload bytes written.
// With a checksum mode the target must also have room for the 4 checksum
// bytes, which are not counted in the result. Text targets are not
// accepted: decoded output is binary.
func (r DecodeRequest) Into(t ByteTarget) (int, error) {
	return t.WriteWith(MaxDecodedLen(len(r.input)), func(buf []byte) (int, error) {
		n, err := decodeInto(r.input, buf, r.alpha)
		if err != nil || r.check.mode == NoCheck {
			return n, err
		}
		return r.check.verify(buf[:n])
	})
}

// IntoBytes decodes into a new slice.
func (r DecodeRequest) IntoBytes() ([]byte, error) {
	out := make([]byte, 0, len(r.input))
	if _, err := r.Into(Growable(&out)); err != nil {
		return nil, err
	}
	return out, nil
}

const (
	maxU64Symbols   = 10 // 58^10 < 2^64
	maxU128Symbols  = 21 // 58^21 < 2^128
	maxStackSymbols = 43 // 58^43 < 2^256, fits [8]uint32
	limbSymbols     = 5  // 58^5 < 2^32
	limbRadix       = 58 * 58 * 58 * 58 * 58
)

// decodeInto picks an arithmetic tier by input length. All tiers produce
// the same bytes and the same first error as decodeReference.
func decodeInto(input, output []byte, alpha *Alphabet) (int, error) {
	switch {
	case len(input) <= maxU64Symbols:
		return decodeU64(input, output, alpha)
	case len(input) <= maxU128Symbols:
		return decodeU128(input, output, alpha)
	case len(input) <= maxStackSymbols:
		var limbs [8]uint32
		return decodeLimbs(input, output, alpha, limbs[:0])
	default:
		return decodeLimbs(input, output, alpha, make([]uint32, 0, len(input)*733/4000+1))
	}
}

// decodeReference folds one symbol at a time into a little-endian byte
// accumulator held in output, then reverses it.
func decodeReference(input, output []byte, alpha *Alphabet) (int, error) {
	index := 0
	for i, c := range input {
		d, ok := alpha.Digit(c)
		if !ok {
			return 0, errInvalidCharacter(c, i)
		}
		val := uint(d)
		for j := range output[:index] {
			val += uint(output[j]) * 58
			output[j] = byte(val)
			val >>= 8
		}
		for val > 0 {
			if index >= len(output) {
				return 0, errBufferTooSmall()
			}
			output[index] = byte(val)
			index++
			val >>= 8
		}
	}
	for _, c := range input {
		if c != alpha.Zero() {
			break
		}
		if index >= len(output) {
			return 0, errBufferTooSmall()
		}
		output[index] = 0
		index++
	}
	reverse(output[:index])
	return index, nil
}

func decodeU64(input, output []byte, alpha *Alphabet) (int, error) {
	var val uint64
	for i, c := range input {
		d, ok := alpha.Digit(c)
		if !ok {
			if byteLen64(val) > len(output) {
				return 0, errBufferTooSmall()
			}
			return 0, errInvalidCharacter(c, i)
		}
		val = val*58 + uint64(d)
	}
	zeros := leadingSymbols(input, alpha.Zero())
	total := zeros + byteLen64(val)
	if total > len(output) {
		return 0, errBufferTooSmall()
	}
	clear(output[:zeros])
	for i := total - 1; i >= zeros; i-- {
		output[i] = byte(val)
		val >>= 8
	}
	return total, nil
}

func decodeU128(input, output []byte, alpha *Alphabet) (int, error) {
	var hi, lo uint64
	for i, c := range input {
		d, ok := alpha.Digit(c)
		if !ok {
			if byteLen128(hi, lo) > len(output) {
				return 0, errBufferTooSmall()
			}
			return 0, errInvalidCharacter(c, i)
		}
		carry, prod := bits.Mul64(lo, 58)
		hi = hi*58 + carry
		lo, carry = bits.Add64(prod, uint64(d), 0)
		hi += carry
	}
	size := byteLen128(hi, lo)
	zeros := leadingSymbols(input, alpha.Zero())
	total := zeros + size
	if total > len(output) {
		return 0, errBufferTooSmall()
	}
	clear(output[:zeros])
	for i := total - 1; i >= zeros; i-- {
		output[i] = byte(lo)
		lo = lo>>8 | hi<<56
		hi >>= 8
	}
	return total, nil
}

// decodeLimbs gathers up to five symbols into one multiplier pass over
// little-endian 32-bit limbs.
func decodeLimbs(input, output []byte, alpha *Alphabet, limbs []uint32) (int, error) {
	var group, mul uint64 = 0, 1
	for i, c := range input {
		d, ok := alpha.Digit(c)
		if !ok {
			limbs = mulAddLimbs(limbs, mul, group)
			if limbsByteLen(limbs) > len(output) {
				return 0, errBufferTooSmall()
			}
			return 0, errInvalidCharacter(c, i)
		}
		group = group*58 + uint64(d)
		mul *= 58
		if mul == limbRadix {
			limbs = mulAddLimbs(limbs, mul, group)
			group, mul = 0, 1
		}
	}
	if mul > 1 {
		limbs = mulAddLimbs(limbs, mul, group)
	}
	size := limbsByteLen(limbs)
	zeros := leadingSymbols(input, alpha.Zero())
	total := zeros + size
	if total > len(output) {
		return 0, errBufferTooSmall()
	}
	clear(output[:zeros])
	for k := 0; k < size; k++ {
		output[total-1-k] = byte(limbs[k/4] >> (8 * (k % 4)))
	}
	return total, nil
}

// mulAddLimbs sets limbs = limbs*mul + add, growing as needed. mul must be
// at most 58^5 and add below 2^32.
func mulAddLimbs(limbs []uint32, mul, add uint64) []uint32 {
	carry := add
	for i, l := range limbs {
		carry += uint64(l) * mul
		limbs[i] = uint32(carry)
		carry >>= 32
	}
	for carry > 0 {
		limbs = append(limbs, uint32(carry))
		carry >>= 32
	}
	return limbs
}

func limbsByteLen(limbs []uint32) int {
	if len(limbs) == 0 {
		return 0
	}
	return (len(limbs)-1)*4 + (bits.Len32(limbs[len(limbs)-1])+7)/8
}

func byteLen64(v uint64) int {
	return (bits.Len64(v) + 7) / 8
}

func byteLen128(hi, lo uint64) int {
	if hi != 0 {
		return 8 + byteLen64(hi)
	}
	return byteLen64(lo)
}

func leadingSymbols(input []byte, zero byte) int {
	n := 0
	for n < len(input) && input[n] == zero {
		n++
	}
	return n
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
