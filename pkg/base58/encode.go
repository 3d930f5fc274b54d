package base58

// EncodeRequest describes a pending encode. Like DecodeRequest it is a
// plain value.
type EncodeRequest struct {
	input []byte
	alpha *Alphabet
	check check
}

// Encode sets up an encode of input using the Default alphabet.
func Encode[T ~string | ~[]byte](input T) EncodeRequest {
	return EncodeRequest{input: []byte(input), alpha: Default}
}

func (r EncodeRequest) WithAlphabet(a *Alphabet) EncodeRequest {
	r.alpha = a
	return r
}

// WithCheck appends a Base58Check checksum.
func (r EncodeRequest) WithCheck() EncodeRequest {
	r.check = check{mode: Base58Check}
	return r
}

// WithCheckVersion prefixes the payload with version and appends a
// Base58Check checksum over both.
func (r EncodeRequest) WithCheckVersion(version byte) EncodeRequest {
	r.check = check{mode: Base58Check, version: version, hasVersion: true}
	return r
}

// AsCB58 appends a CB58 checksum.
func (r EncodeRequest) AsCB58() EncodeRequest {
	r.check = check{mode: CB58}
	return r
}

// AsCB58Version prefixes the payload with version and appends a CB58
// checksum over both.
func (r EncodeRequest) AsCB58Version(version byte) EncodeRequest {
	r.check = check{mode: CB58, version: version, hasVersion: true}
	return r
}

func (r EncodeRequest) WithCheckMode(mode CheckMode) EncodeRequest {
	r.check = check{mode: mode}
	return r
}

// Into encodes through t and returns the number of symbols written.
func (r EncodeRequest) Into(t Target) (int, error) {
	var src source
	r.fill(&src)
	return t.WriteWith(MaxEncodedLen(src.len()), func(buf []byte) (int, error) {
		return encodeInto(&src, buf, r.alpha)
	})
}

// IntoString encodes into a new string.
func (r EncodeRequest) IntoString() string {
	return string(r.IntoBytes())
}

// IntoBytes encodes into a new slice.
func (r EncodeRequest) IntoBytes() []byte {
	var src source
	r.fill(&src)
	out := make([]byte, MaxEncodedLen(src.len()))
	n, err := encodeInto(&src, out, r.alpha)
	if err != nil {
		panic("base58: encode overflowed its own buffer")
	}
	return out[:n]
}

// MaxEncodedLen bounds the encoded length of n bytes. A byte carries
// log(256)/log(58) ~ 1.37 symbols, so 8 symbols per 5 bytes always fits.
func MaxEncodedLen(n int) int {
	return (n/5 + 1) * 8
}

// MaxDecodedLen bounds the decoded length of n symbols.
func MaxDecodedLen(n int) int {
	return n
}

func (r EncodeRequest) fill(src *source) {
	src.parts[1] = r.input
	if r.check.mode == NoCheck {
		return
	}
	if r.check.hasVersion {
		src.version[0] = r.check.version
		src.parts[0] = src.version[:]
	}
	src.sum = r.check.mode.sum(src.parts[0], r.input)
	src.parts[2] = src.sum[:]
}

// source is the byte sequence being encoded: optional version byte, the
// input, and the optional checksum, read as one big-endian number.
type source struct {
	parts   [3][]byte
	version [1]byte
	sum     [ChecksumLen]byte
}

func (s *source) len() int {
	return len(s.parts[0]) + len(s.parts[1]) + len(s.parts[2])
}

func (s *source) leadingZeros() int {
	n := 0
	for _, p := range s.parts {
		for _, b := range p {
			if b != 0 {
				return n
			}
			n++
		}
	}
	return n
}

// encodeInto picks the native tier for short sequences and the limb path
// for everything else.
func encodeInto(src *source, output []byte, alpha *Alphabet) (int, error) {
	if src.len() <= 8 {
		return encodeU64(src, output, alpha)
	}
	n := src.len()
	if n <= 56 {
		var limbs [16]uint32
		return encodeLimbs(src, output, alpha, limbs[:0])
	}
	return encodeLimbs(src, output, alpha, make([]uint32, 0, n*11/40+1))
}

func encodeU64(src *source, output []byte, alpha *Alphabet) (int, error) {
	var val uint64
	for _, p := range src.parts {
		for _, b := range p {
			val = val<<8 | uint64(b)
		}
	}
	size := 0
	for v := val; v > 0; v /= 58 {
		size++
	}
	zeros := src.leadingZeros()
	total := zeros + size
	if total > len(output) {
		return 0, &EncodeError{Code: BufferTooSmall}
	}
	for i := 0; i < zeros; i++ {
		output[i] = alpha.Zero()
	}
	for i := total - 1; i >= zeros; i-- {
		output[i] = alpha.encode[val%58]
		val /= 58
	}
	return total, nil
}

// encodeLimbs folds the input four bytes at a time into little-endian limbs
// that each hold five base-58 digits, then spreads every limb back out into
// single digits.
func encodeLimbs(src *source, output []byte, alpha *Alphabet, limbs []uint32) (int, error) {
	var chunk uint64
	k := 0
	for _, p := range src.parts {
		for _, b := range p {
			chunk = chunk<<8 | uint64(b)
			k++
			if k == 4 {
				limbs = mulAddDigitLimbs(limbs, 1<<32, chunk)
				chunk, k = 0, 0
			}
		}
	}
	if k > 0 {
		limbs = mulAddDigitLimbs(limbs, 1<<(8*k), chunk)
	}

	size := 0
	if len(limbs) > 0 {
		size = (len(limbs) - 1) * limbSymbols
		for top := limbs[len(limbs)-1]; top > 0; top /= 58 {
			size++
		}
	}
	zeros := src.leadingZeros()
	total := zeros + size
	if total > len(output) {
		return 0, &EncodeError{Code: BufferTooSmall}
	}
	for i := 0; i < zeros; i++ {
		output[i] = alpha.Zero()
	}
	pos := 0
	for _, l := range limbs {
		for j := 0; j < limbSymbols && pos < size; j++ {
			output[total-1-pos] = alpha.encode[l%58]
			l /= 58
			pos++
		}
	}
	return total, nil
}

// mulAddDigitLimbs sets limbs = limbs*mul + add where every limb is a
// base 58^5 digit. mul must be at most 2^32 and add below 2^32.
func mulAddDigitLimbs(limbs []uint32, mul, add uint64) []uint32 {
	carry := add
	for i, l := range limbs {
		carry += uint64(l) * mul
		limbs[i] = uint32(carry % limbRadix)
		carry /= limbRadix
	}
	for carry > 0 {
		limbs = append(limbs, uint32(carry%limbRadix))
		carry /= limbRadix
	}
	return limbs
}
