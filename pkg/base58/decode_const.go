package base58

// ConstDecodeRequest is a decode for package-level constant derivations,
// where a malformed literal is a programming error:
//
//	var genesis = base58.DecodeConst("...").IntoArray(32)
//
// It never returns an error; it panics instead.
type ConstDecodeRequest struct {
	input string
	alpha *Alphabet
}

func DecodeConst(input string) ConstDecodeRequest {
	return ConstDecodeRequest{input: input, alpha: Default}
}

func (r ConstDecodeRequest) WithAlphabet(a *Alphabet) ConstDecodeRequest {
	r.alpha = a
	return r
}

// IntoArray decodes into a new n-byte array. The decoded bytes come first
// and the rest is zero. It panics on a non-ASCII or invalid character, or
// when the decoded value needs more than n bytes.
func (r ConstDecodeRequest) IntoArray(n int) []byte {
	out := make([]byte, n)
	if _, err := decodeReference([]byte(r.input), out, r.alpha); err != nil {
		panic("base58: " + err.Error())
	}
	return out
}
