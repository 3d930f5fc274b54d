package base58

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeFunc func(input, output []byte, alpha *Alphabet) (int, error)

func decodeTiers(n int) map[string]decodeFunc {
	tiers := map[string]decodeFunc{
		"dispatch": decodeInto,
		"limbs": func(input, output []byte, alpha *Alphabet) (int, error) {
			return decodeLimbs(input, output, alpha, nil)
		},
	}
	if n <= maxU64Symbols {
		tiers["u64"] = decodeU64
	}
	if n <= maxU128Symbols {
		tiers["u128"] = decodeU128
	}
	return tiers
}

// Every tier must match the one-byte-at-a-time fold, for output and for the
// first error reported, whatever the destination size.
func TestDecodeTiersMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n <= 90; n++ {
		for iter := 0; iter < 20; iter++ {
			input := randomText(rng, Bitcoin, n)
			if n > 0 && rng.Intn(4) == 0 {
				// an invalid symbol somewhere
				input[rng.Intn(n)] = "0OIl!\xc3"[rng.Intn(6)]
			}
			for _, size := range []int{n, n / 2, rng.Intn(n + 1)} {
				want := make([]byte, size)
				wantN, wantErr := decodeReference(input, want, Bitcoin)
				for name, tier := range decodeTiers(n) {
					got := make([]byte, size)
					gotN, gotErr := tier(input, got, Bitcoin)
					require.Equal(t, wantErr, gotErr, "%s: %q into %d", name, input, size)
					if wantErr == nil {
						require.Equal(t, wantN, gotN, "%s: %q", name, input)
						require.Equal(t, want[:wantN], got[:gotN], "%s: %q", name, input)
					}
				}
			}
		}
	}
}

func TestDecodeTiersLeaveTailUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for n := 1; n <= 60; n++ {
		input := randomText(rng, Flickr, n)
		for name, tier := range decodeTiers(n) {
			out := make([]byte, n+3)
			for i := range out {
				out[i] = 0xaa
			}
			written, err := tier(input, out, Flickr)
			require.NoError(t, err)
			for _, b := range out[written:] {
				require.Equal(t, byte(0xaa), b, "%s wrote past %d", name, written)
			}
		}
	}
}

func TestEncodeTiersMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for n := 0; n <= 80; n++ {
		for iter := 0; iter < 20; iter++ {
			input := randomBytes(rng, n)
			src := source{parts: [3][]byte{nil, input, nil}}
			for _, size := range []int{MaxEncodedLen(n), n, rng.Intn(MaxEncodedLen(n))} {
				want := make([]byte, size)
				wantN, wantErr := encodeReference(input, want, Ripple)

				got := make([]byte, size)
				gotN, gotErr := encodeLimbs(&src, got, Ripple, nil)
				require.Equal(t, wantErr, gotErr, "limbs %x into %d", input, size)
				require.Equal(t, string(want[:wantN]), string(got[:gotN]), "limbs %x", input)

				gotN, gotErr = encodeInto(&src, got, Ripple)
				require.Equal(t, wantErr, gotErr, "dispatch %x into %d", input, size)
				require.Equal(t, string(want[:wantN]), string(got[:gotN]), "dispatch %x", input)

				if n <= 8 {
					gotN, gotErr = encodeU64(&src, got, Ripple)
					require.Equal(t, wantErr, gotErr, "u64 %x into %d", input, size)
					require.Equal(t, string(want[:wantN]), string(got[:gotN]), "u64 %x", input)
				}
			}
		}
	}
}

func TestEncodeSourceSplitsLikeConcatenation(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 100; i++ {
		a, b, c := randomBytes(rng, i%3), randomBytes(rng, i%50), randomBytes(rng, i%5)
		joined := append(append(append([]byte{}, a...), b...), c...)
		src := source{parts: [3][]byte{a, b, c}}

		want := make([]byte, MaxEncodedLen(len(joined)))
		wantN, err := encodeReference(joined, want, Bitcoin)
		require.NoError(t, err)
		got := make([]byte, MaxEncodedLen(len(joined)))
		gotN, err := encodeInto(&src, got, Bitcoin)
		require.NoError(t, err)
		require.Equal(t, string(want[:wantN]), string(got[:gotN]))
	}
}

// encodeReference is the byte-at-a-time fold: multiply the little-endian
// digit accumulator by 256 and add each input byte.
func encodeReference(input, output []byte, alpha *Alphabet) (int, error) {
	index := 0
	for _, b := range input {
		carry := uint(b)
		for j := range output[:index] {
			carry += uint(output[j]) << 8
			output[j] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			if index >= len(output) {
				return 0, &EncodeError{Code: BufferTooSmall}
			}
			output[index] = byte(carry % 58)
			index++
			carry /= 58
		}
	}
	for _, b := range input {
		if b != 0 {
			break
		}
		if index >= len(output) {
			return 0, &EncodeError{Code: BufferTooSmall}
		}
		output[index] = 0
		index++
	}
	for i, d := range output[:index] {
		output[i] = alpha.Symbol(int(d))
	}
	reverse(output[:index])
	return index, nil
}

func randomText(rng *rand.Rand, alpha *Alphabet, n int) []byte {
	text := make([]byte, n)
	zeros := 0
	if n > 0 && rng.Intn(3) == 0 {
		zeros = rng.Intn(n + 1)
	}
	for i := range text {
		if i < zeros {
			text[i] = alpha.Zero()
		} else {
			text[i] = alpha.Symbol(rng.Intn(58))
		}
	}
	return text
}
