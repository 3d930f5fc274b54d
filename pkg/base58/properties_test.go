package base58

import (
	"encoding/hex"
	"math/rand"
	"testing"

	mrtron "github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

var allAlphabets = map[string]*Alphabet{
	"bitcoin": Bitcoin,
	"monero":  Monero,
	"ripple":  Ripple,
	"flickr":  Flickr,
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(58))
	for name, alpha := range allAlphabets {
		for i := 0; i < 300; i++ {
			b := randomBytes(rng, i%120)
			text := Encode(b).WithAlphabet(alpha).IntoString()
			out, err := Decode(text).WithAlphabet(alpha).IntoBytes()
			require.NoError(t, err, "%s: %x", name, b)
			require.Equal(t, b, out, "%s: %x", name, b)
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, alpha := range allAlphabets {
		for i := 0; i < 200; i++ {
			b := randomBytes(rng, i%70)
			text := Encode(b).WithAlphabet(alpha).IntoString()
			require.Equal(t, countLeading(b, 0), countLeading([]byte(text), alpha.Zero()), "%s: %x -> %s", name, b, text)
		}
	}
}

func TestBufferBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		b := randomBytes(rng, 1+i%90)
		text := Encode(b).IntoString()

		out := make([]byte, len(text))
		n, err := Encode(b).Into(Fixed(out))
		require.NoError(t, err)
		require.Equal(t, text, string(out[:n]))
		_, err = Encode(b).Into(Fixed(out[:len(text)-1]))
		require.True(t, IsError(err, BufferTooSmall), "encode %x into %d", b, len(text)-1)

		dec := make([]byte, len(b))
		n, err = Decode(text).Into(Fixed(dec))
		require.NoError(t, err)
		require.Equal(t, b, dec[:n])
		_, err = Decode(text).Into(Fixed(dec[:len(b)-1]))
		require.True(t, IsError(err, BufferTooSmall), "decode %s into %d", text, len(b)-1)
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		b := randomBytes(rng, i%60)
		ver := byte(rng.Intn(256))

		text := Encode(b).WithCheck().IntoString()
		out, err := Decode(text).WithCheck().IntoBytes()
		require.NoError(t, err)
		require.Equal(t, b, out)

		text = Encode(b).AsCB58().IntoString()
		out, err = Decode(text).AsCB58().IntoBytes()
		require.NoError(t, err)
		require.Equal(t, b, out)

		text = Encode(b).WithCheckVersion(ver).IntoString()
		out, err = Decode(text).WithCheckVersion(ver).IntoBytes()
		require.NoError(t, err)
		require.Equal(t, append([]byte{ver}, b...), out)

		text = Encode(b).AsCB58Version(ver).IntoString()
		out, err = Decode(text).AsCB58Version(ver).IntoBytes()
		require.NoError(t, err)
		require.Equal(t, append([]byte{ver}, b...), out)
	}
}

// Changing one of the last five characters moves the number by less than
// 58^5 < 2^32, which always alters the 4 checksum bytes.
func TestChecksumCorruption(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		b := randomBytes(rng, 1+i%40)
		for _, mode := range []CheckMode{Base58Check, CB58} {
			text := Encode(b).WithCheckMode(mode).IntoString()
			for pos := max(0, len(text)-5); pos < len(text); pos++ {
				corrupt := []byte(text)
				d, _ := Default.Digit(corrupt[pos])
				corrupt[pos] = Default.Symbol((int(d) + 1 + rng.Intn(57)) % 58)
				_, err := Decode(corrupt).WithCheckMode(mode).IntoBytes()
				require.True(t, IsError(err, InvalidChecksum), "%s %x at %d: %v", mode, b, pos, err)
			}
		}
	}
}

func TestCB58Layout(t *testing.T) {
	payload := []byte("hello world")
	decoded, err := Decode(Encode(payload).AsCB58().IntoString()).IntoBytes()
	require.NoError(t, err)
	require.Equal(t, payload, decoded[:len(payload)])
	sum := Checksum(CB58, payload)
	require.Equal(t, sum[:], decoded[len(payload):])

	decoded, err = Decode(Encode(payload).WithCheck().IntoString()).IntoBytes()
	require.NoError(t, err)
	sum = Checksum(Base58Check, payload)
	require.Equal(t, sum[:], decoded[len(payload):])
}

func TestAgainstMrTron(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		b := randomBytes(rng, 1+i%100)
		want := mrtron.Encode(b)
		require.Equal(t, want, Encode(b).IntoString())
		out, err := Decode(want).IntoBytes()
		require.NoError(t, err)
		require.Equal(t, b, out)
	}
}

// Test Helpers

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	// leading zeros are the interesting edge, make them common
	if n > 0 && rng.Intn(3) == 0 {
		for z := rng.Intn(n + 1); z > 0; z-- {
			b[z-1] = 0
		}
	}
	return b
}

func countLeading(b []byte, c byte) int {
	n := 0
	for n < len(b) && b[n] == c {
		n++
	}
	return n
}

func hx2b(str string) []byte {
	b, err := hex.DecodeString(str)
	if err != nil {
		panic("bad fixture: " + str)
	}
	return b
}
