package main

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"strconv"
	"testing"
	"time"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	cases := []struct {
		args []string
		text string
	}{
		{nil, "StV1DL6CwTryKyV"},
		{[]string{"-a", "ripple"}, "StVrDLaUATiyKyV"},
		{[]string{"--check"}, "3vQB7B6MrGQZaxCuFg4oh"},
		{[]string{"--cb58"}, "3vQB7B6MrGQZaxCvEpwu2"},
		{[]string{"--cb58", "--check-version", "5"}, "fjQUxjVufxYVKwAVd5RCR"},
	}
	for _, tc := range cases {
		out, err := run(t, "hello world", tc.args...)
		require.NoError(t, err, "%v", tc.args)
		require.Equal(t, tc.text, out, "%v", tc.args)

		out, err = run(t, "  "+tc.text+"\n", append(tc.args, "-d")...)
		require.NoError(t, err, "%v", tc.args)
		if len(tc.args) == 3 {
			require.Equal(t, "\x05hello world", out)
		} else {
			require.Equal(t, "hello world", out, "%v", tc.args)
		}
	}
}

func TestBinaryInput(t *testing.T) {
	out, err := run(t, "\x00\x00\xff")
	require.NoError(t, err)
	require.Equal(t, "115Q", out)
	out, err = run(t, "115Q", "--decode")
	require.NoError(t, err)
	require.Equal(t, "\x00\x00\xff", out)
}

func TestCLIErrors(t *testing.T) {
	_, err := run(t, "hello world", "-d")
	require.ErrorContains(t, err, "decode: provided string contained invalid character 'l' at byte 2")
	require.True(t, giga.IsError(err, giga.InvalidEncoding))

	_, err = run(t, "x", "--check", "--cb58")
	require.ErrorContains(t, err, "mutually exclusive")

	_, err = run(t, "x", "--check-version", "3")
	require.ErrorContains(t, err, "a version byte needs check or cb58")

	_, err = run(t, "x", "-a", "custom(abc)")
	require.ErrorContains(t, err, "custom alphabet is 3 bytes long")

	_, err = run(t, "3vQB7B6MrGQZaxCuFg4oi", "-d", "--check")
	require.True(t, giga.IsError(err, giga.InvalidChecksum))
}

func TestAddressCommand(t *testing.T) {
	pub := "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"
	out, err := run(t, "", "address", pub)
	require.NoError(t, err)
	require.Equal(t, "DTW59qZRbzM8UwVSUAw5j12PE1HQgSDSXB\n", out)

	out, err = run(t, "", "address", "--chain", "bitcoin", pub)
	require.NoError(t, err)
	require.Equal(t, "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs\n", out)

	out, err = run(t, "", "address", "QP2GKa5kuU2i2G3xJMH5KL9NErbVYGxMoRiF5trrJJvHzrJ2Ebp7")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "D"), out)

	_, err = run(t, "", "address", "--chain", "ltc", pub)
	require.True(t, giga.IsError(err, giga.NotFound))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gigabase58.toml")
	conf := "[Codec]\nAlphabet = \"flickr\"\nCheck = \"check\"\nVersion = \"0x1e\"\n\n[WebAPI]\nPort = \"9999\"\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o600))

	out, err := run(t, "", "--config", path, "--webapi-bind", "0.0.0.0", "showconf")
	require.NoError(t, err)
	var shown giga.Config
	require.NoError(t, json.Unmarshal([]byte(strings.ReplaceAll(out, "\n>", "\n")), &shown))
	require.Equal(t, "flickr", shown.Codec.Alphabet)
	require.Equal(t, "0x1e", shown.Codec.Version)
	require.Equal(t, "9999", shown.WebAPI.Port)
	require.Equal(t, "0.0.0.0", shown.WebAPI.Bind)
	require.Equal(t, 256, shown.WebAPI.QRSize)

	// the file's version byte goes with its checksum mode
	out, err = run(t, "\xf5\x4a", "--config", path)
	require.NoError(t, err)
	dec, err := run(t, out, "--config", path, "-d")
	require.NoError(t, err)
	require.Equal(t, "\x1e\xf5\x4a", dec)

	t.Setenv("GIGA58_ALPHABET", "ripple")
	t.Setenv("GIGA58_CODEC_CHECK", "none")
	out, err = run(t, "hello world", "--config", path, "--check-version=-1")
	require.NoError(t, err)
	require.Equal(t, "StVrDLaUATiyKyV", out)
}

func TestScriptCommand(t *testing.T) {
	out, err := run(t, "", "script", "76a91454f6fb64f14b756d118a96a57a2f9ebf4b4708fe88ac")
	require.NoError(t, err)
	require.Equal(t, "p2pkh DCtMAyy9w2QCrWMRdZ28Kn7GwMfCEp2irP\n", out)

	out, err = run(t, "", "script", "--chain", "bitcoin", "a9149feb23c522d5404c1974b761b4079d06e485325387")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "p2sh 3"), out)
}

func TestServerReturnsWhenPortIsBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	conf := giga.TestConfig()
	conf.WebAPI.Bind = "127.0.0.1"
	conf.WebAPI.Port = strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- Server(conf) }()
	select {
	case err := <-done:
		require.ErrorContains(t, err, "WebAPI failed to start")
	case <-time.After(5 * time.Second):
		t.Fatal("Server kept running after the listen failed")
	}
}
