package main

import (
	"bytes"
	"io"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"github.com/pkg/errors"
)

// runCodec encodes all of in as base58 text, or with decode set, decodes
// the whitespace-trimmed text of in back to raw bytes.
func runCodec(in io.Reader, out io.Writer, codec giga.Codec, decode bool) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	var output []byte
	if decode {
		output, err = codec.Decode(string(bytes.TrimSpace(input)))
		if err != nil {
			return errors.Wrap(err, "decode")
		}
	} else {
		output = []byte(codec.Encode(input))
	}
	_, err = out.Write(output)
	return errors.Wrap(err, "writing output")
}
