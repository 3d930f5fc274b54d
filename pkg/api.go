package giga

import (
	"github.com/dogecoinfoundation/gigabase58/pkg/doge"
	"go.uber.org/zap"
)

// API is the set of operations shared by the web API and the CLI.
type API struct {
	config   Config
	defaults Codec
	log      *zap.Logger
}

func NewAPI(config Config, log *zap.Logger) (API, error) {
	defaults, err := CodecFromConfig(config)
	if err != nil {
		return API{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return API{config: config, defaults: defaults, log: log}, nil
}

func (a API) Defaults() Codec {
	return a.defaults
}

// CodecOptions are the per-request overrides. Empty fields fall back to
// the configured defaults; Version only falls back when Check does.
type CodecOptions struct {
	Alphabet string `json:"alphabet"`
	Check    string `json:"check"`
	Version  *int   `json:"version,omitempty"`
}

func (a API) Codec(o CodecOptions) (Codec, error) {
	if o.Alphabet == "" && o.Check == "" && o.Version == nil {
		return a.defaults, nil
	}
	alphabet := o.Alphabet
	if alphabet == "" {
		alphabet = a.config.Codec.Alphabet
	}
	check, version := o.Check, -1
	if check == "" {
		check = a.config.Codec.Check
		v, err := ParseVersion(a.config.Codec.Version)
		if err != nil {
			return Codec{}, err
		}
		version = v
	}
	if o.Version != nil {
		version = *o.Version
	}
	return NewCodec(alphabet, check, version)
}

type EncodeRequest struct {
	Hex string `json:"hex"`
	CodecOptions
}

type EncodeResponse struct {
	Text string `json:"text"`
}

func (a API) Encode(req EncodeRequest) (EncodeResponse, error) {
	codec, err := a.Codec(req.CodecOptions)
	if err != nil {
		return EncodeResponse{}, err
	}
	payload, err := doge.HexDecode(req.Hex)
	if err != nil {
		return EncodeResponse{}, NewErr(BadRequest, "hex: %v", err)
	}
	text := codec.Encode(payload)
	a.log.Debug("encode", zap.Stringer("codec", codec), zap.Int("bytes", len(payload)), zap.Int("chars", len(text)))
	return EncodeResponse{Text: text}, nil
}

type DecodeRequest struct {
	Text string `json:"text"`
	CodecOptions
}

type DecodeResponse struct {
	Hex string `json:"hex"`
}

func (a API) Decode(req DecodeRequest) (DecodeResponse, error) {
	codec, err := a.Codec(req.CodecOptions)
	if err != nil {
		return DecodeResponse{}, err
	}
	payload, err := codec.Decode(req.Text)
	if err != nil {
		return DecodeResponse{}, err
	}
	a.log.Debug("decode", zap.Stringer("codec", codec), zap.Int("chars", len(req.Text)), zap.Int("bytes", len(payload)))
	return DecodeResponse{Hex: doge.HexEncode(payload)}, nil
}

type AddressResponse struct {
	Address doge.Address `json:"address"`
	Chain   string       `json:"chain"`
}

// KeyAddress derives the P2PKH address of a public key (hex, compressed or
// not), a WIF private key or a BIP32 extended key. WIF and extended keys
// carry their own chain; chainName may be empty then, and must agree with
// it otherwise.
func (a API) KeyAddress(chainName string, key string) (AddressResponse, error) {
	pub, chain, extended, err := parseKey(key)
	if err != nil {
		return AddressResponse{}, err
	}
	if chainName != "" || chain == nil {
		named, err := doge.ChainByName(chainName)
		if err != nil {
			return AddressResponse{}, NewErr(NotFound, "%v", err)
		}
		if extended && chain.SharesBip32Versions(named) {
			chain = named
		}
		if chain != nil && chain != named {
			return AddressResponse{}, NewErr(BadRequest, "key is for %s, not %s", chain.Name(), named.Name())
		}
		chain = named
	}
	addr, err := doge.PubKeyToP2PKH(pub, chain)
	if err != nil {
		return AddressResponse{}, NewErr(BadRequest, "%v", err)
	}
	return AddressResponse{Address: addr, Chain: chain.Name()}, nil
}

// parseKey returns the public key and, for WIF and extended keys, the
// chain the key was encoded for.
func parseKey(key string) (pub []byte, chain *doge.ChainParams, extended bool, err error) {
	if doge.IsValidHex(key) {
		pub, _ = doge.HexDecode(key)
		return pub, nil, false, nil
	}
	if ext, err := doge.DecodeBip32WIF(key, nil); err == nil {
		defer ext.Clear()
		pub, err = ext.GetECPubKey()
		if err != nil {
			return nil, nil, false, NewErr(BadRequest, "%v", err)
		}
		return pub, ext.Chain(), true, nil
	}
	priv, chain, compressed, err := doge.DecodeECPrivKeyWIF(key)
	if err != nil {
		return nil, nil, false, NewErr(BadRequest, "key is not a hex public key, WIF private key or extended key: %v", err)
	}
	defer clear(priv)
	if !compressed {
		return nil, nil, false, NewErr(BadRequest, "uncompressed WIF keys are not supported")
	}
	return doge.ECPubKeyFromECPrivKey(priv), chain, false, nil
}

type ScriptResponse struct {
	Type     doge.ScriptType `json:"type"`
	Address  doge.Address    `json:"address,omitempty"`
	Hash     string          `json:"hash,omitempty"`     // P2PKH and P2SH
	Required int             `json:"required,omitempty"` // signatures needed
	Keys     int             `json:"keys,omitempty"`     // P2PK and multisig
	Chain    string          `json:"chain"`
}

// ScriptAddress classifies a hex ScriptPubKey and returns its address, if
// the script type has one.
func (a API) ScriptAddress(chainName string, scriptHex string) (ScriptResponse, error) {
	chain, err := doge.ChainByName(chainName)
	if err != nil {
		return ScriptResponse{}, NewErr(NotFound, "%v", err)
	}
	script, err := doge.HexDecode(scriptHex)
	if err != nil {
		return ScriptResponse{}, NewErr(BadRequest, "script: %v", err)
	}
	class := doge.ClassifyScript(script, chain)
	return ScriptResponse{
		Type:     class.Type,
		Address:  class.Address,
		Hash:     doge.HexEncode(class.Hash),
		Required: class.Required,
		Keys:     len(class.PubKeys),
		Chain:    chain.Name(),
	}, nil
}
