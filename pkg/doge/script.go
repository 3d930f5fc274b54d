package doge

import "encoding/binary"

// ScriptType names a standard ScriptPubKey template.
type ScriptType string

const (
	ScriptTypeP2PK     ScriptType = "p2pk"     // TX_PUBKEY (in Core)
	ScriptTypeP2PKH    ScriptType = "p2pkh"    // TX_PUBKEYHASH
	ScriptTypeP2SH     ScriptType = "p2sh"     // TX_SCRIPTHASH
	ScriptTypeMultiSig ScriptType = "multisig" // TX_MULTISIG
	ScriptTypeNullData ScriptType = "nulldata" // TX_NULL_DATA
	ScriptTypeCustom   ScriptType = "custom"   // TX_NONSTANDARD
)

const (
	OP_0             = 0x00
	OP_PUSHDATA1     = 0x4c
	OP_PUSHDATA2     = 0x4d
	OP_PUSHDATA4     = 0x4e
	OP_1             = 0x51
	OP_16            = 0x60
	OP_RETURN        = 0x6a
	OP_DUP           = 0x76
	OP_EQUAL         = 0x87
	OP_EQUALVERIFY   = 0x88
	OP_HASH160       = 0xa9
	OP_CHECKSIG      = 0xac
	OP_CHECKMULTISIG = 0xae
)

// ScriptClass is what ClassifyScript learns about a ScriptPubKey.
type ScriptClass struct {
	Type     ScriptType
	Address  Address  // P2PKH and P2SH only
	Hash     []byte   // pubkey hash (P2PKH) or script hash (P2SH)
	PubKeys  [][]byte // P2PK and multisig
	Required int      // signatures needed to spend; 0 when unknown
}

// ClassifyScript matches script against the standard templates. Anything
// that does not parse, or parses but matches no template, is custom.
func ClassifyScript(script []byte, chain *ChainParams) ScriptClass {
	ops, ok := scriptOps(script)
	if !ok {
		return ScriptClass{Type: ScriptTypeCustom}
	}
	switch {
	case matchOps(ops, OP_DUP, OP_HASH160, 20, OP_EQUALVERIFY, OP_CHECKSIG):
		hash := ops[2].data
		return ScriptClass{
			Type:     ScriptTypeP2PKH,
			Address:  Hash160toAddress(hash, chain.p2pkh_address_prefix),
			Hash:     hash,
			Required: 1,
		}
	case matchOps(ops, OP_HASH160, 20, OP_EQUAL):
		hash := ops[1].data
		return ScriptClass{
			Type:    ScriptTypeP2SH,
			Address: Hash160toAddress(hash, chain.p2sh_address_prefix),
			Hash:    hash,
		}
	case len(ops) == 2 && ops[1].op == OP_CHECKSIG && isPubKey(ops[0].data):
		return ScriptClass{Type: ScriptTypeP2PK, PubKeys: [][]byte{ops[0].data}, Required: 1}
	case len(ops) > 0 && ops[0].op == OP_RETURN && pushOnly(ops[1:]):
		return ScriptClass{Type: ScriptTypeNullData}
	}
	if class, ok := matchMultiSig(ops); ok {
		return class
	}
	return ScriptClass{Type: ScriptTypeCustom}
}

// OP_m <pubkey>...n OP_n OP_CHECKMULTISIG with 1 <= m <= n <= 16.
func matchMultiSig(ops []scriptOp) (ScriptClass, bool) {
	if len(ops) < 4 || ops[len(ops)-1].op != OP_CHECKMULTISIG {
		return ScriptClass{}, false
	}
	m, n := smallInt(ops[0].op), smallInt(ops[len(ops)-2].op)
	keys := ops[1 : len(ops)-2]
	if m < 1 || n < m || n != len(keys) {
		return ScriptClass{}, false
	}
	pubkeys := make([][]byte, 0, n)
	for _, k := range keys {
		if !isPubKey(k.data) {
			return ScriptClass{}, false
		}
		pubkeys = append(pubkeys, k.data)
	}
	return ScriptClass{Type: ScriptTypeMultiSig, PubKeys: pubkeys, Required: m}, true
}

type scriptOp struct {
	op   byte
	data []byte // pushed bytes, for push opcodes
}

// scriptOps splits script into opcodes. ok is false if a push runs past
// the end of the script.
func scriptOps(script []byte) (ops []scriptOp, ok bool) {
	for i := 0; i < len(script); {
		op := script[i]
		i++
		size := -1
		switch {
		case op > OP_0 && op < OP_PUSHDATA1:
			size = int(op)
		case op == OP_PUSHDATA1 && i+1 <= len(script):
			size, i = int(script[i]), i+1
		case op == OP_PUSHDATA2 && i+2 <= len(script):
			size, i = int(binary.LittleEndian.Uint16(script[i:])), i+2
		case op == OP_PUSHDATA4 && i+4 <= len(script):
			n := binary.LittleEndian.Uint32(script[i:])
			if uint64(n) > uint64(len(script)) {
				return nil, false
			}
			size, i = int(n), i+4
		case op >= OP_PUSHDATA1 && op <= OP_PUSHDATA4:
			return nil, false
		}
		if size < 0 {
			ops = append(ops, scriptOp{op: op})
			continue
		}
		if size > len(script)-i {
			return nil, false
		}
		ops = append(ops, scriptOp{op: op, data: script[i : i+size]})
		i += size
	}
	return ops, true
}

// matchOps compares ops against a template where a value below
// OP_PUSHDATA1 stands for a direct push of exactly that many bytes.
func matchOps(ops []scriptOp, template ...byte) bool {
	if len(ops) != len(template) {
		return false
	}
	for i, want := range template {
		if ops[i].op != want {
			return false
		}
		if want > OP_0 && want < OP_PUSHDATA1 && len(ops[i].data) != int(want) {
			return false
		}
	}
	return true
}

// isPubKey checks the size against the header byte, as Core does.
func isPubKey(b []byte) bool {
	switch {
	case len(b) == ECPubKeyCompressedLen:
		return b[0] == 0x02 || b[0] == 0x03
	case len(b) == ECPubKeyUncompressedLen:
		return b[0] == 0x04 || b[0] == 0x06 || b[0] == 0x07
	}
	return false
}

func pushOnly(ops []scriptOp) bool {
	for _, o := range ops {
		if o.op > OP_16 {
			return false
		}
	}
	return true
}

// smallInt returns n for OP_1..OP_16, otherwise 0.
func smallInt(op byte) int {
	if op >= OP_1 && op <= OP_16 {
		return int(op) - (OP_1 - 1)
	}
	return 0
}
