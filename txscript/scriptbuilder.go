// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txscript implements just enough of the bitcoin script assembly
// grammar to build the genesis block's coinbase scriptSig and
// scriptPubKey. It builds scripts; it does not execute them.
package txscript

import "encoding/binary"

// defaultScriptAlloc is the default size used for the backing array for a
// script being built by the ScriptBuilder.
const defaultScriptAlloc = 100

// ScriptBuilder provides a facility for building custom scripts. It allows
// pushing opcodes, ints, and data while respecting canonical encoding. It
// does not ensure the script will execute correctly.
type ScriptBuilder struct {
	script []byte
}

// NewScriptBuilder returns a new instance of a script builder. See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	b.script = append(b.script, opcode)
	return b
}

// AddInt64 pushes the passed integer to the end of the script. The
// canonical representation for values of -1 and 1 through 16 uses one of
// the small-integer opcodes instead of a data push.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if val == 0 {
		b.script = append(b.script, OP_0)
		return b
	}
	if val == -1 || (val >= 1 && val <= 16) {
		b.script = append(b.script, byte((OP_1-1)+val))
		return b
	}
	return b.AddData(serializeScriptNum(val))
}

// AddData pushes the passed data to the end of the script. It automatically
// chooses canonical opcodes depending on the length of the data.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	if dataLen == 0 || (dataLen == 1 && data[0] == 0) {
		b.script = append(b.script, OP_0)
		return b
	} else if dataLen == 1 && data[0] <= 16 {
		b.script = append(b.script, byte((OP_1-1)+data[0]))
		return b
	}

	if dataLen < OP_PUSHDATA1 {
		b.script = append(b.script, byte((OP_DATA_1-1)+dataLen))
	} else if dataLen <= 0xff {
		b.script = append(b.script, OP_PUSHDATA1, byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, OP_PUSHDATA2)
		b.script = append(b.script, buf...)
	} else {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, OP_PUSHDATA4)
		b.script = append(b.script, buf...)
	}

	b.script = append(b.script, data...)
	return b
}

// Script returns the currently built script.
func (b *ScriptBuilder) Script() []byte {
	return b.script
}

// serializeScriptNum encodes n using the minimal little-endian
// sign-magnitude encoding bitcoin script numbers use.
func serializeScriptNum(n int64) []byte {
	if n == 0 {
		return nil
	}

	negative := n < 0
	absoluteVal := n
	if negative {
		absoluteVal = -n
	}

	var result []byte
	for absoluteVal > 0 {
		result = append(result, byte(absoluteVal&0xff))
		absoluteVal >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if negative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if negative {
		result[len(result)-1] |= 0x80
	}

	return result
}
