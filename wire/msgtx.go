// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cannabiscoindev/cannabiscoin420/chainhash"
)

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new bitcoin transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// MaxTxInSequenceNum is the maximum sequence number a transaction input can
// have, signaling that its relative locktime and replace-by-fee semantics
// are disabled.
const MaxTxInSequenceNum uint32 = 0xffffffff

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new bitcoin transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// MsgTx represents a bitcoin-style transaction. It is used to build up the
// genesis coinbase so its hash and the genesis merkle root can be computed.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction with the given version and no inputs
// or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, 1),
		TxOut:   make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: OutPoint{
				Hash:  oldTxIn.PreviousOutPoint.Hash,
				Index: oldTxIn.PreviousOutPoint.Index,
			},
			Sequence: oldTxIn.Sequence,
		}
		if len(oldTxIn.SignatureScript) > 0 {
			newTxIn.SignatureScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newTxIn.SignatureScript, oldTxIn.SignatureScript)
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		newTxOut := TxOut{Value: oldTxOut.Value}
		if len(oldTxOut.PkScript) > 0 {
			newTxOut.PkScript = make([]byte, len(oldTxOut.PkScript))
			copy(newTxOut.PkScript, oldTxOut.PkScript)
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// serialize writes the canonical byte encoding of the transaction used for
// hashing. It intentionally omits witness data and any advisory fields: the
// only transaction this package ever serializes is the genesis coinbase.
func (msg *MsgTx) serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, msg.Version); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := writeVarInt(w, uint64(len(ti.SignatureScript))); err != nil {
			return err
		}
		if _, err := w.Write(ti.SignatureScript); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, ti.Sequence); err != nil {
			return err
		}
	}
	if err := writeVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := binary.Write(w, binary.LittleEndian, to.Value); err != nil {
			return err
		}
		if err := writeVarInt(w, uint64(len(to.PkScript))); err != nil {
			return err
		}
		if _, err := w.Write(to.PkScript); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, msg.LockTime)
}

// TxHash generates the hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	if err := msg.serialize(&buf); err != nil {
		// serialize only fails if the underlying Writer fails, which a
		// bytes.Buffer never does.
		panic(err)
	}
	return chainhash.DoubleHashH(buf.Bytes())
}

// writeVarInt serializes val to w using the bitcoin variable length integer
// encoding.
func writeVarInt(w io.Writer, val uint64) error {
	var buf [9]byte
	switch {
	case val < 0xfd:
		buf[0] = byte(val)
		_, err := w.Write(buf[:1])
		return err
	case val <= 0xffff:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err
	case val <= 0xffffffff:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:9], val)
		_, err := w.Write(buf[:9])
		return err
	}
}
