package executor

import (
	bplus "BPlusIndex/bplustree"
	"errors"

	"github.com/sirupsen/logrus"
)

type OpCode byte

const (
	// stack
	OP_PUSH_VAL OpCode = iota
	OP_PUSH_KEY

	// index commands
	OP_INSERT
	OP_REMOVE
	OP_LOOKUP
	OP_LOWERBOUND

	// sets the result line to "ok"
	OP_ACK

	OP_END
)

func (op OpCode) String() string {
	switch op {
	case OP_PUSH_VAL:
		return "PUSH_VAL"
	case OP_PUSH_KEY:
		return "PUSH_KEY"
	case OP_INSERT:
		return "INSERT"
	case OP_REMOVE:
		return "REMOVE"
	case OP_LOOKUP:
		return "LOOKUP"
	case OP_LOWERBOUND:
		return "LOWERBOUND"
	case OP_ACK:
		return "ACK"
	case OP_END:
		return "END"
	default:
		return "UNKNOWN"
	}
}

type Instruction struct {
	Op    OpCode
	Value int64
}

// Index is the tree type the VM drives: signed 64-bit keys and values.
type Index = bplus.BPlusTree[int64, int64]

type VM struct {
	tree    *Index
	cache   *LookupCache
	metrics *Metrics
	log     logrus.FieldLogger

	stack []int64
}

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)
