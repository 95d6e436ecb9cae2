package executor

/*
VM - applies one compiled command to the index and produces its result line
    ↓
    ├─→ LookupCache - read-through cache in front of lookup
    ├─→ B+ Tree - the in-memory index
    └─→ Metrics - per command counters and tree gauges
*/

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type Option func(*VM)

// WithCache puts c in front of lookup. A nil cache disables caching.
func WithCache(c *LookupCache) Option {
	return func(vm *VM) { vm.cache = c }
}

func WithMetrics(m *Metrics) Option {
	return func(vm *VM) { vm.metrics = m }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(vm *VM) { vm.log = l }
}

func NewVM(tree *Index, opts ...Option) *VM {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	vm := &VM{
		tree:  tree,
		log:   discard,
		stack: make([]int64, 0, 2),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Tree returns the index the VM mutates.
func (vm *VM) Tree() *Index { return vm.tree }

// Execute runs one program and returns its result line. The program of a
// failed parse never reaches here, so a returned error means the program
// itself was malformed.
func (vm *VM) Execute(instructions []Instruction) (string, error) {
	vm.stack = vm.stack[:0]
	result := ""

	for pc, instr := range instructions {
		switch instr.Op {
		case OP_PUSH_VAL, OP_PUSH_KEY:
			vm.stack = append(vm.stack, instr.Value)

		case OP_INSERT:
			kv, err := vm.pop(2)
			if err != nil {
				return "", fmt.Errorf("pc %d %s: %w", pc, instr.Op, err)
			}
			vm.ExecuteInsert(kv[0], kv[1])

		case OP_REMOVE:
			k, err := vm.pop(1)
			if err != nil {
				return "", fmt.Errorf("pc %d %s: %w", pc, instr.Op, err)
			}
			vm.ExecuteRemove(k[0])

		case OP_LOOKUP:
			k, err := vm.pop(1)
			if err != nil {
				return "", fmt.Errorf("pc %d %s: %w", pc, instr.Op, err)
			}
			result = formatResult(vm.ExecuteLookup(k[0]))

		case OP_LOWERBOUND:
			k, err := vm.pop(1)
			if err != nil {
				return "", fmt.Errorf("pc %d %s: %w", pc, instr.Op, err)
			}
			result = formatResult(vm.ExecuteLowerBound(k[0]))

		case OP_ACK:
			result = ResultOK

		case OP_END:
			return result, nil

		default:
			return "", fmt.Errorf("pc %d: %w: %d", pc, ErrUnknownOpcode, instr.Op)
		}
	}
	return result, nil
}

// pop removes the top n operands and returns them in push order.
func (vm *VM) pop(n int) ([]int64, error) {
	if len(vm.stack) < n {
		return nil, fmt.Errorf("%w: need %d operands, have %d", ErrStackUnderflow, n, len(vm.stack))
	}
	top := len(vm.stack) - n
	out := append([]int64(nil), vm.stack[top:]...)
	vm.stack = vm.stack[:top]
	return out, nil
}
