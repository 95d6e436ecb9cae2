package codegen

import (
	executor "BPlusIndex/query_executor"
	"BPlusIndex/query_parser/parser"
	"fmt"
)

// EmitBytecode lowers one parsed statement into a VM program. Every program
// ends with OP_END; multi-key statements repeat their per-key sequence and
// finish with a single OP_ACK so the command answers with one line.
func EmitBytecode(stmt parser.Statement) ([]executor.Instruction, error) {

	instructions := []executor.Instruction{}

	switch s := stmt.(type) {

	case *parser.InsertStmt:
		for _, kv := range s.Pairs {
			instructions = append(instructions,
				executor.Instruction{Op: executor.OP_PUSH_KEY, Value: kv.Key},
				executor.Instruction{Op: executor.OP_PUSH_VAL, Value: kv.Value},
				executor.Instruction{Op: executor.OP_INSERT},
			)
		}
		instructions = append(instructions, executor.Instruction{Op: executor.OP_ACK})

	case *parser.RemoveStmt:
		for _, k := range s.Keys {
			instructions = append(instructions,
				executor.Instruction{Op: executor.OP_PUSH_KEY, Value: k},
				executor.Instruction{Op: executor.OP_REMOVE},
			)
		}
		instructions = append(instructions, executor.Instruction{Op: executor.OP_ACK})

	case *parser.LookupStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.Key},
			executor.Instruction{Op: executor.OP_LOOKUP},
		)

	case *parser.LowerBoundStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.Key},
			executor.Instruction{Op: executor.OP_LOWERBOUND},
		)

	default:
		return nil, fmt.Errorf("codegen: unsupported statement type %T", stmt)
	}

	instructions = append(instructions, executor.Instruction{Op: executor.OP_END})
	return instructions, nil
}
