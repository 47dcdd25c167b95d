// Package evmlens decodes raw EVM bytecode into instruction listings and
// aggregate statistics. It is the embedding entry point; the cmd/evmlens
// binary wraps the same calls with input handling and presentation.
package evmlens

import (
	"iter"

	"github.com/evmlens/evmlens/dis"
)

// Instruction is a single decoded EVM instruction.
type Instruction = dis.Instruction

// Stats contains aggregate statistics about a bytecode buffer.
type Stats = dis.Stats

// Disassemble decodes the buffer into a slice of instructions. Decoding
// is total: every input, including an empty buffer, one containing
// unassigned opcode bytes, or one ending mid-PUSH-operand, produces a
// valid instruction sequence. The input must already be raw bytes; hex
// decoding and validation belong to the fetch package.
func Disassemble(code []byte) []Instruction {
	return dis.Disassemble(code)
}

// Instructions returns a lazy sequence over the decoded instructions.
// Consumers may stop early without decoding the rest of the buffer.
func Instructions(code []byte) iter.Seq[Instruction] {
	return dis.Instructions(code)
}

// ComputeStats folds the buffer's instruction sequence into statistics in
// a single pass.
func ComputeStats(code []byte) Stats {
	return dis.ComputeStats(code)
}
