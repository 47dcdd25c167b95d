// Package dis supports disassembling raw EVM bytecode.
package dis

import (
	"iter"

	"github.com/evmlens/evmlens/op"
)

// Instruction is a single decoded EVM instruction.
type Instruction struct {
	// Offset is the byte offset in the source buffer where the opcode
	// starts (0-based).
	Offset int

	// Op is the descriptor for the opcode byte at Offset.
	Op op.Info

	// Immediate holds the operand bytes that follow the opcode. It is a
	// subslice of the input buffer, never a copy, so it must not outlive
	// the buffer. Empty for opcodes with no operand. A PUSH whose declared
	// operand runs past the end of the buffer carries whatever bytes
	// remain.
	Immediate []byte
}

// Size returns the total number of bytes the instruction occupies,
// including any immediate operand actually present.
func (i Instruction) Size() int {
	return 1 + len(i.Immediate)
}

// Instructions returns a lazy sequence of decoded instructions covering
// the buffer left to right with no gaps and no overlaps. Decoding never
// fails: every byte value resolves to a descriptor, and a trailing PUSH
// with a short operand is emitted with a truncated immediate, after which
// the sequence ends. An empty buffer yields an empty sequence.
//
// The sequence decodes one instruction at a time, so a consumer that
// stops early leaves the remainder of the buffer untouched. The input is
// never mutated; calling Instructions again on the same buffer yields an
// identical sequence.
func Instructions(code []byte) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for pos := 0; pos < len(code); {
			info := op.GetInfo(code[pos])
			end := pos + 1 + info.ImmediateLen
			if end > len(code) {
				end = len(code)
			}
			ins := Instruction{
				Offset:    pos,
				Op:        info,
				Immediate: code[pos+1 : end],
			}
			if !yield(ins) {
				return
			}
			pos = end
		}
	}
}

// Disassemble decodes the entire buffer into a slice of instructions.
func Disassemble(code []byte) []Instruction {
	var out []Instruction
	for ins := range Instructions(code) {
		out = append(out, ins)
	}
	return out
}
