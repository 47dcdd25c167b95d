package dis

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/evmlens/evmlens/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDisassembleSimpleProgram(t *testing.T) {
	// PUSH1 0xFF, PUSH2 0xABCD, STOP
	code := mustHex(t, "60ff61abcd00")
	instructions := Disassemble(code)
	require.Len(t, instructions, 3)

	assert.Equal(t, 0, instructions[0].Offset)
	assert.Equal(t, "PUSH1", instructions[0].Op.Name)
	assert.Equal(t, []byte{0xFF}, instructions[0].Immediate)

	assert.Equal(t, 2, instructions[1].Offset)
	assert.Equal(t, "PUSH2", instructions[1].Op.Name)
	assert.Equal(t, []byte{0xAB, 0xCD}, instructions[1].Immediate)

	assert.Equal(t, 5, instructions[2].Offset)
	assert.Equal(t, "STOP", instructions[2].Op.Name)
	assert.Empty(t, instructions[2].Immediate)
}

func TestDisassembleMemoryOperations(t *testing.T) {
	// PUSH1 0x20, PUSH1 0x00, MSTORE, PUSH1 0x00, MLOAD, STOP
	code := mustHex(t, "602060005260005100")
	instructions := Disassemble(code)
	require.Len(t, instructions, 6)

	names := make([]string, 0, len(instructions))
	offsets := make([]int, 0, len(instructions))
	for _, ins := range instructions {
		names = append(names, ins.Op.Name)
		offsets = append(offsets, ins.Offset)
	}
	assert.Equal(t, []string{"PUSH1", "PUSH1", "MSTORE", "PUSH1", "MLOAD", "STOP"}, names)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 8}, offsets)
}

func TestDisassembleStackOperations(t *testing.T) {
	// PUSH1 0x01, PUSH1 0x02, DUP1, SWAP1, ADD, STOP
	code := mustHex(t, "6001600280900100")
	instructions := Disassemble(code)
	require.Len(t, instructions, 6)
	assert.Equal(t, "DUP1", instructions[2].Op.Name)
	assert.Equal(t, 4, instructions[2].Offset)
	assert.Equal(t, "SWAP1", instructions[3].Op.Name)
	assert.Equal(t, "ADD", instructions[4].Op.Name)
}

func TestDisassembleEmpty(t *testing.T) {
	assert.Empty(t, Disassemble(nil))
	assert.Empty(t, Disassemble([]byte{}))
}

func TestDisassembleTruncatedPush(t *testing.T) {
	// PUSH2 with only one of its two operand bytes present. The
	// instruction is still emitted, carrying the short immediate, and
	// decoding stops there.
	instructions := Disassemble([]byte{0x61, 0xAB})
	require.Len(t, instructions, 1)
	assert.Equal(t, 0, instructions[0].Offset)
	assert.Equal(t, "PUSH2", instructions[0].Op.Name)
	assert.Equal(t, []byte{0xAB}, instructions[0].Immediate)
}

func TestDisassembleTruncatedPushNoOperand(t *testing.T) {
	// PUSH32 as the final byte: emitted with an empty immediate.
	instructions := Disassemble([]byte{0x00, 0x7F})
	require.Len(t, instructions, 2)
	assert.Equal(t, "STOP", instructions[0].Op.Name)
	assert.Equal(t, "PUSH32", instructions[1].Op.Name)
	assert.Empty(t, instructions[1].Immediate)
}

func TestDisassembleUnassignedByte(t *testing.T) {
	// 0x0C has no assigned meaning. It decodes as a one-byte INVALID
	// marker and the bytes after it continue to decode normally.
	instructions := Disassemble([]byte{0x0C, 0x60, 0x01, 0x00})
	require.Len(t, instructions, 3)
	assert.Equal(t, "INVALID", instructions[0].Op.Name)
	assert.Equal(t, 0, instructions[0].Op.ImmediateLen)
	assert.Equal(t, "PUSH1", instructions[1].Op.Name)
	assert.Equal(t, 1, instructions[1].Offset)
	assert.Equal(t, "STOP", instructions[2].Op.Name)
}

// Concatenating each instruction's opcode byte and immediate must
// reproduce the input buffer exactly.
func TestDisassembleCoversInput(t *testing.T) {
	inputs := [][]byte{
		mustHex(t, "60ff61abcd00"),
		mustHex(t, "602060005260005100"),
		mustHex(t, "60426000556000542000"),
		{0x0C, 0xFE, 0x7F, 0x01, 0x02}, // invalid bytes and a truncated PUSH32
	}
	for _, code := range inputs {
		var rebuilt bytes.Buffer
		prevEnd := 0
		for ins := range Instructions(code) {
			assert.Equal(t, prevEnd, ins.Offset)
			rebuilt.WriteByte(byte(ins.Op.Code))
			rebuilt.Write(ins.Immediate)
			prevEnd = ins.Offset + ins.Size()
		}
		assert.Equal(t, code, rebuilt.Bytes())
	}
}

func TestInstructionsLazyEarlyStop(t *testing.T) {
	code := mustHex(t, "600160026003600400")
	var seen int
	for ins := range Instructions(code) {
		seen++
		if ins.Offset >= 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestInstructionsIdempotent(t *testing.T) {
	code := mustHex(t, "60ff61abcd00")
	first := Disassemble(code)
	second := Disassemble(code)
	assert.Equal(t, first, second)
}

func TestImmediateIsViewIntoBuffer(t *testing.T) {
	code := []byte{0x61, 0xAB, 0xCD}
	instructions := Disassemble(code)
	require.Len(t, instructions, 1)
	// Mutating the source buffer must show through the immediate slice.
	code[1] = 0x11
	assert.Equal(t, []byte{0x11, 0xCD}, instructions[0].Immediate)
}

func TestPrint(t *testing.T) {
	code := mustHex(t, "60ff61abcd00")
	var buf bytes.Buffer
	Print(Disassemble(code), &buf)
	out := buf.String()
	assert.Contains(t, out, "OFFSET")
	assert.Contains(t, out, "OPCODE")
	assert.Contains(t, out, "PUSH1")
	assert.Contains(t, out, "0xff")
	assert.Contains(t, out, "PUSH2")
	assert.Contains(t, out, "0xabcd")
	assert.Contains(t, out, "STOP")
	assert.Contains(t, out, "Termination")
}

func TestOpInfoMatchesTable(t *testing.T) {
	code := mustHex(t, "60ff61abcd00")
	for ins := range Instructions(code) {
		assert.Equal(t, op.GetInfo(code[ins.Offset]), ins.Op)
	}
}
