// Package op defines the EVM instruction set used by the disassembler.
package op

import "fmt"

// Code is a single-byte EVM opcode.
type Code byte

const (
	// 0x00 range - arithmetic.
	STOP       Code = 0x00
	ADD        Code = 0x01
	MUL        Code = 0x02
	SUB        Code = 0x03
	DIV        Code = 0x04
	SDIV       Code = 0x05
	MOD        Code = 0x06
	SMOD       Code = 0x07
	ADDMOD     Code = 0x08
	MULMOD     Code = 0x09
	EXP        Code = 0x0A
	SIGNEXTEND Code = 0x0B

	// 0x10 range - comparison and bitwise logic.
	LT     Code = 0x10
	GT     Code = 0x11
	SLT    Code = 0x12
	SGT    Code = 0x13
	EQ     Code = 0x14
	ISZERO Code = 0x15
	AND    Code = 0x16
	OR     Code = 0x17
	XOR    Code = 0x18
	NOT    Code = 0x19
	BYTE   Code = 0x1A
	SHL    Code = 0x1B
	SHR    Code = 0x1C
	SAR    Code = 0x1D

	// 0x20 range - crypto.
	KECCAK256 Code = 0x20

	// 0x30 range - execution environment.
	ADDRESS        Code = 0x30
	BALANCE        Code = 0x31
	ORIGIN         Code = 0x32
	CALLER         Code = 0x33
	CALLVALUE      Code = 0x34
	CALLDATALOAD   Code = 0x35
	CALLDATASIZE   Code = 0x36
	CALLDATACOPY   Code = 0x37
	CODESIZE       Code = 0x38
	CODECOPY       Code = 0x39
	GASPRICE       Code = 0x3A
	EXTCODESIZE    Code = 0x3B
	EXTCODECOPY    Code = 0x3C
	RETURNDATASIZE Code = 0x3D
	RETURNDATACOPY Code = 0x3E
	EXTCODEHASH    Code = 0x3F

	// 0x40 range - block operations.
	BLOCKHASH   Code = 0x40
	COINBASE    Code = 0x41
	TIMESTAMP   Code = 0x42
	NUMBER      Code = 0x43
	PREVRANDAO  Code = 0x44
	GASLIMIT    Code = 0x45
	CHAINID     Code = 0x46
	SELFBALANCE Code = 0x47
	BASEFEE     Code = 0x48
	BLOBHASH    Code = 0x49
	BLOBBASEFEE Code = 0x4A

	// 0x50 range - storage, memory and control flow.
	POP      Code = 0x50
	MLOAD    Code = 0x51
	MSTORE   Code = 0x52
	MSTORE8  Code = 0x53
	SLOAD    Code = 0x54
	SSTORE   Code = 0x55
	JUMP     Code = 0x56
	JUMPI    Code = 0x57
	PC       Code = 0x58
	MSIZE    Code = 0x59
	GAS      Code = 0x5A
	JUMPDEST Code = 0x5B
	TLOAD    Code = 0x5C
	TSTORE   Code = 0x5D
	MCOPY    Code = 0x5E
	PUSH0    Code = 0x5F

	// 0x60 through 0x7F - pushes with 1..32 immediate bytes.
	PUSH1  Code = 0x60
	PUSH32 Code = 0x7F

	// 0x80 range - duplication.
	DUP1  Code = 0x80
	DUP16 Code = 0x8F

	// 0x90 range - exchange.
	SWAP1  Code = 0x90
	SWAP16 Code = 0x9F

	// 0xA0 range - logging.
	LOG0 Code = 0xA0
	LOG4 Code = 0xA4

	// 0xF0 range - closures and system operations.
	CREATE       Code = 0xF0
	CALL         Code = 0xF1
	CALLCODE     Code = 0xF2
	RETURN       Code = 0xF3
	DELEGATECALL Code = 0xF4
	CREATE2      Code = 0xF5
	STATICCALL   Code = 0xFA
	REVERT       Code = 0xFD
	INVALID      Code = 0xFE
	SELFDESTRUCT Code = 0xFF
)

// Category describes the broad class of operation an opcode belongs to.
// It exists only for presentation; decoding never branches on it.
type Category uint8

const (
	Invalid Category = iota
	Stack
	Arithmetic
	Comparison
	Bitwise
	Memory
	Storage
	Control
	BlockInfo
	Call
	Create
	Termination
	Crypto
)

var categoryNames = [...]string{
	Invalid:     "Invalid",
	Stack:       "Stack",
	Arithmetic:  "Arithmetic",
	Comparison:  "Comparison",
	Bitwise:     "Bitwise",
	Memory:      "Memory",
	Storage:     "Storage",
	Control:     "Control",
	BlockInfo:   "BlockInfo",
	Call:        "Call",
	Create:      "Create",
	Termination: "Termination",
	Crypto:      "Crypto",
}

// String returns the category name, e.g. "Arithmetic".
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Invalid"
}

// Info describes a single opcode. Descriptors are immutable and shared
// by every lookup.
type Info struct {
	// Code is the raw opcode byte value.
	Code Code

	// Name is the opcode mnemonic, e.g. "PUSH1". Byte values with no
	// assigned meaning carry the name "INVALID".
	Name string

	// Category classifies the opcode for presentation.
	Category Category

	// ImmediateLen is the number of operand bytes that follow the opcode
	// in the bytecode stream. Zero for everything except PUSH1..PUSH32,
	// where it is 1..32.
	ImmediateLen int

	// StackDelta is the net change the opcode applies to the stack depth
	// when executed (items pushed minus items popped).
	StackDelta int
}

// infos maps every possible byte value to its descriptor. Built once in
// init and never mutated, so concurrent lookups need no synchronization.
var infos [256]Info

func init() {
	// Unassigned byte values decode as INVALID rather than failing, which
	// keeps the disassembler total over arbitrary input.
	for i := range infos {
		infos[i] = Info{Code: Code(i), Name: "INVALID", Category: Invalid}
	}

	type opInfo struct {
		op    Code
		name  string
		cat   Category
		delta int
	}
	ops := []opInfo{
		{STOP, "STOP", Termination, 0},
		{ADD, "ADD", Arithmetic, -1},
		{MUL, "MUL", Arithmetic, -1},
		{SUB, "SUB", Arithmetic, -1},
		{DIV, "DIV", Arithmetic, -1},
		{SDIV, "SDIV", Arithmetic, -1},
		{MOD, "MOD", Arithmetic, -1},
		{SMOD, "SMOD", Arithmetic, -1},
		{ADDMOD, "ADDMOD", Arithmetic, -2},
		{MULMOD, "MULMOD", Arithmetic, -2},
		{EXP, "EXP", Arithmetic, -1},
		{SIGNEXTEND, "SIGNEXTEND", Arithmetic, -1},
		{LT, "LT", Comparison, -1},
		{GT, "GT", Comparison, -1},
		{SLT, "SLT", Comparison, -1},
		{SGT, "SGT", Comparison, -1},
		{EQ, "EQ", Comparison, -1},
		{ISZERO, "ISZERO", Comparison, 0},
		{AND, "AND", Bitwise, -1},
		{OR, "OR", Bitwise, -1},
		{XOR, "XOR", Bitwise, -1},
		{NOT, "NOT", Bitwise, 0},
		{BYTE, "BYTE", Bitwise, -1},
		{SHL, "SHL", Bitwise, -1},
		{SHR, "SHR", Bitwise, -1},
		{SAR, "SAR", Bitwise, -1},
		{KECCAK256, "KECCAK256", Crypto, -1},
		{ADDRESS, "ADDRESS", BlockInfo, 1},
		{BALANCE, "BALANCE", BlockInfo, 0},
		{ORIGIN, "ORIGIN", BlockInfo, 1},
		{CALLER, "CALLER", BlockInfo, 1},
		{CALLVALUE, "CALLVALUE", BlockInfo, 1},
		{CALLDATALOAD, "CALLDATALOAD", BlockInfo, 0},
		{CALLDATASIZE, "CALLDATASIZE", BlockInfo, 1},
		{CALLDATACOPY, "CALLDATACOPY", BlockInfo, -3},
		{CODESIZE, "CODESIZE", BlockInfo, 1},
		{CODECOPY, "CODECOPY", BlockInfo, -3},
		{GASPRICE, "GASPRICE", BlockInfo, 1},
		{EXTCODESIZE, "EXTCODESIZE", BlockInfo, 0},
		{EXTCODECOPY, "EXTCODECOPY", BlockInfo, -4},
		{RETURNDATASIZE, "RETURNDATASIZE", BlockInfo, 1},
		{RETURNDATACOPY, "RETURNDATACOPY", BlockInfo, -3},
		{EXTCODEHASH, "EXTCODEHASH", BlockInfo, 0},
		{BLOCKHASH, "BLOCKHASH", BlockInfo, 0},
		{COINBASE, "COINBASE", BlockInfo, 1},
		{TIMESTAMP, "TIMESTAMP", BlockInfo, 1},
		{NUMBER, "NUMBER", BlockInfo, 1},
		{PREVRANDAO, "PREVRANDAO", BlockInfo, 1},
		{GASLIMIT, "GASLIMIT", BlockInfo, 1},
		{CHAINID, "CHAINID", BlockInfo, 1},
		{SELFBALANCE, "SELFBALANCE", BlockInfo, 1},
		{BASEFEE, "BASEFEE", BlockInfo, 1},
		{BLOBHASH, "BLOBHASH", BlockInfo, 0},
		{BLOBBASEFEE, "BLOBBASEFEE", BlockInfo, 1},
		{POP, "POP", Stack, -1},
		{MLOAD, "MLOAD", Memory, 0},
		{MSTORE, "MSTORE", Memory, -2},
		{MSTORE8, "MSTORE8", Memory, -2},
		{SLOAD, "SLOAD", Storage, 0},
		{SSTORE, "SSTORE", Storage, -2},
		{JUMP, "JUMP", Control, -1},
		{JUMPI, "JUMPI", Control, -2},
		{PC, "PC", Control, 1},
		{MSIZE, "MSIZE", Memory, 1},
		{GAS, "GAS", BlockInfo, 1},
		{JUMPDEST, "JUMPDEST", Control, 0},
		{TLOAD, "TLOAD", Storage, 0},
		{TSTORE, "TSTORE", Storage, -2},
		{MCOPY, "MCOPY", Memory, -3},
		{PUSH0, "PUSH0", Stack, 1},
		{CREATE, "CREATE", Create, -2},
		{CALL, "CALL", Call, -6},
		{CALLCODE, "CALLCODE", Call, -6},
		{RETURN, "RETURN", Termination, -2},
		{DELEGATECALL, "DELEGATECALL", Call, -5},
		{CREATE2, "CREATE2", Create, -3},
		{STATICCALL, "STATICCALL", Call, -5},
		{REVERT, "REVERT", Termination, -2},
		{SELFDESTRUCT, "SELFDESTRUCT", Termination, -1},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:       o.op,
			Name:       o.name,
			Category:   o.cat,
			StackDelta: o.delta,
		}
	}

	// PUSH1..PUSH32 carry 1..32 immediate operand bytes.
	for i := 0; i < 32; i++ {
		c := PUSH1 + Code(i)
		infos[c] = Info{
			Code:         c,
			Name:         fmt.Sprintf("PUSH%d", i+1),
			Category:     Stack,
			ImmediateLen: i + 1,
			StackDelta:   1,
		}
	}
	// DUP1..DUP16 push a copy of the nth stack item.
	for i := 0; i < 16; i++ {
		c := DUP1 + Code(i)
		infos[c] = Info{
			Code:       c,
			Name:       fmt.Sprintf("DUP%d", i+1),
			Category:   Stack,
			StackDelta: 1,
		}
	}
	// SWAP1..SWAP16 rearrange the stack without changing its depth.
	for i := 0; i < 16; i++ {
		c := SWAP1 + Code(i)
		infos[c] = Info{
			Code:     c,
			Name:     fmt.Sprintf("SWAP%d", i+1),
			Category: Stack,
		}
	}
	// LOG0..LOG4 pop two memory operands plus n topics.
	for i := 0; i < 5; i++ {
		c := LOG0 + Code(i)
		infos[c] = Info{
			Code:       c,
			Name:       fmt.Sprintf("LOG%d", i),
			Category:   Storage,
			StackDelta: -(i + 2),
		}
	}
}

// GetInfo returns the descriptor for the given byte value. The lookup is
// total: every byte value resolves to exactly one descriptor, with
// unassigned values resolving to an INVALID descriptor.
func GetInfo(b byte) Info {
	return infos[b]
}

// String returns the opcode mnemonic, or "INVALID" for unassigned values.
func (c Code) String() string {
	return infos[c].Name
}

// IsPush reports whether the opcode is one of the push family
// (PUSH0..PUSH32).
func (c Code) IsPush() bool {
	return c >= PUSH0 && c <= PUSH32
}
