// Package core implements the Electron 2 assembler/validator and pipelined
// emulator: a two-pass parser that resolves labels and emits a principled
// taxonomy of errors and warnings, paired with a four-stage reverse-evaluated
// pipeline over an 8-bit accumulator machine.
package core

import "fmt"

// Operation is the closed set of 25 Electron 2 mnemonics.
type Operation byte

const (
	NOOP Operation = iota
	IMM
	MOV
	ADD
	ADDC
	SUB
	OR
	XOR
	AND
	SHR
	NOT
	OUT
	ROUT
	INP
	JMP
	BIE
	BIG
	BIL
	BIO
	STORE
	LOAD
	PUSH
	POP
	CALL
	RET
)

// operationNames gives the canonical (printable) name for each operation,
// used both by String() and by the pipeline-latch dashboard.
var operationNames = map[Operation]string{
	NOOP:  "NOOP",
	IMM:   "IMM",
	MOV:   "MOV",
	ADD:   "ADD",
	ADDC:  "ADDC",
	SUB:   "SUB",
	OR:    "OR",
	XOR:   "XOR",
	AND:   "AND",
	SHR:   "SHR",
	NOT:   "NOT",
	OUT:   "OUT",
	ROUT:  "ROUT",
	INP:   "INP",
	JMP:   "JMP",
	BIE:   "BIE",
	BIG:   "BIG",
	BIL:   "BIL",
	BIO:   "BIO",
	STORE: "STORE",
	LOAD:  "LOAD",
	PUSH:  "PUSH",
	POP:   "POP",
	CALL:  "CALL",
	RET:   "RET",
}

// mnemonicToOperation is the parser's view of the mnemonic set: it includes
// NOP as a synonym for NOOP, which operationNames deliberately does not (NOOP
// is always the canonical printed form).
var mnemonicToOperation = map[string]Operation{
	"NOOP": NOOP, "NOP": NOOP,
	"IMM": IMM, "MOV": MOV,
	"ADD": ADD, "ADDC": ADDC, "SUB": SUB,
	"OR": OR, "XOR": XOR, "AND": AND,
	"SHR": SHR, "NOT": NOT,
	"OUT": OUT, "ROUT": ROUT, "INP": INP,
	"JMP": JMP, "BIE": BIE, "BIG": BIG, "BIL": BIL, "BIO": BIO,
	"STORE": STORE, "LOAD": LOAD,
	"PUSH": PUSH, "POP": POP, "CALL": CALL, "RET": RET,
}

// String lets Operation satisfy fmt.Stringer for use with Print/Sprint and
// the pipeline dashboard.
func (op Operation) String() string {
	name, ok := operationNames[op]
	if !ok {
		return "?unknown?"
	}
	return name
}

// ArgPrefix is the closed enumeration of mnemonic modifiers (none, S, U, X)
// that select operand-source and write-back behaviour for arithmetic and
// logical operations.
type ArgPrefix byte

const (
	ArgNone ArgPrefix = iota
	ArgS
	ArgU
	ArgX
)

func (a ArgPrefix) String() string {
	switch a {
	case ArgNone:
		return ""
	case ArgS:
		return "S"
	case ArgU:
		return "U"
	case ArgX:
		return "X"
	default:
		return "?"
	}
}

// OperandKind is the closed set of operand addressing modes.
type OperandKind byte

const (
	Register OperandKind = iota
	MemoryAddress
	Immediate
	Port
)

func (k OperandKind) String() string {
	switch k {
	case Register:
		return "register"
	case MemoryAddress:
		return "memory address"
	case Immediate:
		return "immediate"
	case Port:
		return "port"
	default:
		return "?"
	}
}

// Operand carries an addressing mode and a signed payload wide enough to
// hold any parsed literal or label address before range checks are applied
// at use.
type Operand struct {
	Kind OperandKind
	Data int32
}

// Instruction is the unit the parser emits and the pipeline latches copy
// forward: an operation, its arg-prefix, two operands, the resolved program
// address, and the 1-based source line it came from.
type Instruction struct {
	Operation  Operation
	Args       ArgPrefix
	A          Operand
	B          Operand
	Address    int32
	SourceLine int
}

// NoneInstruction is the sentinel used to fill empty or flushed pipeline
// slots: NOOP at address -1.
func NoneInstruction() Instruction {
	return Instruction{
		Operation: NOOP,
		Args:      ArgNone,
		A:         Operand{Kind: Immediate, Data: 0},
		B:         Operand{Kind: Immediate, Data: 0},
		Address:   -1,
	}
}

// String renders an instruction as its arg-prefix (if any) followed by its
// mnemonic, e.g. "XADD"; operands are not included. The empty-slot sentinel
// renders as "-".
func (instr Instruction) String() string {
	if instr.Operation == NOOP && instr.Address == -1 {
		return "-"
	}
	prefix := instr.Args.String()
	return fmt.Sprintf("%s%s", prefix, instr.Operation.String())
}
