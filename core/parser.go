package core

import (
	"fmt"
	"strings"
)

// ParseSource runs the two-pass assembler over source: pass 0 resolves
// labels to instruction addresses, pass 1 emits the instruction stream along
// with line-tagged errors and warnings. Parse errors skip the offending
// line but never abort the pass.
func ParseSource(source string) ([]Instruction, []string, []string) {
	lines := strings.Split(source, "\n")

	labels := scanLabels(lines)

	instructions := make([]Instruction, 0, len(lines))
	var errs, warns []string

	addr := int32(0)
	for i, line := range lines {
		sourceLine := i + 1
		instr, err := parseLine(line, addr, sourceLine, labels)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Line %d: %s", sourceLine, err))
			continue
		}
		if instr == nil {
			continue
		}

		warns = append(warns, checkStaticWarnings(*instr)...)
		if len(instructions) > 0 {
			if hazard := checkRawHazard(instructions[len(instructions)-1], *instr); hazard != "" {
				warns = append(warns, hazard)
			}
		}

		instructions = append(instructions, *instr)
		addr++
	}

	return instructions, errs, warns
}

// scanLabels is pass 0: walk lines maintaining an address counter and
// record each label's bound address. A line without a label increments the
// counter if it is non-empty; a labelled line increments it only if
// non-empty instruction text follows the colon.
func scanLabels(lines []string) map[string]int32 {
	labels := make(map[string]int32)
	addr := int32(0)

	for _, line := range lines {
		clean := cleanLine(line)
		if idx := strings.IndexByte(clean, ':'); idx >= 0 {
			label := clean[:idx]
			if !strings.ContainsAny(label, " \t") && label != "" {
				labels[label] = addr
			}
			after := strings.TrimSpace(clean[idx+1:])
			if after != "" {
				addr++
			}
		} else if clean != "" {
			addr++
		}
	}

	return labels
}

// parseLine parses one source line into an instruction. It returns
// (nil, nil) for blank, comment-only, or label-only lines.
func parseLine(line string, address int32, sourceLine int, labels map[string]int32) (*Instruction, error) {
	clean := cleanLine(line)
	if idx := strings.IndexByte(clean, ':'); idx >= 0 {
		clean = strings.TrimSpace(clean[idx+1:])
	}
	if clean == "" {
		return nil, nil
	}

	tokens := strings.Fields(clean)
	if len(tokens) == 0 {
		return nil, nil
	}

	op, args, err := parseOperation(tokens[0])
	if err != nil {
		return nil, err
	}
	needA, needB := requiredOperands(op, args)

	a := Operand{Kind: Immediate, Data: 0}
	b := Operand{Kind: Immediate, Data: 0}

	tokenIdx := 1
	if needA && tokenIdx < len(tokens) {
		a, err = parseOperand(tokens[tokenIdx], labels)
		if err != nil {
			return nil, err
		}
		tokenIdx++
	}
	if needB && tokenIdx < len(tokens) {
		b, err = parseOperand(tokens[tokenIdx], labels)
		if err != nil {
			return nil, err
		}
		tokenIdx++
	}

	return &Instruction{
		Operation:  op,
		Args:       args,
		A:          a,
		B:          b,
		Address:    address,
		SourceLine: sourceLine,
	}, nil
}

// requiredOperands reports which of operand A / operand B a mnemonic
// (with its arg-prefix) expects, per the operand-count table in
// SPEC_FULL.md §4.2.
func requiredOperands(op Operation, args ArgPrefix) (needA, needB bool) {
	switch op {
	case NOOP, RET:
		return false, false
	case IMM, MOV, SHR, NOT, OUT, STORE, LOAD, ROUT:
		return true, true
	case ADD, ADDC, SUB, OR, XOR, AND:
		if args == ArgX {
			return false, true
		}
		return true, true
	case JMP, BIE, BIG, BIL, BIO, INP, PUSH, POP, CALL:
		return true, false
	default:
		return false, false
	}
}

// writesRegisterA reports whether op, with the given arg-prefix, writes
// operand A as a register (used both for the zero-register warning and the
// RAW hazard writer table).
func writesRegisterA(op Operation, args ArgPrefix) bool {
	switch op {
	case IMM, MOV, LOAD, POP, INP, SHR, NOT:
		return true
	case ADD, ADDC, SUB, AND, OR, XOR:
		return args != ArgX
	default:
		return false
	}
}

// checkStaticWarnings computes the §4.3 static warnings for one emitted
// instruction.
func checkStaticWarnings(instr Instruction) []string {
	var warns []string
	line := instr.SourceLine
	op := instr.Operation
	a, b := instr.A, instr.B

	if writesRegisterA(op, instr.Args) && a.Kind == Register && a.Data == 0 {
		warns = append(warns, fmt.Sprintf(
			"Line %d: Writing to Register 0 (Zero Register) effectively does nothing.", line))
	}

	isBranchOrCall := op == JMP || op == CALL || op == BIE || op == BIG || op == BIL || op == BIO
	if a.Kind == Immediate && (a.Data < 0 || a.Data > 255) && !isBranchOrCall {
		warns = append(warns, fmt.Sprintf(
			"Line %d: Immediate value %d is out of 8-bit range (0-255). It will be wrapped.", line, a.Data))
	}
	if b.Kind == Immediate && (b.Data < 0 || b.Data > 255) {
		warns = append(warns, fmt.Sprintf(
			"Line %d: Immediate value %d is out of 8-bit range (0-255). It will be wrapped.", line, b.Data))
	}

	if op == OUT && a.Kind == Port && (a.Data < 0 || a.Data > 7) {
		warns = append(warns, fmt.Sprintf("Line %d: Port %%%d is out of range (0-7).", line, a.Data))
	}

	if op == STORE && a.Kind == MemoryAddress && (a.Data < 0 || a.Data > 15) {
		warns = append(warns, fmt.Sprintf("Line %d: Memory address #%d is out of RAM range (0-15).", line, a.Data))
	}
	if op == LOAD && b.Kind == MemoryAddress && (b.Data < 0 || b.Data > 15) {
		warns = append(warns, fmt.Sprintf("Line %d: Memory address #%d is out of RAM range (0-15).", line, b.Data))
	}

	return warns
}

// checkRawHazard reports the RAW hazard warning for current if it reads (as
// a register) whatever prev just wrote, per the writer/reader tables in
// SPEC_FULL.md §4.4. Returns "" when there is no hazard.
func checkRawHazard(prev, current Instruction) string {
	if prev.A.Kind != Register || !writesRegisterA(prev.Operation, prev.Args) {
		return ""
	}
	written := prev.A.Data

	for _, reg := range readRegisters(current) {
		if reg == written {
			return fmt.Sprintf(
				"Line %d: RAW Hazard. Reading R%d immediately after writing may yield old value due to pipeline latency. Insert a NOOP.",
				current.SourceLine, written)
		}
	}
	return ""
}

// readRegisters lists the registers current reads as a source, per the
// reader tables in SPEC_FULL.md §4.4.
func readRegisters(instr Instruction) []int32 {
	var reads []int32

	if instr.A.Kind == Register {
		switch instr.Operation {
		case ADD, ADDC, SUB, AND, OR, XOR:
			if instr.Args != ArgU && instr.Args != ArgX {
				reads = append(reads, instr.A.Data)
			}
		case PUSH, ROUT:
			reads = append(reads, instr.A.Data)
		}
	}

	if instr.B.Kind == Register {
		switch instr.Operation {
		case MOV, ADD, ADDC, SUB, AND, OR, XOR, SHR, NOT, OUT, ROUT, STORE:
			reads = append(reads, instr.B.Data)
		}
	}

	return reads
}
