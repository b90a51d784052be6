package core

import "testing"

func TestAluAddFlagsReflectInputsNotResult(t *testing.T) {
	var regs Registers
	regs.BeginCycle()
	regs.Write(1, 200)
	regs.Write(2, 100)
	regs.EndCycle()

	var alu ALU
	var inputReg int32
	var waiting bool
	instr := Instruction{Operation: ADD, A: Operand{Kind: Register, Data: 1}, B: Operand{Kind: Register, Data: 2}}
	alu.Execute(&regs, instr, &inputReg, &waiting)

	assert(t, alu.Accumulator == 44, "expected wrapped 300&0xFF=44, got %d", alu.Accumulator)
	assert(t, alu.Flags.Overflow, "300 is out of 8-bit range, overflow should be set")
	assert(t, alu.Flags.Greater, "200 > 100 should set greater, flags are input-based not result-based")
	assert(t, !alu.Flags.Equals, "200 != 100")
	assert(t, !alu.Flags.Less, "200 is not less than 100")
}

func TestAluAddcUsesCarryFromOverflowFlag(t *testing.T) {
	var regs Registers
	regs.BeginCycle()
	regs.Write(1, 1)
	regs.Write(2, 1)
	regs.EndCycle()

	alu := ALU{Flags: AluFlags{Overflow: true}}
	var inputReg int32
	var waiting bool
	instr := Instruction{Operation: ADDC, A: Operand{Kind: Register, Data: 1}, B: Operand{Kind: Register, Data: 2}}
	alu.Execute(&regs, instr, &inputReg, &waiting)

	assert(t, alu.Accumulator == 3, "expected 1+1+carry(1)=3, got %d", alu.Accumulator)
}

func TestAluArgUReadsAccumulatorAsA(t *testing.T) {
	var regs Registers
	regs.BeginCycle()
	regs.Write(2, 5)
	regs.EndCycle()

	alu := ALU{Accumulator: 10}
	var inputReg int32
	var waiting bool
	instr := Instruction{Operation: SUB, Args: ArgU, B: Operand{Kind: Register, Data: 2}}
	alu.Execute(&regs, instr, &inputReg, &waiting)

	assert(t, alu.Accumulator == 5, "expected 10-5=5, got %d", alu.Accumulator)
}

func TestAluShrAndNotReadOnlyB(t *testing.T) {
	var regs Registers
	regs.BeginCycle()
	regs.Write(3, 6)
	regs.EndCycle()

	var alu ALU
	var inputReg int32
	var waiting bool

	shr := Instruction{Operation: SHR, B: Operand{Kind: Register, Data: 3}}
	alu.Execute(&regs, shr, &inputReg, &waiting)
	assert(t, alu.Accumulator == 3, "expected 6>>1=3, got %d", alu.Accumulator)

	not := Instruction{Operation: NOT, B: Operand{Kind: Register, Data: 3}}
	alu.Execute(&regs, not, &inputReg, &waiting)
	assert(t, alu.Accumulator == ^byte(6), "expected bitwise NOT of 6, got %d", alu.Accumulator)
}

func TestAluInpSetsWaitingAndTargetRegister(t *testing.T) {
	var regs Registers
	var alu ALU
	var inputReg int32
	var waiting bool

	instr := Instruction{Operation: INP, A: Operand{Kind: Register, Data: 4}}
	alu.Execute(&regs, instr, &inputReg, &waiting)

	assert(t, waiting, "INP must set waiting_for_input")
	assert(t, inputReg == 4, "expected input register 4, got %d", inputReg)
	assert(t, alu.Accumulator == 0, "INP must not touch the accumulator directly, it's resolved later")
}

func TestAluNonArithmeticOpsDoNotTouchFlags(t *testing.T) {
	var regs Registers
	var alu ALU
	var inputReg int32
	var waiting bool

	mov := Instruction{Operation: MOV}
	alu.Execute(&regs, mov, &inputReg, &waiting)
	assert(t, alu.Accumulator == 0, "MOV is not an ALU op, accumulator must be untouched")
	assert(t, !alu.Flags.Equals && !alu.Flags.Greater && !alu.Flags.Less && !alu.Flags.Overflow,
		"MOV must not disturb flags")
}
