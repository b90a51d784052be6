package main

import (
	"fmt"
	"strings"

	"electron2/core"
)

// clearScreen resets the terminal cursor to the top-left and clears it,
// the same ANSI sequence the original dashboard used between frames.
func clearScreen() {
	fmt.Print("\x1B[2J\x1B[1;1H")
}

// printPort renders one output port as a label plus an 8-bit text graphic
// ("##" for 1, ".." for 0), matching the original's print_port.
func printPort(emu *core.Emulator, port int) {
	value := emu.PortsOut()[port]
	var bits strings.Builder
	for bit := 7; bit >= 0; bit-- {
		if value&(1<<uint(bit)) != 0 {
			bits.WriteString("##")
		} else {
			bits.WriteString("..")
		}
	}
	fmt.Printf("     Port %d: (%-3d)  %s\n", port, value, bits.String())
}

// renderDashboard prints the pipeline latches, ALU state, registers, RAM
// and stack, plus all eight output ports, as a plain-text terminal screen.
func renderDashboard(emu *core.Emulator) {
	fmt.Println("===     Electron 2 Pipeline     ===          === Ports ===")
	fmt.Println("___________________________________________")
	fmt.Print("| FETCH   | DECODE  | EXECUTE | WRITEBACK |")
	printPort(emu, 0)

	fmt.Printf("|%-9s|%-9s|%-9s|%-11s|",
		emu.FetchLatch().Operation.String(),
		emu.DecodeLatch().Operation.String(),
		emu.ExecuteLatch().Operation.String(),
		emu.WritebackLatch().Operation.String())
	printPort(emu, 1)

	fmt.Print("===           ALU          ===")
	printPort(emu, 2)
	fmt.Println("___________________________________________")
	printPort(emu, 3)

	flags := emu.Flags()
	fmt.Print("| Accumulator |           Flags           |")
	printPort(emu, 4)
	fmt.Printf("|      %-3d    | Equals: %-5t             |", emu.Accumulator(), flags.Equals)
	printPort(emu, 5)
	fmt.Printf("|             | Greater: %-5t            |", flags.Greater)
	printPort(emu, 6)
	fmt.Printf("|             | Less: %-5t               |", flags.Less)
	printPort(emu, 7)
	fmt.Printf("|             | Overflow: %-5t           |\n", flags.Overflow)

	fmt.Println()
	fmt.Println("___________________________________________")
	fmt.Println()
	fmt.Println("===         Memory         ===")
	fmt.Println("___________________________________________")
	fmt.Println("| Registers |      RAM      |     Stack    |")

	regs := emu.Registers()
	ram := emu.RAM()
	sp := emu.SP()
	for i := 0; i < 8; i++ {
		marker := "    "
		if sp == int32(i) || sp == int32(i+8) {
			marker = "< SP"
		}
		fmt.Printf("| R%d: %-3d  | #%02d: %-3d #%02d: %-3d | %s\n",
			i, regs[i], i, ram[i], i+8, ram[i+8], marker)
	}
	fmt.Printf("PC: %d\n", emu.PC())
}
