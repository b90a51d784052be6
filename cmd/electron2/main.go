// Command electron2 assembles and runs an Electron 2 program on the
// pipelined emulator, driving the clock at a configurable rate and
// rendering a terminal dashboard of the pipeline latches, ALU and memory
// between ticks.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"electron2/core"

	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "electron2",
		Usage:   "assemble and run an Electron 2 program",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "assembly source file to load and run",
				Required: true,
			},
			&cli.Float64Flag{
				Name:    "clock",
				Aliases: []string{"c"},
				Usage:   "clock rate in Hz",
				Value:   1.0,
			},
			&cli.BoolFlag{
				Name:  "nt",
				Usage: "disable the terminal dashboard",
			},
			&cli.BoolFlag{
				Name:  "fps",
				Usage: "print the measured tick rate under the dashboard",
			},
			&cli.BoolFlag{
				Name:  "v2",
				Usage: "accepted for compatibility; this build always runs Electron 2",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "electron2:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.String("file")
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	emu, err := core.NewEmulator(string(source))
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	for _, e := range emu.Errors() {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	for _, w := range emu.Warnings() {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	clockHz := c.Float64("clock")
	if clockHz <= 0 {
		clockHz = 1.0
	}
	tickInterval := time.Duration(float64(time.Second) / clockHz)
	showDashboard := !c.Bool("nt")
	showTickRate := c.Bool("fps")

	stdin := bufio.NewReader(os.Stdin)
	ticks := 0
	start := time.Now()

	// Runs until interrupted: the emulator has no defined halt instruction,
	// matching the original's continuous clock-driven loop.
	for {
		if emu.WaitingForInput() {
			fmt.Print("input> ")
			line, _ := stdin.ReadString('\n')
			value, convErr := strconv.Atoi(strings.TrimSpace(line))
			if convErr != nil {
				fmt.Fprintln(os.Stderr, "expected an integer 0-255")
				continue
			}
			emu.ResolveInput(byte(value))
			continue
		}

		emu.Clock()
		ticks++

		if showDashboard {
			clearScreen()
			renderDashboard(emu)
			if showTickRate {
				fmt.Printf("%.1f ticks/sec\n", float64(ticks)/time.Since(start).Seconds())
			}
		}

		time.Sleep(tickInterval)
	}
}
