package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"

	"github.com/evmlens/evmlens/dis"
	"github.com/evmlens/evmlens/op"
)

var (
	dim       = color.New(color.FgHiBlack)
	errLabel  = color.New(color.FgHiRed, color.Bold)
	hintLabel = color.New(color.FgHiBlue, color.Bold)
	header    = color.New(color.FgHiBlue, color.Bold)
	footerNum = color.New(color.FgHiGreen, color.Bold)
)

// opcodeColor maps an opcode to its display color. The palette follows
// the opcode categories: stack ops green, arithmetic yellow, memory blue,
// storage magenta, crypto cyan, control flow red, termination white.
func opcodeColor(info op.Info) *color.Color {
	switch info.Category {
	case op.Stack:
		if info.Code.IsPush() {
			return color.New(color.FgHiGreen, color.Bold)
		}
		return color.New(color.FgGreen)
	case op.Arithmetic:
		return color.New(color.FgHiYellow, color.Bold)
	case op.Comparison, op.Bitwise:
		return color.New(color.FgYellow)
	case op.Memory:
		return color.New(color.FgHiBlue, color.Bold)
	case op.Storage:
		return color.New(color.FgHiMagenta, color.Bold)
	case op.Crypto:
		return color.New(color.FgHiCyan, color.Bold)
	case op.Control:
		return color.New(color.FgHiRed, color.Bold)
	case op.Call:
		return color.New(color.FgRed, color.Bold)
	case op.Create:
		return color.New(color.FgRed)
	case op.Termination:
		return color.New(color.FgHiWhite, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, header.Sprint("EVM BYTECODE DISASSEMBLY"))
	fmt.Fprintln(w, dim.Sprint(strings.Repeat("=", 50)))
}

func printInstruction(w io.Writer, ins dis.Instruction) {
	line := fmt.Sprintf("%s %s %s",
		dim.Sprintf("%04x", ins.Offset),
		dim.Sprint("│"),
		opcodeColor(ins.Op).Sprint(ins.Op.Name))
	if len(ins.Immediate) > 0 {
		line += " " + dim.Sprintf("0x%x", ins.Immediate)
	}
	fmt.Fprintln(w, line)
}

func printFooter(w io.Writer, total int) {
	fmt.Fprintln(w, dim.Sprint(strings.Repeat("=", 50)))
	fmt.Fprintf(w, "%s %s\n", footerNum.Sprintf("%d", total), dim.Sprint("opcodes total"))
}

func printStats(w io.Writer, stats dis.Stats) {
	fmt.Fprintln(w, dim.Sprint(strings.Repeat("-", 50)))
	fmt.Fprintf(w, "%s %d\n", dim.Sprint("byte length:    "), stats.ByteLength)
	fmt.Fprintf(w, "%s %d\n", dim.Sprint("opcode count:   "), stats.OpcodeCount)
	fmt.Fprintf(w, "%s %d\n", dim.Sprint("max stack depth:"), stats.MaxStackDepth)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errLabel.Sprint("Error:"), err)
}

func printUsageHint(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, hintLabel.Sprint("Usage examples:"))
	fmt.Fprintf(w, "  %s 60FF61ABCD00\n", color.GreenString("evmlens"))
	fmt.Fprintf(w, "  %s 0x60FF61ABCD00\n", color.GreenString("evmlens"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, dim.Sprint("The input should be valid hexadecimal EVM bytecode."))
}

type jsonInstruction struct {
	Offset    int    `json:"offset"`
	Opcode    string `json:"opcode"`
	Immediate string `json:"immediate,omitempty"`
	Category  string `json:"category"`
}

type jsonResult struct {
	Instructions []jsonInstruction `json:"instructions"`
	Stats        dis.Stats         `json:"stats"`
}

func writeJSON(w io.Writer, instructions []dis.Instruction, stats dis.Stats) error {
	result := jsonResult{
		Instructions: make([]jsonInstruction, 0, len(instructions)),
		Stats:        stats,
	}
	for _, ins := range instructions {
		ji := jsonInstruction{
			Offset:   ins.Offset,
			Opcode:   ins.Op.Name,
			Category: ins.Op.Category.String(),
		}
		if len(ins.Immediate) > 0 {
			ji.Immediate = fmt.Sprintf("0x%x", ins.Immediate)
		}
		result.Instructions = append(result.Instructions, ji)
	}

	var data []byte
	var err error
	if !color.NoColor && stdoutIsTerminal() {
		data, err = prettyjson.Marshal(result)
	} else {
		data, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
