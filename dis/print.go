package dis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Print renders the instructions as an aligned table.
func Print(instructions []Instruction, w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"OFFSET", "OPCODE", "IMMEDIATE", "CATEGORY"})
	for _, ins := range instructions {
		var imm string
		if len(ins.Immediate) > 0 {
			imm = fmt.Sprintf("0x%x", ins.Immediate)
		}
		table.Append([]string{
			strconv.Itoa(ins.Offset),
			ins.Op.Name,
			imm,
			ins.Op.Category.String(),
		})
	}
	table.Render()
}
