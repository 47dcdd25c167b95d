package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evmlens/evmlens/dis"
	"github.com/evmlens/evmlens/fetch"
)

func runDisassemble(cmd *cobra.Command, args []string) error {
	src, err := resolveSource(cmd, args)
	if err != nil {
		return err
	}

	log.Debug().Msgf("fetching bytecode from %T", src)
	code, err := fetch.Bytes(cmd.Context(), src)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(code)).Msg("fetched bytecode")

	instructions := dis.Disassemble(code)
	stats := dis.ComputeStats(code)

	out := cmd.OutOrStdout()
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		return writeJSON(out, instructions, stats)
	case "", "text":
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	if table, _ := cmd.Flags().GetBool("table"); table {
		dis.Print(instructions, out)
	} else {
		printHeader(out)
		for _, ins := range instructions {
			printInstruction(out, ins)
		}
		printFooter(out, len(instructions))
	}

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		printStats(out, stats)
	}
	return nil
}
