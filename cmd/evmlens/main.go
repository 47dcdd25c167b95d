package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "evmlens [bytecode]",
		Short:   "A colorful EVM bytecode disassembler",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Long: `evmlens decodes raw EVM bytecode into a human-readable instruction
listing with aggregate statistics.

Bytecode may be given as a hex argument, read from a file or stdin, or
fetched from a deployed contract over JSON-RPC.`,
		Example: `  evmlens 60FF                    # Simple PUSH1 instruction
  evmlens 0x60FF61ABCD00          # Multiple instructions with 0x prefix
  evmlens --file contract.hex     # Read bytecode from a file
  cat contract.hex | evmlens --stdin
  evmlens --address 0xdAC17F958D2ee523a2206206994597C13D831ec7 \
      --rpc-url https://eth.example.org`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log = log.Level(zerolog.DebugLevel)
			}
		},
		RunE: runDisassemble,
	}

	cmd.Flags().Bool("stdin", false, "Read hex bytecode from stdin")
	cmd.Flags().StringP("file", "f", "", "Read hex bytecode from a file")
	cmd.Flags().StringP("address", "a", "", "Fetch deployed bytecode for a contract address")
	cmd.Flags().String("rpc-url", "", "Ethereum JSON-RPC endpoint for --address")
	cmd.Flags().BoolP("stats", "s", false, "Show disassembly statistics")
	cmd.Flags().Bool("table", false, "Render instructions as an aligned table")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.BindPFlag("rpc-url", cmd.Flags().Lookup("rpc-url"))

	return cmd
}

func initConfig() {
	viper.SetConfigName(".evmlens")
	viper.SetConfigType("yaml")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("EVMLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func main() {
	cobra.OnInitialize(initConfig)
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		printUsageHint(os.Stderr)
		os.Exit(1)
	}
}
