package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evmlens/evmlens/fetch"
)

// resolveSource picks the bytecode source from the command line. Exactly
// one of the hex argument, --stdin, --file or --address must be given.
func resolveSource(cmd *cobra.Command, args []string) (fetch.Source, error) {
	stdinSet, _ := cmd.Flags().GetBool("stdin")
	file, _ := cmd.Flags().GetString("file")
	address, _ := cmd.Flags().GetString("address")
	hexProvided := len(args) > 0 && args[0] != ""

	count := 0
	if hexProvided {
		count++
	}
	if stdinSet {
		count++
	}
	if file != "" {
		count++
	}
	if address != "" {
		count++
	}
	if count > 1 {
		return nil, errors.New("multiple input sources specified")
	}
	if count == 0 {
		return nil, errors.New("no input provided")
	}

	switch {
	case stdinSet:
		return fetch.StdinSource{R: cmd.InOrStdin()}, nil
	case file != "":
		return fetch.FileSource(file), nil
	case address != "":
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("invalid contract address: %s", address)
		}
		rpcURL := viper.GetString("rpc-url")
		if rpcURL == "" {
			return nil, errors.New("no RPC endpoint configured: pass --rpc-url or set EVMLENS_RPC_URL")
		}
		return fetch.AddressSource{
			Address: common.HexToAddress(address),
			RPCURL:  rpcURL,
		}, nil
	default:
		return fetch.HexSource(args[0]), nil
	}
}

// stdoutIsTerminal is overridden in tests.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
