package fetch

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Code fetches the deployed bytecode for the given contract address at
// the latest block via eth_getCode.
func Code(ctx context.Context, address common.Address, rpcURL string) ([]byte, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint %s: %w", rpcURL, err)
	}
	defer client.Close()

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch code for %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf(
			"address %s has no contract code (might be an EOA or empty contract)",
			address.Hex())
	}
	return code, nil
}
