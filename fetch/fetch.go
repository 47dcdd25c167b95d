// Package fetch obtains EVM bytecode from the supported input sources:
// hex strings, files, standard input and deployed contracts. All input
// validation happens here; the disassembler itself receives only raw,
// already-decoded bytes.
package fetch

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrEmptyInput is returned when a source yields no usable hex data.
var ErrEmptyInput = errors.New("empty hex string provided")

// Source is an origin of EVM bytecode.
type Source interface {
	fetch(ctx context.Context) ([]byte, error)
}

// HexSource is a hex string supplied directly, with or without a 0x
// prefix.
type HexSource string

// FileSource is a path to a file containing a hex string.
type FileSource string

// StdinSource reads a hex string from the given reader, normally
// os.Stdin.
type StdinSource struct {
	R io.Reader
}

// AddressSource fetches deployed contract code over JSON-RPC.
type AddressSource struct {
	Address common.Address
	RPCURL  string
}

// Bytes fetches and decodes bytecode from the given source.
func Bytes(ctx context.Context, src Source) ([]byte, error) {
	return src.fetch(ctx)
}

func (s HexSource) fetch(context.Context) ([]byte, error) {
	return DecodeHex(string(s))
}

func (s FileSource) fetch(context.Context) ([]byte, error) {
	return ReadFile(string(s))
}

func (s StdinSource) fetch(context.Context) ([]byte, error) {
	return ReadStdin(s.R)
}

func (s AddressSource) fetch(ctx context.Context) ([]byte, error) {
	return Code(ctx, s.Address, s.RPCURL)
}

// DecodeHex decodes a hex string into bytes. Surrounding whitespace and
// an optional 0x prefix are tolerated; empty strings, odd lengths and
// non-hex characters are rejected.
func DecodeHex(s string) ([]byte, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if cleaned == "" {
		return nil, ErrEmptyInput
	}
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf(
			"invalid hex string length (%d): hex strings must have an even number of characters",
			len(cleaned))
	}
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.New("invalid hex characters found: only 0-9, a-f, and A-F are allowed")
	}
	return b, nil
}

// ReadFile reads a hex string from the file at path and decodes it.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	return DecodeHex(trimmed)
}

// ReadStdin reads a hex string from r until EOF and decodes it.
func ReadStdin(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil, errors.New("no input provided via stdin")
	}
	return DecodeHex(trimmed)
}
