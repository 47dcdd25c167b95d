package dis

// Stats contains aggregate statistics about a bytecode buffer.
// This is useful for sizing up a contract before reading the listing.
type Stats struct {
	// ByteLength is the total input buffer length.
	ByteLength int `json:"byte_length"`

	// OpcodeCount is the number of decoded instructions, INVALID markers
	// included.
	OpcodeCount int `json:"opcode_count"`

	// MaxStackDepth is the highest value reached by a running sum of each
	// opcode's stack delta, starting from zero. A static syntactic
	// estimate, not an execution trace.
	MaxStackDepth int `json:"max_stack_depth"`
}

// ComputeStats folds the instruction sequence for the buffer into a Stats
// value in a single pass. The running depth is not clamped at zero: code
// with more pops than pushes drives it negative, which simply cannot
// raise the reported maximum. Always succeeds; an empty buffer produces
// all-zero stats.
func ComputeStats(code []byte) Stats {
	stats := Stats{ByteLength: len(code)}
	depth := 0
	for ins := range Instructions(code) {
		stats.OpcodeCount++
		depth += ins.Op.StackDelta
		if depth > stats.MaxStackDepth {
			stats.MaxStackDepth = depth
		}
	}
	return stats
}
