package startwatch

// filetimeSeconds converts a FILETIME expressed as low/high 32-bit halves
// of a 100-nanosecond tick count into seconds.
func filetimeSeconds(low, high uint32) float64 {
	ticks := uint64(high)<<32 | uint64(low)
	return float64(ticks) / 1e7
}
