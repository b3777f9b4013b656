package rangeallocator

// roundUp rounds v up to the nearest multiple of granularity.
func roundUp(v, granularity uint64) uint64 {
	return ((v + granularity - 1) / granularity) * granularity
}

// roundDown rounds v down to the nearest multiple of granularity.
func roundDown(v, granularity uint64) uint64 {
	return (v / granularity) * granularity
}

// aligned reports whether v is an exact multiple of granularity.
func aligned(v, granularity uint64) bool {
	return v%granularity == 0
}
