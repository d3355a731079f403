//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	setScalarMode()
}

// HasAVX512 returns false on non-x86 architectures.
func HasAVX512() bool {
	return false
}
