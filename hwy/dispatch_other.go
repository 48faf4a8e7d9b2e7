//go:build !amd64 && !arm64

package hwy

import "runtime"

func init() {
	// Non-amd64/arm64 architectures fall back to scalar mode for now.
	setup(DetectCapabilities())
}

// DetectCapabilities reports no SIMD features on this architecture.
func DetectCapabilities() Capabilities {
	return Capabilities{Arch: runtime.GOARCH}
}
