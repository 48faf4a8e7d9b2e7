//go:build arm64

package hwy

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	setup(DetectCapabilities())
}

// DetectCapabilities queries the CPU feature flags. It ignores HWY_NO_SIMD;
// use CurrentCapabilities for the snapshot the kernels dispatch on.
func DetectCapabilities() Capabilities {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for consistency.
	return Capabilities{
		Arch: runtime.GOARCH,
		NEON: cpu.ARM64.HasASIMD,
		SVE:  cpu.ARM64.HasSVE,
	}
}
