package hwy

import (
	"os"
	"runtime"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	// Only the 128-bit minimum vector length is assumed.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Capabilities is an immutable snapshot of the CPU features relevant to
// lane-width selection.
type Capabilities struct {
	// Arch is runtime.GOARCH of the running binary.
	Arch string

	SSE2     bool
	AVX      bool
	AVX2     bool
	AVX512F  bool
	AVX512BW bool
	AVX512VL bool

	NEON bool
	SVE  bool
}

// Has512 reports whether 512-bit vectors are usable for all lane types.
func (c Capabilities) Has512() bool {
	return c.AVX512F && c.AVX512BW
}

// Has256 reports whether 256-bit vectors are usable for all lane types.
func (c Capabilities) Has256() bool {
	return c.AVX2
}

// Has128 reports whether 128-bit vectors are usable.
func (c Capabilities) Has128() bool {
	return c.SSE2 || c.NEON || c.SVE
}

// currentCaps is the capability snapshot taken by init() in dispatch_*.go.
// It is never written after init.
var currentCaps Capabilities

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// CurrentCapabilities returns the capabilities detected at process start.
// When HWY_NO_SIMD is set all SIMD flags are reported as false.
func CurrentCapabilities() Capabilities {
	return currentCaps
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setup records caps and derives the dispatch level from them. Called once
// from the architecture init().
func setup(caps Capabilities) {
	if NoSimdEnv() {
		caps = Capabilities{Arch: runtime.GOARCH}
	}
	currentCaps = caps
	currentLevel, currentWidth = levelFor(caps)
	currentName = currentLevel.String()
}

// levelFor picks the widest level supported by caps.
func levelFor(caps Capabilities) (DispatchLevel, int) {
	switch {
	case caps.Has512():
		return DispatchAVX512, 64
	case caps.Has256():
		return DispatchAVX2, 32
	case caps.SSE2:
		return DispatchSSE2, 16
	case caps.SVE:
		return DispatchSVE, 16
	case caps.NEON:
		return DispatchNEON, 16
	default:
		// Use 16-byte vectors even in scalar mode for consistency
		return DispatchScalar, 16
	}
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
