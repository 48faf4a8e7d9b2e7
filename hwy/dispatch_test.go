package hwy

import (
	"runtime"
	"testing"
)

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" {
		t.Error("CurrentName should not be empty")
	}

	if NoSimdEnv() && level != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but level is %v", level)
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()
	maxI32 := MaxLanes[int32]()

	t.Logf("MaxLanes: float32=%d, float64=%d, int32=%d", maxF32, maxF64, maxI32)

	if maxF32 <= 0 {
		t.Error("MaxLanes[float32] should be positive")
	}

	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}

	if maxI32 != maxF32 {
		t.Errorf("MaxLanes: int32 lanes (%d) != float32 lanes (%d)", maxI32, maxF32)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name      string
		caps      Capabilities
		wantLevel DispatchLevel
		wantWidth int
	}{
		{"none", Capabilities{}, DispatchScalar, 16},
		{"sse2", Capabilities{SSE2: true}, DispatchSSE2, 16},
		{"avx2", Capabilities{SSE2: true, AVX: true, AVX2: true}, DispatchAVX2, 32},
		{"avx512 needs bw", Capabilities{SSE2: true, AVX2: true, AVX512F: true}, DispatchAVX2, 32},
		{"avx512", Capabilities{SSE2: true, AVX2: true, AVX512F: true, AVX512BW: true}, DispatchAVX512, 64},
		{"neon", Capabilities{NEON: true}, DispatchNEON, 16},
		{"sve", Capabilities{NEON: true, SVE: true}, DispatchSVE, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, width := levelFor(tt.caps)
			if level != tt.wantLevel || width != tt.wantWidth {
				t.Errorf("levelFor(%+v) = (%v, %d), want (%v, %d)", tt.caps, level, width, tt.wantLevel, tt.wantWidth)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	caps := CurrentCapabilities()
	t.Logf("Capabilities: %+v", caps)

	if caps.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", caps.Arch, runtime.GOARCH)
	}
	if caps.Has512() && !caps.AVX512F {
		t.Error("Has512 without AVX512F")
	}
	if NoSimdEnv() && (caps.Has128() || caps.Has256() || caps.Has512()) {
		t.Errorf("HWY_NO_SIMD set but capabilities report SIMD: %+v", caps)
	}
	if runtime.GOARCH == "amd64" && !NoSimdEnv() && !caps.SSE2 {
		t.Error("amd64 without SSE2")
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with HWY_NO_SIMD=%q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	for _, level := range []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON, DispatchSVE} {
		if level.String() == "" {
			t.Errorf("DispatchLevel(%d).String() is empty", int(level))
		}
	}
}

func TestCPUInfo(t *testing.T) {
	t.Logf("CPU: %q, L2: %d bytes, logical cores: %d", CPUBrand(), CacheL2Bytes(), LogicalCores())
	if CacheL2Bytes() <= 0 {
		t.Errorf("CacheL2Bytes() = %d, want > 0", CacheL2Bytes())
	}
	if LogicalCores() < 0 {
		t.Errorf("LogicalCores() = %d, want >= 0", LogicalCores())
	}
}
