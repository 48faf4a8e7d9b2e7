// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package hwy

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func init() {
	setup(DetectCapabilities())
}

// DetectCapabilities queries the CPU feature flags. It ignores HWY_NO_SIMD;
// use CurrentCapabilities for the snapshot the kernels dispatch on.
//
// AVX-512 is only reported when both x/sys/cpu and cpuid agree: cpuid also
// checks that the OS saves the ZMM state (XCR0), which some hypervisors mask
// while still advertising the CPUID bits.
func DetectCapabilities() Capabilities {
	return Capabilities{
		Arch:     runtime.GOARCH,
		SSE2:     cpu.X86.HasSSE2,
		AVX:      cpu.X86.HasAVX,
		AVX2:     cpu.X86.HasAVX2 && cpuid.CPU.Supports(cpuid.AVX2),
		AVX512F:  cpu.X86.HasAVX512F && cpuid.CPU.Supports(cpuid.AVX512F),
		AVX512BW: cpu.X86.HasAVX512BW && cpuid.CPU.Supports(cpuid.AVX512BW),
		AVX512VL: cpu.X86.HasAVX512VL && cpuid.CPU.Supports(cpuid.AVX512VL),
	}
}
