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

package hwy

import "github.com/klauspost/cpuid/v2"

// defaultL2Bytes is assumed when the CPU does not report its L2 size.
const defaultL2Bytes = 256 << 10

// CPUBrand returns the CPU brand string, or "" when unknown.
func CPUBrand() string {
	return cpuid.CPU.BrandName
}

// CacheL2Bytes returns the per-core L2 cache size in bytes. Falls back to
// 256 KiB when the size cannot be detected (common on arm64 and in VMs).
func CacheL2Bytes() int {
	if l2 := cpuid.CPU.Cache.L2; l2 > 0 {
		return l2
	}
	return defaultL2Bytes
}

// LogicalCores returns the number of logical cores reported by CPUID, or 0
// when unknown.
func LogicalCores() int {
	return max(cpuid.CPU.LogicalCores, 0)
}
