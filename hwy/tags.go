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

import "unsafe"

// MaxVectorBytes is the widest vector this package models (512 bits).
// Lane storage sized for it fits every width and every lane type.
const MaxVectorBytes = 64

// MaxLanesAny is the largest lane count of any supported vector: 512 bits of
// 8-bit lanes.
const MaxLanesAny = MaxVectorBytes

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases as it provides
// optimal performance across different CPU architectures.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 describes a 128-bit vector (SSE2, NEON, the SVE minimum).
type FixedTag128[T Lanes] struct{}

func (FixedTag128[T]) Width() int { return 16 }
func (FixedTag128[T]) Name() string { return "128bit" }

// MaxLanes returns how many T lanes a 128-bit vector holds.
func (FixedTag128[T]) MaxLanes() int { return lanesIn[T](16) }

// FixedTag256 describes a 256-bit vector (AVX2).
type FixedTag256[T Lanes] struct{}

func (FixedTag256[T]) Width() int { return 32 }
func (FixedTag256[T]) Name() string { return "256bit" }

// MaxLanes returns how many T lanes a 256-bit vector holds.
func (FixedTag256[T]) MaxLanes() int { return lanesIn[T](32) }

// FixedTag512 describes a 512-bit vector (AVX-512 with BW), the widest this
// package models.
type FixedTag512[T Lanes] struct{}

func (FixedTag512[T]) Width() int { return MaxVectorBytes }
func (FixedTag512[T]) Name() string { return "512bit" }

// MaxLanes returns how many T lanes a 512-bit vector holds.
func (FixedTag512[T]) MaxLanes() int { return lanesIn[T](MaxVectorBytes) }

func lanesIn[T Lanes](widthBytes int) int {
	var dummy T
	return widthBytes / int(unsafe.Sizeof(dummy))
}
