// Package hwy provides portable lane types and runtime CPU dispatch for the
// numerics kernels.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. The CPU is inspected once at process start, the
// widest usable vector width is recorded, and kernels consult that record
// instead of re-checking feature flags per call.
//
// Basic usage:
//
//	import "github.com/go-highway/numerics/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.CurrentWidth())
//
//	// Fold data into lane-wise running extrema
//	var hiBuf, loBuf [8]float32
//	hi, lo := hwy.Wrap(hiBuf[:]), hwy.Wrap(loBuf[:])
//	hwy.LoadInto(hi, data)
//	hwy.LoadInto(lo, data)
//	hwy.MaxMinInPlace(hi, lo, data[hi.NumLanes():])
//	max, min := hwy.ReduceMax(hi), hwy.ReduceMin(lo)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every type in the set is totally ordered by < and > except for NaN floats.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. It wraps a slice whose length is the
// number of lanes.
//
// Vec instances are created with Wrap and alias the caller's storage, so hot
// loops fold into a stack-allocated array without per-chunk allocations.
type Vec[T Lanes] struct {
	data []T
}

// Wrap returns a vector whose lanes alias storage. The number of lanes is
// len(storage).
func Wrap[T Lanes](storage []T) Vec[T] {
	return Vec[T]{data: storage}
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}
