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

package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-highway/numerics/hwy"
	"github.com/go-highway/numerics/hwy/contrib/extrema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print SIMD capabilities and the selected kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo(cmd.OutOrStdout())
			return nil
		},
	}
}

func printInfo(w io.Writer) {
	caps := hwy.CurrentCapabilities()
	flags := map[string]bool{
		"sse2":     caps.SSE2,
		"avx":      caps.AVX,
		"avx2":     caps.AVX2,
		"avx512f":  caps.AVX512F,
		"avx512bw": caps.AVX512BW,
		"avx512vl": caps.AVX512VL,
		"neon":     caps.NEON,
		"sve":      caps.SVE,
	}
	enabled := lo.Filter(lo.Keys(flags), func(name string, _ int) bool { return flags[name] })
	slices.Sort(enabled)

	width := extrema.DetectedWidth()
	vek := vek32.Info()

	fmt.Fprintf(w, "arch        %s\n", caps.Arch)
	fmt.Fprintf(w, "cpu         %s\n", lo.Ternary(hwy.CPUBrand() != "", hwy.CPUBrand(), "unknown"))
	fmt.Fprintf(w, "cores       %d logical, GOMAXPROCS %d\n", hwy.LogicalCores(), runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "l2 cache    %s\n", humanize.IBytes(uint64(hwy.CacheL2Bytes())))
	fmt.Fprintf(w, "features    %s\n", lo.Ternary(len(enabled) > 0, strings.Join(enabled, " "), "none"))
	fmt.Fprintf(w, "dispatch    %s (%d-byte vectors, %d float32 lanes)\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.ScalableTag[float32]{}.MaxLanes())
	fmt.Fprintf(w, "lane width  %s (%d float32 lanes, %d int8 lanes)\n",
		width, extrema.LanesOf[float32](width), extrema.LanesOf[int8](width))
	fmt.Fprintf(w, "vek32       accelerated=%v features=%v\n", vek.Acceleration, vek.CPUFeatures)
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "note        HWY_NO_SIMD is set; SIMD kernels are disabled")
	}
}
