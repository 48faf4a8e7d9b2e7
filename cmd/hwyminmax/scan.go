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
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-highway/numerics/hwy"
	"github.com/go-highway/numerics/hwy/contrib/extrema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type scanFlags struct {
	input   string
	format  string
	elem    string
	random  int
	seed    uint64
	start   int
	length  int
	repeat  int
	config  string
	verbose bool

	sequential bool
	workers    int
	fallback   bool
	batchSize  int
	laneWidth  string
}

var elemTypes = []string{"float32", "float64", "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

func newScanCmd() *cobra.Command {
	return bindScanCmd(&scanFlags{})
}

// bindScanCmd builds the scan command with its flags bound to f.
func bindScanCmd(f *scanFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find the maximum and minimum of a buffer",
		Long: `scan loads a buffer from a file (or stdin with --input -) or generates a
random one, then reports its maximum and minimum together with the time the
reduction took.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Input file, - for stdin")
	fl.StringVar(&f.format, "format", "text", "Input format: text or binary (little-endian)")
	fl.StringVarP(&f.elem, "type", "t", "float32", "Element type: "+strings.Join(elemTypes, ", "))
	fl.IntVar(&f.random, "random", 0, "Generate this many random elements instead of reading input")
	fl.Uint64Var(&f.seed, "seed", 1, "Seed for --random")
	fl.IntVar(&f.start, "start", 0, "First element of the range")
	fl.IntVar(&f.length, "length", -1, "Number of elements in the range (-1 = to the end)")
	fl.IntVar(&f.repeat, "repeat", 1, "Run the reduction this many times and report the fastest")
	fl.StringVar(&f.config, "config", "", "YAML file with reduction settings")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log the resolved settings")

	fl.BoolVar(&f.sequential, "sequential", false, "Scan on one goroutine")
	fl.IntVarP(&f.workers, "workers", "w", 0, "Number of workers (0 = auto)")
	fl.BoolVar(&f.fallback, "fallback", false, "Use batched data-parallel distribution over a worker pool")
	fl.IntVar(&f.batchSize, "batch-size", 0, "Elements per batch with --fallback (0 = from L2 size)")
	fl.StringVar(&f.laneWidth, "lane-width", "auto", "Force a lane width: auto, scalar, 128, 256, 512")

	cmd.MarkFlagsMutuallyExclusive("input", "random")
	cmd.MarkFlagsOneRequired("input", "random")
	cmd.MarkFlagsMutuallyExclusive("sequential", "fallback")
	return cmd
}

// resolveConfig layers the config file, the environment and the flags the
// user set.
func resolveConfig(cmd *cobra.Command, f *scanFlags) (extrema.Config, error) {
	cfg := extrema.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = extrema.LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("fallback") {
		cfg.DataParallel = f.fallback
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = f.batchSize
	}
	if flags.Changed("lane-width") {
		w, err := extrema.ParseLaneWidth(f.laneWidth)
		if err != nil {
			return cfg, err
		}
		cfg.LaneWidth = w
	}
	return cfg, cfg.Validate()
}

func runScan(cmd *cobra.Command, f *scanFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if f.verbose {
		log.Printf("config: workers=%d data_parallel=%v batch_size=%d lane_width=%s sequential=%v",
			cfg.Workers, cfg.DataParallel, cfg.BatchSize, cfg.LaneWidth, f.sequential)
	}

	switch f.elem {
	case "float32":
		return scanAs[float32](cmd, f, cfg)
	case "float64":
		return scanAs[float64](cmd, f, cfg)
	case "int8":
		return scanAs[int8](cmd, f, cfg)
	case "int16":
		return scanAs[int16](cmd, f, cfg)
	case "int32":
		return scanAs[int32](cmd, f, cfg)
	case "int64":
		return scanAs[int64](cmd, f, cfg)
	case "uint8":
		return scanAs[uint8](cmd, f, cfg)
	case "uint16":
		return scanAs[uint16](cmd, f, cfg)
	case "uint32":
		return scanAs[uint32](cmd, f, cfg)
	case "uint64":
		return scanAs[uint64](cmd, f, cfg)
	}
	return fmt.Errorf("unsupported --type %q (want one of %s)", f.elem, strings.Join(elemTypes, ", "))
}

// scanReport is what one scan prints.
type scanReport[T hwy.Lanes] struct {
	elem     string
	total    int
	start    int
	length   int
	strategy string
	result   extrema.Result[T]
	best     time.Duration
}

func scanAs[T hwy.Lanes](cmd *cobra.Command, f *scanFlags, cfg extrema.Config) error {
	loadStart := time.Now()
	buf, err := loadBuffer[T](f)
	if err != nil {
		return err
	}
	if f.verbose {
		log.Printf("loaded %d %s elements in %v", len(buf), f.elem, time.Since(loadStart).Round(time.Microsecond))
	}

	length := f.length
	if length < 0 {
		length = max(len(buf)-f.start, 0)
	}

	rep := scanReport[T]{
		elem:   f.elem,
		total:  len(buf),
		start:  f.start,
		length: length,
		best:   time.Duration(math.MaxInt64),
	}
	if f.sequential {
		rep.strategy = "sequential"
	} else {
		strategy := lo.Ternary(cfg.DataParallel, "pool", "task")
		rep.strategy = fmt.Sprintf("%s, %d workers", strategy, extrema.ResolveWorkers(cfg.Workers, max(length, 1)))
	}

	for range max(f.repeat, 1) {
		t0 := time.Now()
		res, err := reduce(cmd.Context(), buf, f.start, length, cfg, f.sequential)
		if err != nil {
			return err
		}
		rep.best = min(rep.best, time.Since(t0))
		rep.result = res
	}

	printReport(cmd.OutOrStdout(), rep)
	return nil
}

// reduce runs one reduction of buf[start:start+length].
func reduce[T hwy.Lanes](ctx context.Context, buf []T, start, length int, cfg extrema.Config, sequential bool) (extrema.Result[T], error) {
	if sequential {
		hi, low, err := extrema.NewDispatcher[T](cfg.LaneWidth).MaxMinRange(buf, start, length)
		return extrema.Result[T]{Max: hi, Min: low}, err
	}

	fut, err := extrema.ParallelMaxMinRange(ctx, buf, start, length, cfg.Options()...)
	if err != nil {
		return extrema.Result[T]{}, err
	}
	return fut.Wait(ctx)
}

func printReport[T hwy.Lanes](w io.Writer, rep scanReport[T]) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "type        %s\n", rep.elem)
	p.Fprintf(w, "elements    %d\n", rep.total)
	p.Fprintf(w, "range       [%d, %d)\n", rep.start, rep.start+rep.length)
	p.Fprintf(w, "strategy    %s\n", rep.strategy)
	fmt.Fprintf(w, "max         %v\n", rep.result.Max)
	fmt.Fprintf(w, "min         %v\n", rep.result.Min)
	fmt.Fprintf(w, "elapsed     %v\n", rep.best)
	if secs := rep.best.Seconds(); secs > 0 {
		bytes := float64(rep.length) * float64(elemSize[T]())
		fmt.Fprintf(w, "throughput  %s/s\n", humanize.Bytes(uint64(bytes/secs)))
	}
}
