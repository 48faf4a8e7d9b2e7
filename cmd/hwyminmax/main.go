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

// Command hwyminmax reports the SIMD dispatch of the running machine and
// finds the maximum and minimum of numeric buffers.
//
// Usage:
//
//	hwyminmax info
//	hwyminmax scan --random 10000000 --type float32 --workers 8
//	hwyminmax scan --input samples.txt --start 100 --length 5000 --sequential
//	hwyminmax scan --input samples.bin --format binary --type int16 --fallback
//
// Reduction settings are read, in increasing precedence, from the --config
// YAML file, the HWY_EXTREMA_* environment variables and the command line.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hwyminmax: ")

	rootCmd := &cobra.Command{
		Use:   "hwyminmax",
		Short: "Vectorized max/min reduction of numeric buffers",
		Long: `hwyminmax finds the maximum and minimum of a numeric buffer in one pass,
using the widest SIMD lane width the CPU supports, either on one core or
split across workers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newInfoCmd(), newScanCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
