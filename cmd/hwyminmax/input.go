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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-highway/numerics/hwy"
	"github.com/samber/lo"
)

// elemSize returns the size of T in bytes.
func elemSize[T hwy.Lanes]() int {
	var zero T
	return binary.Size(zero)
}

// parseValue parses one number of type T, rejecting values out of its range.
func parseValue[T hwy.Lanes](s string) (T, error) {
	var zero T
	bits := elemSize[T]() * 8
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	case int8, int16, int32, int64:
		n, err := strconv.ParseInt(s, 10, bits)
		return T(n), err
	default:
		n, err := strconv.ParseUint(s, 10, bits)
		return T(n), err
	}
}

// readText reads numbers separated by whitespace or commas. Lines starting
// with # are skipped.
func readText[T hwy.Lanes](r io.Reader) ([]T, error) {
	var buf []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			v, err := parseValue[T](field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			buf = append(buf, v)
		}
	}
	return buf, sc.Err()
}

// readBinary decodes a little-endian array of T.
func readBinary[T hwy.Lanes](r io.Reader) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	size := elemSize[T]()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("binary input of %d bytes is not a multiple of the %d-byte element size", len(data), size)
	}
	buf := make([]T, len(data)/size)
	if _, err := binary.Decode(data, binary.LittleEndian, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// randomBuffer returns n pseudo-random values: normally distributed around
// zero for floats, uniform over the whole range for integers.
func randomBuffer[T hwy.Lanes](n int, seed uint64) []T {
	r := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return lo.Times(n, func(int) T { return T(r.NormFloat64() * 1000) })
	default:
		return lo.Times(n, func(int) T { return T(r.Uint64()) })
	}
}

// loadBuffer returns the buffer described by the scan flags.
func loadBuffer[T hwy.Lanes](f *scanFlags) ([]T, error) {
	if f.input == "" {
		if f.random <= 0 {
			return nil, fmt.Errorf("--random must be positive, got %d", f.random)
		}
		return randomBuffer[T](f.random, f.seed), nil
	}

	var r io.Reader = os.Stdin
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	switch f.format {
	case "text":
		buf, err := readText[T](r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.input, err)
		}
		return buf, nil
	case "binary":
		buf, err := readBinary[T](r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.input, err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("unknown --format %q (want text or binary)", f.format)
	}
}
