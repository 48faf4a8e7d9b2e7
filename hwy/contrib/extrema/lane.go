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

package extrema

import (
	"fmt"
	"strings"

	"github.com/go-highway/numerics/hwy"
	"gopkg.in/yaml.v3"
)

// LaneWidth is the vector width a scan kernel emulates.
type LaneWidth int

const (
	// LanesAuto selects the widest width the CPU supports.
	LanesAuto LaneWidth = -1

	LanesScalar LaneWidth = iota - 1
	Lanes128
	Lanes256
	Lanes512
)

// Tag returns the hwy vector tag of w, nil for LanesScalar and LanesAuto.
func (w LaneWidth) Tag() hwy.Tag {
	switch w {
	case Lanes128:
		return hwy.FixedTag128[uint8]{}
	case Lanes256:
		return hwy.FixedTag256[uint8]{}
	case Lanes512:
		return hwy.FixedTag512[uint8]{}
	default:
		return nil
	}
}

// Bytes returns the vector width in bytes, 0 for LanesScalar.
func (w LaneWidth) Bytes() int {
	if tag := w.Tag(); tag != nil {
		return tag.Width()
	}
	return 0
}

func (w LaneWidth) String() string {
	switch w {
	case LanesAuto:
		return "auto"
	case LanesScalar:
		return "scalar"
	case Lanes128:
		return "128"
	case Lanes256:
		return "256"
	case Lanes512:
		return "512"
	default:
		return fmt.Sprintf("LaneWidth(%d)", int(w))
	}
}

// ParseLaneWidth parses the String form of a LaneWidth. The empty string is
// LanesAuto; a "bit" suffix is accepted ("256bit").
func ParseLaneWidth(s string) (LaneWidth, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "bit")
	switch s {
	case "", "auto":
		return LanesAuto, nil
	case "scalar", "0":
		return LanesScalar, nil
	case "128":
		return Lanes128, nil
	case "256":
		return Lanes256, nil
	case "512":
		return Lanes512, nil
	}
	return LanesAuto, fmt.Errorf("extrema: unknown lane width %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *LaneWidth) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseLaneWidth(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*w = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w LaneWidth) MarshalYAML() (any, error) {
	return w.String(), nil
}

// LanesOf returns how many T lanes a vector of width w holds. LanesScalar
// (and LanesAuto) hold one.
func LanesOf[T hwy.Lanes](w LaneWidth) int {
	switch w {
	case Lanes128:
		return hwy.FixedTag128[T]{}.MaxLanes()
	case Lanes256:
		return hwy.FixedTag256[T]{}.MaxLanes()
	case Lanes512:
		return hwy.FixedTag512[T]{}.MaxLanes()
	default:
		return 1
	}
}
