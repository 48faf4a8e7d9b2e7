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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanesOf(t *testing.T) {
	assert.Equal(t, 1, LanesOf[float32](LanesScalar))
	assert.Equal(t, 4, LanesOf[float32](Lanes128))
	assert.Equal(t, 8, LanesOf[float32](Lanes256))
	assert.Equal(t, 16, LanesOf[float32](Lanes512))
	assert.Equal(t, 4, LanesOf[float64](Lanes256))
	assert.Equal(t, 64, LanesOf[int8](Lanes512))
	assert.Equal(t, 8, LanesOf[uint16](Lanes128))
	assert.Equal(t, 1, LanesOf[float64](LanesAuto))
}

func TestLaneWidthBytes(t *testing.T) {
	assert.Equal(t, 0, LanesScalar.Bytes())
	assert.Equal(t, 16, Lanes128.Bytes())
	assert.Equal(t, 32, Lanes256.Bytes())
	assert.Equal(t, 64, Lanes512.Bytes())
}

func TestLaneWidthTag(t *testing.T) {
	assert.Nil(t, LanesScalar.Tag())
	assert.Nil(t, LanesAuto.Tag())
	for _, w := range []LaneWidth{Lanes128, Lanes256, Lanes512} {
		tag := w.Tag()
		require.NotNil(t, tag, "width %v", w)
		assert.Equal(t, w.Bytes(), tag.Width())
		assert.Equal(t, w.String()+"bit", tag.Name())
		assert.Equal(t, tag.Width(), LanesOf[uint8](w))
	}
}

func TestParseLaneWidth(t *testing.T) {
	for _, w := range append([]LaneWidth{LanesAuto}, widths...) {
		got, err := ParseLaneWidth(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	got, err := ParseLaneWidth(" 512bit ")
	require.NoError(t, err)
	assert.Equal(t, Lanes512, got)

	got, err = ParseLaneWidth("")
	require.NoError(t, err)
	assert.Equal(t, LanesAuto, got)

	_, err = ParseLaneWidth("1024")
	assert.Error(t, err)
}
