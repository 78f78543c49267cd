//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	mtx "github.com/mtxedit/mtx/types"
)

func TestSelectionNormalize(t *testing.T) {
	s := &Selection{Start: mtx.Point{Row: 3, Col: 5}, End: mtx.Point{Row: 1, Col: 1}}
	low, high := s.Normalize()
	assert.Equal(t, mtx.Point{Row: 1, Col: 1}, low)
	assert.Equal(t, mtx.Point{Row: 3, Col: 5}, high)

	s = &Selection{Start: mtx.Point{Row: 2, Col: 1}, End: mtx.Point{Row: 2, Col: 7}}
	low, high = s.Normalize()
	assert.Equal(t, mtx.Point{Row: 2, Col: 1}, low)
	assert.Equal(t, mtx.Point{Row: 2, Col: 7}, high)
}

func TestBeginSelection(t *testing.T) {
	p := mtx.Point{Row: 4, Col: 2}
	s := BeginSelection(p)
	assert.Equal(t, p, s.Start)
	assert.Equal(t, p, s.End)
}

func TestSelectionUpdate(t *testing.T) {
	b := bufferWithLines("abcde", "", "xy")
	s := BeginSelection(mtx.Point{})

	s.Update(mtx.Point{Row: 0, Col: 2}, b)
	assert.Equal(t, mtx.Point{Row: 0, Col: 2}, s.End)

	s.Update(mtx.Point{Row: 0, Col: 5}, b)
	assert.Equal(t, mtx.Point{Row: 0, Col: 4}, s.End, "the end is pulled back onto the last character")

	s.Update(mtx.Point{Row: 1, Col: 0}, b)
	assert.Equal(t, mtx.Point{Row: 1, Col: 0}, s.End)

	s.Update(mtx.Point{Row: 9, Col: 0}, b)
	assert.Equal(t, mtx.Point{Row: 1, Col: 0}, s.End, "rows outside the buffer are ignored")
	assert.Equal(t, mtx.Point{}, s.Start)
}

func TestSelectionContains(t *testing.T) {
	s := &Selection{Start: mtx.Point{Row: 2, Col: 1}, End: mtx.Point{Row: 0, Col: 3}}
	assert.True(t, s.Contains(mtx.Point{Row: 0, Col: 3}))
	assert.True(t, s.Contains(mtx.Point{Row: 1, Col: 40}))
	assert.True(t, s.Contains(mtx.Point{Row: 2, Col: 1}))
	assert.False(t, s.Contains(mtx.Point{Row: 0, Col: 2}))
	assert.False(t, s.Contains(mtx.Point{Row: 2, Col: 2}))
}

func TestSelectionHighlighter(t *testing.T) {
	h := NewSelectionHighlighter(&Selection{Start: mtx.Point{Row: 1, Col: 2}, End: mtx.Point{Row: 0, Col: 3}})
	assert.Equal(t, []mtx.Style{mtx.StyleText, mtx.StyleText, mtx.StyleText, mtx.StyleSelected, mtx.StyleSelected},
		h.Highlight(0, 0, 5))
	assert.Equal(t, []mtx.Style{mtx.StyleSelected, mtx.StyleSelected, mtx.StyleSelected, mtx.StyleText},
		h.Highlight(1, 0, 4))
	assert.Equal(t, []mtx.Style{mtx.StyleText, mtx.StyleText}, h.Highlight(2, 0, 2))
}
