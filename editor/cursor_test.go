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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	mtx "github.com/mtxedit/mtx/types"
)

func TestClamp(t *testing.T) {
	b := bufferWithLines("abc", "", "hello")
	tests := []struct {
		mode mtx.Mode
		in   mtx.Point
		want mtx.Point
	}{
		{mtx.ModeNormal, mtx.Point{Row: 0, Col: 5}, mtx.Point{Row: 0, Col: 2}},
		{mtx.ModeVisual, mtx.Point{Row: 0, Col: 5}, mtx.Point{Row: 0, Col: 3}},
		{mtx.ModeInsert, mtx.Point{Row: 0, Col: 5}, mtx.Point{Row: 0, Col: 3}},
		{mtx.ModeNormal, mtx.Point{Row: 0, Col: 1}, mtx.Point{Row: 0, Col: 1}},
		{mtx.ModeNormal, mtx.Point{Row: 1, Col: 3}, mtx.Point{Row: 1, Col: 0}},
		{mtx.ModeInsert, mtx.Point{Row: 1, Col: 3}, mtx.Point{Row: 1, Col: 0}},
		{mtx.ModeNormal, mtx.Point{Row: 7, Col: 1}, mtx.Point{Row: 2, Col: 4}},
		{mtx.ModeVisual, mtx.Point{Row: 7, Col: 1}, mtx.Point{Row: 2, Col: 5}},
		{mtx.ModeInsert, mtx.Point{Row: 7, Col: 1}, mtx.Point{Row: 2, Col: 4}},
		{mtx.ModeNormal, mtx.Point{Row: -1, Col: -2}, mtx.Point{Row: 0, Col: 0}},
		{mtx.ModeCommand, mtx.Point{Row: 7, Col: 9}, mtx.Point{Row: 7, Col: 9}},
	}
	for _, tt := range tests {
		p := tt.in
		Clamp(&p, b, tt.mode)
		if p != tt.want {
			t.Errorf("Clamp(%+v, %s)=%+v, want %+v", tt.in, tt.mode, p, tt.want)
		}
	}
}

func TestClampEmptyBuffer(t *testing.T) {
	for _, mode := range []mtx.Mode{mtx.ModeNormal, mtx.ModeInsert, mtx.ModeVisual} {
		p := mtx.Point{Row: 3, Col: 3}
		Clamp(&p, NewBuffer(), mode)
		assert.Equal(t, mtx.Point{}, p, mode.String())
	}
}

func TestClampIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z\x{6f22}]{0,8}`), 0, 6).Draw(t, "lines")
		b := bufferWithLines(lines...)
		p := mtx.Point{
			Row: rapid.IntRange(-2, 10).Draw(t, "row"),
			Col: rapid.IntRange(-2, 12).Draw(t, "col"),
		}
		mode := rapid.SampledFrom([]mtx.Mode{mtx.ModeNormal, mtx.ModeInsert, mtx.ModeVisual, mtx.ModeCommand}).Draw(t, "mode")
		once := p
		Clamp(&once, b, mode)
		twice := once
		Clamp(&twice, b, mode)
		if once != twice {
			t.Fatalf("clamp %+v in %s: once=%+v twice=%+v", p, mode, once, twice)
		}
	})
}

func TestMoveRight(t *testing.T) {
	b := bufferWithLines("abc", "de")
	tests := []struct {
		opts MoveOptions
		in   mtx.Point
		want mtx.Point
	}{
		{MoveOptions{}, mtx.Point{Row: 0, Col: 0}, mtx.Point{Row: 0, Col: 1}},
		{MoveOptions{}, mtx.Point{Row: 0, Col: 2}, mtx.Point{Row: 0, Col: 2}},
		{MoveOptions{AllowWrap: true}, mtx.Point{Row: 0, Col: 2}, mtx.Point{Row: 1, Col: 0}},
		{MoveOptions{AllowEOL: true}, mtx.Point{Row: 0, Col: 2}, mtx.Point{Row: 0, Col: 3}},
		{MoveOptions{AllowEOL: true}, mtx.Point{Row: 0, Col: 3}, mtx.Point{Row: 0, Col: 3}},
		{MoveOptions{AllowEOL: true, AllowWrap: true}, mtx.Point{Row: 0, Col: 3}, mtx.Point{Row: 1, Col: 0}},
		{MoveOptions{AllowEOL: true, AllowWrap: true}, mtx.Point{Row: 1, Col: 2}, mtx.Point{Row: 1, Col: 2}},
		{MoveOptions{AllowEOL: true}, mtx.Point{Row: 4, Col: 0}, mtx.Point{Row: 4, Col: 0}},
	}
	for _, tt := range tests {
		p := tt.in
		MoveRight(&p, b, tt.opts)
		if p != tt.want {
			t.Errorf("MoveRight(%+v, %+v)=%+v, want %+v", tt.in, tt.opts, p, tt.want)
		}
	}
}

func TestMoveLeft(t *testing.T) {
	b := bufferWithLines("abc", "de")
	tests := []struct {
		opts MoveOptions
		in   mtx.Point
		want mtx.Point
	}{
		{MoveOptions{}, mtx.Point{Row: 0, Col: 2}, mtx.Point{Row: 0, Col: 1}},
		{MoveOptions{}, mtx.Point{Row: 0, Col: 0}, mtx.Point{Row: 0, Col: 0}},
		{MoveOptions{}, mtx.Point{Row: 1, Col: 0}, mtx.Point{Row: 1, Col: 0}},
		{MoveOptions{AllowWrap: true}, mtx.Point{Row: 1, Col: 0}, mtx.Point{Row: 0, Col: 2}},
		{MoveOptions{AllowWrap: true, AllowEOL: true}, mtx.Point{Row: 1, Col: 0}, mtx.Point{Row: 0, Col: 3}},
		{MoveOptions{}, mtx.Point{Row: 0, Col: 9}, mtx.Point{Row: 0, Col: 2}},
	}
	for _, tt := range tests {
		p := tt.in
		MoveLeft(&p, b, tt.opts)
		if p != tt.want {
			t.Errorf("MoveLeft(%+v, %+v)=%+v, want %+v", tt.in, tt.opts, p, tt.want)
		}
	}
}

func TestMoveUpDown(t *testing.T) {
	b := bufferWithLines("a", "b", "c")
	p := mtx.Point{Row: 1, Col: 5}
	MoveUp(&p, 3)
	assert.Equal(t, mtx.Point{Row: 0, Col: 5}, p, "columns are left for clamp to repair")
	MoveDown(&p, b, 0)
	assert.Equal(t, 1, p.Row)
	MoveDown(&p, b, 10)
	assert.Equal(t, 2, p.Row)
	MoveUp(&p, -4)
	assert.Equal(t, 1, p.Row)
}

func TestMoveToLineEnds(t *testing.T) {
	b := bufferWithLines("abc", "")
	p := mtx.Point{Row: 0, Col: 1}
	MoveToEndOfLine(&p, b, true)
	assert.Equal(t, 3, p.Col)
	MoveToEndOfLine(&p, b, false)
	assert.Equal(t, 2, p.Col)
	MoveToStartOfLine(&p)
	assert.Equal(t, 0, p.Col)
	p.Row = 1
	MoveToEndOfLine(&p, b, false)
	assert.Equal(t, 0, p.Col)
}

func numberedBuffer(n int) *Buffer {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return bufferWithLines(lines...)
}

func TestPaging(t *testing.T) {
	b := numberedBuffer(100)

	p, offset := mtx.Point{Row: 10}, mtx.Point{}
	PageDown(&p, &offset, b, 20)
	assert.Equal(t, 30, p.Row)
	assert.Equal(t, 20, offset.Row)

	p, offset = mtx.Point{Row: 90}, mtx.Point{Row: 75}
	PageDown(&p, &offset, b, 20)
	assert.Equal(t, 99, p.Row, "the cursor stops at the last row")
	assert.Equal(t, 84, offset.Row, "the offset advances by the remaining distance")

	p, offset = mtx.Point{Row: 30}, mtx.Point{Row: 20}
	PageUp(&p, &offset, 20)
	assert.Equal(t, 10, p.Row)
	assert.Equal(t, 0, offset.Row)

	p, offset = mtx.Point{Row: 5}, mtx.Point{Row: 3}
	PageUp(&p, &offset, 20)
	assert.Equal(t, mtx.Point{}, p)
	assert.Equal(t, mtx.Point{}, offset)
}

func TestScroll(t *testing.T) {
	size := mtx.Size{Rows: 10, Cols: 80}
	offset := mtx.Point{}
	Scroll(mtx.Point{Row: 30}, &offset, size)
	assert.Equal(t, 21, offset.Row)
	Scroll(mtx.Point{Row: 5}, &offset, size)
	assert.Equal(t, 5, offset.Row)
	Scroll(mtx.Point{Row: 5, Col: 100}, &offset, size)
	assert.Equal(t, 21, offset.Col)
	Scroll(mtx.Point{Row: 5, Col: 3}, &offset, size)
	assert.Equal(t, 3, offset.Col)
}

func TestMovementOnEmptyBuffer(t *testing.T) {
	b := NewBuffer()
	assert.NotPanics(t, func() {
		p, offset := mtx.Point{}, mtx.Point{}
		MoveLeft(&p, b, MoveOptions{AllowWrap: true, AllowEOL: true})
		MoveRight(&p, b, MoveOptions{AllowWrap: true, AllowEOL: true})
		MoveUp(&p, 1)
		MoveDown(&p, b, 1)
		MoveToEndOfLine(&p, b, true)
		PageDown(&p, &offset, b, 10)
		PageUp(&p, &offset, 10)
		assert.Equal(t, mtx.Point{}, p)
		assert.Equal(t, mtx.Point{}, offset)
	})
}
