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
	mtx "github.com/mtxedit/mtx/types"
)

// MoveOptions control how far horizontal movement may take the cursor.
type MoveOptions struct {
	AllowWrap bool // cross to the previous or next row at the ends of a row
	AllowEOL  bool // rest one column past the last character
}

// Clamp repairs p so that it addresses a valid position in b for mode.
// It must be called after every command that changes the buffer.
func Clamp(p *mtx.Point, b *Buffer, mode mtx.Mode) {
	if mode == mtx.ModeCommand {
		return
	}
	p.Row = max(p.Row, 0)
	p.Col = max(p.Col, 0)
	count := b.GetRowCount()
	if p.Row >= count {
		p.Row = max(count-1, 0)
		length := b.GetRowLength(p.Row)
		switch mode {
		case mtx.ModeVisual:
			p.Col = length
		default:
			p.Col = max(length-1, 0)
		}
		return
	}
	length := b.GetRowLength(p.Row)
	limit := length
	if mode == mtx.ModeNormal {
		limit = max(length-1, 0)
	}
	if p.Col > limit {
		p.Col = limit
	}
}

func MoveLeft(p *mtx.Point, b *Buffer, opts MoveOptions) {
	width, ok := b.RowLength(p.Row)
	if !ok {
		return
	}
	switch {
	case p.Col == 0 && p.Row > 0 && opts.AllowWrap:
		p.Row--
		p.Col = b.GetRowLength(p.Row)
		if !opts.AllowEOL {
			p.Col = max(p.Col-1, 0)
		}
	case p.Col > width && width > 0:
		// the cursor was left further right than the row by a vertical move
		p.Col = width - 1
	default:
		p.Col = max(p.Col-1, 0)
	}
}

func MoveRight(p *mtx.Point, b *Buffer, opts MoveOptions) {
	width, ok := b.RowLength(p.Row)
	if !ok {
		return
	}
	lastCol := max(width-1, 0)
	if opts.AllowEOL {
		lastCol = width
	}
	switch {
	case p.Col < lastCol:
		p.Col++
	case opts.AllowWrap && p.Row < b.GetRowCount()-1:
		p.Row++
		p.Col = 0
	}
}

// MoveUp moves n rows up, stopping at the first row.
func MoveUp(p *mtx.Point, n int) {
	if n < 1 {
		n = 1
	}
	p.Row = max(p.Row-n, 0)
}

// MoveDown moves n rows down, stopping at the last row.
func MoveDown(p *mtx.Point, b *Buffer, n int) {
	if n < 1 {
		n = 1
	}
	p.Row = min(p.Row+n, max(b.GetRowCount()-1, 0))
}

func MoveToStartOfLine(p *mtx.Point) {
	p.Col = 0
}

// MoveToEndOfLine places the cursor on the last character of its row,
// or just past it when allowEOL is set.
func MoveToEndOfLine(p *mtx.Point, b *Buffer, allowEOL bool) {
	length := b.GetRowLength(p.Row)
	if allowEOL {
		p.Col = length
	} else {
		p.Col = max(length-1, 0)
	}
}

// PageUp moves the cursor and the display offset up by height rows.
func PageUp(p, offset *mtx.Point, height int) {
	p.Row = max(p.Row-height, 0)
	offset.Row = max(offset.Row-height, 0)
}

// PageDown moves the cursor and the display offset down by height rows.
// Near the end of the buffer the offset advances only by the distance
// remaining to the last row.
func PageDown(p, offset *mtx.Point, b *Buffer, height int) {
	count := b.GetRowCount()
	if p.Row+height < count {
		p.Row += height
		offset.Row += height
		return
	}
	offset.Row += max(count-p.Row-1, 0)
	p.Row = max(count-1, 0)
}

// Scroll adjusts offset so that p is visible in a display of the given size.
func Scroll(p mtx.Point, offset *mtx.Point, size mtx.Size) {
	if p.Row < offset.Row {
		offset.Row = p.Row
	}
	if size.Rows > 0 && p.Row-offset.Row >= size.Rows {
		offset.Row = p.Row - size.Rows + 1
	}
	if p.Col < offset.Col {
		offset.Col = p.Col
	}
	if size.Cols > 0 && p.Col-offset.Col >= size.Cols {
		offset.Col = p.Col - size.Cols + 1
	}
}
