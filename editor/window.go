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
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mtxedit/mtx/internal/grapheme"
	mtx "github.com/mtxedit/mtx/types"
)

// the info bar and the message bar sit below the text
const barRows = 2

// returns the number of terminal cells used to display a grapheme cluster
func cellWidth(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	return max(runewidth.StringWidth(cluster), 1)
}

func firstRune(cluster string) rune {
	for _, c := range cluster {
		return c
	}
	return ' '
}

// draw text and returns the number of cells used
func drawText(d mtx.Display, col, row, width int, text string, style mtx.Style) int {
	x := 0
	for _, cluster := range grapheme.Split(text) {
		w := cellWidth(cluster)
		if x+w > width {
			break
		}
		d.SetCell(col+x, row, firstRune(cluster), style)
		x += w
	}
	return x
}

// Render draws the visible part of the buffer, the info bar and the message bar.
func (e *Editor) Render(d mtx.Display) {
	size := d.Size()
	e.SetSize(mtx.Size{Rows: max(size.Rows-barRows, 0), Cols: size.Cols})
	e.adjustDisplayOffsetForScrolling()

	var h Highlighter = plainHighlighter{}
	if e.selection != nil {
		h = NewSelectionHighlighter(e.selection)
	}
	b := e.Buffer
	for i := 0; i < e.size.Rows; i++ {
		y := i + e.Offset.Row
		if row, ok := b.Row(y); ok {
			e.drawRow(d, i, y, row, h)
		} else if b.IsEmpty() && b.GetFileName() == "" && i == e.size.Rows/3 {
			e.drawWelcomeMessage(d, i)
		} else {
			d.SetCell(0, i, '~', mtx.StyleTilde)
		}
	}

	infoRow := e.size.Rows
	infoText := e.computeInfoBarText(size.Cols)
	drawText(d, 0, infoRow, size.Cols, infoText, mtx.StyleInfoBar)

	messageRow := infoRow + 1
	if e.Mode() == mtx.ModeCommand {
		drawText(d, 0, messageRow, size.Cols, ":"+e.prompt.Text(), mtx.StyleMessageBar)
		d.SetCursor(mtx.Point{
			Row: messageRow,
			Col: 1 + e.textWidth(e.prompt, 0, e.promptCol),
		})
		return
	}
	drawText(d, 0, messageRow, size.Cols, e.GetMessage(), mtx.StyleMessageBar)
	e.setCursor(d)
}

func (e *Editor) drawRow(d mtx.Display, i, y int, row *Row, h Highlighter) {
	start := e.Offset.Col
	end := start + e.size.Cols
	styles := h.Highlight(y, start, end)
	x := 0
	for j, cluster := range grapheme.Split(row.Render(start, end)) {
		w := cellWidth(cluster)
		if x+w > e.size.Cols {
			break
		}
		style := mtx.StyleText
		if j < len(styles) {
			style = styles[j]
		}
		d.SetCell(x, i, firstRune(cluster), style)
		x += w
	}
}

func (e *Editor) drawWelcomeMessage(d mtx.Display, i int) {
	text := fmt.Sprintf("mtx editor -- version %s", Version)
	padding := max((e.size.Cols-len(text))/2, 1)
	d.SetCell(0, i, '~', mtx.StyleTilde)
	drawText(d, padding, i, e.size.Cols-padding, text, mtx.StyleText)
}

// Compute the text to display on the info bar.
func (e *Editor) computeInfoBarText(length int) string {
	b := e.Buffer
	name := b.GetName()
	if len(name) > 20 {
		name = name[:20]
	}
	text := " " + name
	if b.IsDirty() {
		text += " [+]"
	}
	text += "  -- " + e.Mode().String() + " --"
	percent := 0
	if b.GetRowCount() > 0 {
		percent = (e.Cursor.Row + 1) * 100 / b.GetRowCount()
	}
	finalText := fmt.Sprintf("%d,%d  %d%% ", e.Cursor.Row+1, e.Cursor.Col+1, percent)
	if pad := length - len(text) - len(finalText); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text + finalText
}

// Recompute the display offset to keep the cursor onscreen.
func (e *Editor) adjustDisplayOffsetForScrolling() {
	Scroll(e.Cursor, &e.Offset, e.size)
}

// returns the cells used by graphemes [start, end) of a row, counting
// one cell for every column past the end of the row
func (e *Editor) textWidth(row *Row, start, end int) int {
	width := 0
	for _, cluster := range grapheme.Split(row.Render(start, end)) {
		width += cellWidth(cluster)
	}
	if end > row.Length() {
		width += end - max(row.Length(), start)
	}
	return width
}

func (e *Editor) setCursor(d mtx.Display) {
	col := e.Cursor.Col - e.Offset.Col
	if row, ok := e.Buffer.Row(e.Cursor.Row); ok {
		col = e.textWidth(row, e.Offset.Col, e.Cursor.Col)
	}
	d.SetCursor(mtx.Point{
		Col: col,
		Row: e.Cursor.Row - e.Offset.Row,
	})
}
