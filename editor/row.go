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
	"strings"

	"github.com/mtxedit/mtx/internal/grapheme"
)

// A row of text in the editor.
// Columns are grapheme indices and a row never holds a line terminator.
type Row struct {
	text   string
	length int
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText(text)
	return r
}

// the cached length is always recounted
func (r *Row) setText(text string) {
	r.text = text
	r.length = grapheme.Count(text)
}

func (r *Row) Text() string {
	return r.text
}

func (r *Row) Length() int {
	return r.length
}

// Render returns the displayable text of graphemes [start, end).
// Tabs are shown as a single space.
func (r *Row) Render(start, end int) string {
	end = clipToRange(end, 0, r.length)
	start = clipToRange(start, 0, end)
	if start == end {
		return ""
	}
	return strings.ReplaceAll(grapheme.Slice(r.text, start, end), "\t", " ")
}

// returns the grapheme at col
func (r *Row) Grapheme(col int) (string, bool) {
	if col < 0 || col >= r.length {
		return "", false
	}
	return grapheme.Slice(r.text, col, col+1), true
}

// returns the raw text of graphemes [start, end)
func (r *Row) Slice(start, end int) string {
	end = clipToRange(end, 0, r.length)
	return grapheme.Slice(r.text, start, end)
}

// Insert places a grapheme cluster before the grapheme at col, or at the end of the row.
// Rows never hold line terminators, so those are dropped.
func (r *Row) Insert(col int, cluster string) {
	cluster = strings.NewReplacer("\r", "", "\n", "").Replace(cluster)
	if cluster == "" {
		return
	}
	if col >= r.length {
		r.setText(r.text + cluster)
		return
	}
	i := grapheme.Offset(r.text, col)
	r.setText(r.text[:i] + cluster + r.text[i:])
}

func (r *Row) InsertChar(col int, c rune) {
	r.Insert(col, string(c))
}

// delete the grapheme at col
func (r *Row) DeleteChar(col int) {
	if col < 0 || col >= r.length {
		return
	}
	r.setText(r.text[:grapheme.Offset(r.text, col)] + r.text[grapheme.Offset(r.text, col+1):])
}

// DeleteRange removes graphemes start through end, inclusive.
func (r *Row) DeleteRange(start, end int) {
	if r.length == 0 {
		return
	}
	end = clipToRange(end, 0, r.length-1)
	start = clipToRange(start, 0, r.length-1)
	if start > end {
		return
	}
	r.setText(r.text[:grapheme.Offset(r.text, start)] + r.text[grapheme.Offset(r.text, end+1):])
}

// DeleteFrom keeps only the first col graphemes.
func (r *Row) DeleteFrom(col int) {
	if col >= r.length {
		return
	}
	r.setText(r.text[:grapheme.Offset(r.text, col)])
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col >= r.length {
		return NewRow("")
	}
	i := grapheme.Offset(r.text, col)
	after := r.text[i:]
	r.setText(r.text[:i])
	return NewRow(after)
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Append(other *Row) {
	r.setText(r.text + other.text)
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
