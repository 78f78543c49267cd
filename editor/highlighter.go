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

// A Highlighter chooses the style of each grapheme in a row.
type Highlighter interface {
	// Highlight returns a style for each grapheme of row y in [start, end).
	Highlight(y, start, end int) []mtx.Style
}

// The SelectionHighlighter marks the text of a selection.
type SelectionHighlighter struct {
	selection *Selection
}

func NewSelectionHighlighter(s *Selection) *SelectionHighlighter {
	return &SelectionHighlighter{selection: s}
}

func (h *SelectionHighlighter) Highlight(y, start, end int) []mtx.Style {
	styles := make([]mtx.Style, max(end-start, 0))
	low, high := h.selection.Normalize()
	if y < low.Row || y > high.Row {
		return styles
	}
	for j := range styles {
		if h.selection.Contains(mtx.Point{Row: y, Col: start + j}) {
			styles[j] = mtx.StyleSelected
		}
	}
	return styles
}

// plainHighlighter draws everything as text.
type plainHighlighter struct{}

func (plainHighlighter) Highlight(y, start, end int) []mtx.Style {
	return make([]mtx.Style, max(end-start, 0))
}
