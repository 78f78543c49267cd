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

// A Selection is the text between two points, inclusive.
// Start is where visual mode began and End follows the cursor,
// so the two are in no particular order.
type Selection struct {
	Start mtx.Point
	End   mtx.Point
}

func BeginSelection(p mtx.Point) *Selection {
	return &Selection{Start: p, End: p}
}

// Update moves the live end of the selection to p.
// The end always rests on a character, never past the end of a row.
func (s *Selection) Update(p mtx.Point, b *Buffer) {
	length, ok := b.RowLength(p.Row)
	if !ok {
		return
	}
	last := max(length-1, 0)
	if p.Col >= last {
		p.Col = last
	}
	s.End = p
}

// Normalize returns the endpoints in row-major order.
func (s *Selection) Normalize() (low, high mtx.Point) {
	if mtx.ComparePoints(s.Start, s.End) <= 0 {
		return s.Start, s.End
	}
	return s.End, s.Start
}

func (s *Selection) Contains(p mtx.Point) bool {
	low, high := s.Normalize()
	return mtx.ComparePoints(low, p) <= 0 && mtx.ComparePoints(p, high) <= 0
}
