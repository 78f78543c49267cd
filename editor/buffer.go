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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mtx "github.com/mtxedit/mtx/types"
)

// ErrNoFileName is returned when saving a buffer that has no file name.
var ErrNoFileName = errors.New("no file name")

// A Buffer represents a file being edited.
// Row indices past the end of the buffer are never dereferenced: queries
// return absent results and mutations are no-ops.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    bool
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

// ReadFile opens a file into a new buffer named after it.
func ReadFile(path string) (*Buffer, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := NewBuffer()
	b.LoadBytes(bytes)
	b.fileName = path
	return b, nil
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) GetName() string {
	if b.fileName == "" {
		return "[No Name]"
	}
	return b.fileName
}

// LoadString replaces the contents of the buffer with lines of text.
// A final line terminator does not start another row and a trailing
// carriage return is dropped from each line.
func (b *Buffer) LoadString(s string) {
	b.rows = make([]*Row, 0)
	if s == "" {
		return
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
}

func (b *Buffer) LoadBytes(bytes []byte) {
	b.LoadString(string(bytes))
}

// Bytes returns the buffer text with a terminator after every row.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(row.Text())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// WriteFile saves the buffer to path, or to its own file name when path is empty.
// The file is replaced only after the new contents are completely written,
// and the buffer stays dirty if anything fails.
func (b *Buffer) WriteFile(path string) error {
	if path == "" {
		path = b.fileName
	}
	if path == "" {
		return ErrNoFileName
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err = f.Write(b.Bytes()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err = os.Chmod(tmp, perm); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if b.fileName == "" {
		b.fileName = path
	}
	b.dirty = false
	return nil
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.rows) == 0
}

func (b *Buffer) IsDirty() bool {
	return b.dirty
}

func (b *Buffer) Row(i int) (*Row, bool) {
	if i < 0 || i >= len(b.rows) {
		return nil, false
	}
	return b.rows[i], true
}

func (b *Buffer) RowLength(i int) (int, bool) {
	row, ok := b.Row(i)
	if !ok {
		return 0, false
	}
	return row.Length(), true
}

// returns the length of row i, or zero if there is no such row
func (b *Buffer) GetRowLength(i int) int {
	n, _ := b.RowLength(i)
	return n
}

func (b *Buffer) GetCharacterAtCursor(cursor mtx.Point) string {
	if row, ok := b.Row(cursor.Row); ok {
		g, _ := row.Grapheme(cursor.Col)
		return g
	}
	return ""
}

// InsertCharacter inserts c at p. A row one past the end is created on demand.
func (b *Buffer) InsertCharacter(p mtx.Point, c rune) {
	b.InsertGrapheme(p, string(c))
}

// InsertGrapheme inserts a cluster at p. A line terminator splits the row instead.
func (b *Buffer) InsertGrapheme(p mtx.Point, cluster string) {
	if isTerminator(cluster) {
		b.InsertNewline(p)
		return
	}
	switch {
	case p.Row < 0 || p.Row > len(b.rows):
		return
	case p.Row == len(b.rows):
		b.rows = append(b.rows, NewRow(cluster))
	default:
		b.rows[p.Row].Insert(p.Col, cluster)
	}
	b.dirty = true
}

func isTerminator(cluster string) bool {
	return cluster == "\n" || cluster == "\r" || cluster == "\r\n"
}

// InsertNewline splits the row at p, moving the text after p.Col to a new row below.
func (b *Buffer) InsertNewline(p mtx.Point) {
	if p.Row < 0 || p.Row > len(b.rows) {
		return
	}
	b.dirty = true
	if p.Row == len(b.rows) {
		b.rows = append(b.rows, NewRow(""))
		return
	}
	newRow := b.rows[p.Row].Split(p.Col)
	b.insertRow(p.Row+1, newRow)
}

// InsertRow adds a row holding text before row i, or at the end when i is the row count.
func (b *Buffer) InsertRow(i int, text string) {
	if i < 0 || i > len(b.rows) {
		return
	}
	b.dirty = true
	b.insertRow(i, NewRow(text))
}

func (b *Buffer) insertRow(i int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = row
}

// DeleteCharacter deletes the grapheme at p. At the end of a row
// the next row is joined to it instead.
func (b *Buffer) DeleteCharacter(p mtx.Point) {
	if p.Row < 0 || p.Row >= len(b.rows) {
		return
	}
	b.dirty = true
	row := b.rows[p.Row]
	if p.Col == row.Length() && p.Row+1 < len(b.rows) {
		row.Append(b.rows[p.Row+1])
		b.removeRow(p.Row + 1)
		return
	}
	row.DeleteChar(p.Col)
}

func (b *Buffer) removeRow(i int) {
	b.rows = append(b.rows[0:i], b.rows[i+1:]...)
}

func (b *Buffer) DeleteRow(i int) {
	if i < 0 || i >= len(b.rows) {
		return
	}
	b.dirty = true
	b.removeRow(i)
}

// DeleteRowRange deletes rows first through last, inclusive.
func (b *Buffer) DeleteRowRange(first, last int) {
	first = max(first, 0)
	last = min(last, len(b.rows)-1)
	// remove from the bottom up so that lower indices stay valid
	for i := last; i >= first; i-- {
		b.DeleteRow(i)
	}
}

// DeleteToEndOfRow discards the text from p to the end of its row.
// The row terminator is kept.
func (b *Buffer) DeleteToEndOfRow(p mtx.Point) {
	row, ok := b.Row(p.Row)
	if !ok {
		return
	}
	b.dirty = true
	row.DeleteFrom(max(p.Col, 0))
}

// JoinWithNext removes the terminator after row p.Row, appending the next row to it.
func (b *Buffer) JoinWithNext(p mtx.Point) {
	if p.Row < 0 || p.Row+1 >= len(b.rows) {
		return
	}
	b.dirty = true
	b.rows[p.Row].Append(b.rows[p.Row+1])
	b.removeRow(p.Row + 1)
}

// DeleteRange deletes the text from start through end, inclusive.
func (b *Buffer) DeleteRange(start, end mtx.Point) {
	if mtx.ComparePoints(start, end) > 0 {
		start, end = end, start
	}
	if start.Row < 0 || start.Row >= len(b.rows) {
		return
	}
	start.Col = max(start.Col, 0)
	if end.Row >= len(b.rows) {
		end.Row = len(b.rows) - 1
		end.Col = max(b.rows[end.Row].Length()-1, 0)
	}
	if start.Row == end.Row {
		b.dirty = true
		b.rows[start.Row].DeleteRange(start.Col, end.Col)
		return
	}
	if start.Col == 0 && end.Col == max(b.rows[end.Row].Length()-1, 0) {
		b.DeleteRowRange(start.Row, end.Row)
		return
	}
	b.dirty = true
	suffix := NewRow(b.rows[end.Row].Slice(end.Col+1, b.rows[end.Row].Length()))
	b.rows[start.Row].DeleteFrom(start.Col)
	// rows start.Row+1 through end.Row are either enclosed or have had their suffix saved
	b.rows = append(b.rows[:start.Row+1], b.rows[end.Row+1:]...)
	b.rows[start.Row].Append(suffix)
}

// Text returns the text from start through end, inclusive, with rows separated by newlines.
func (b *Buffer) Text(start, end mtx.Point) string {
	if mtx.ComparePoints(start, end) > 0 {
		start, end = end, start
	}
	if end.Row >= len(b.rows) {
		end.Row = len(b.rows) - 1
		end.Col = b.GetRowLength(end.Row)
	}
	var sb strings.Builder
	for y := max(start.Row, 0); y <= end.Row; y++ {
		row := b.rows[y]
		from := 0
		if y == start.Row {
			from = start.Col
		}
		to := row.Length()
		if y == end.Row {
			to = min(end.Col+1, row.Length())
		}
		sb.WriteString(row.Slice(from, to))
		if y != end.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
