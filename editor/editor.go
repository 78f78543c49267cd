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
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/mtxedit/mtx/internal/grapheme"
	mtx "github.com/mtxedit/mtx/types"
)

// Version is shown in the welcome message and by the version command.
var Version = "0.1.0"

// Options adjust the behavior of an Editor.
type Options struct {
	WrapCursor      bool          // h and l cross row boundaries in normal mode
	MessageTimeout  time.Duration // how long status messages stay visible, zero for no limit
	SystemClipboard bool          // copy yanked text to the system clipboard
}

func DefaultOptions() Options {
	return Options{MessageTimeout: 5 * time.Second}
}

// The Editor manages the editing of text in a Buffer.
// Every command that changes the buffer repairs the cursor before it returns.
type Editor struct {
	Cursor      mtx.Point // cursor position
	Offset      mtx.Point // display offset
	Buffer      *Buffer   // active buffer being edited
	options     Options
	size        mtx.Size    // size of editing area
	modes       ModeMachine // editing mode
	selection   *Selection  // visual mode selection
	prompt      *Row        // command line as it is being typed
	promptCol   int         // cursor position in the command line
	pasteText   string      // used to cut/copy and paste
	pasteMode   int         // how to paste the string on the pasteboard
	message     string      // status message
	messageTime time.Time   // when the status message was set
	now         func() time.Time
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.options = DefaultOptions()
	e.prompt = NewRow("")
	e.now = time.Now
	return e
}

func (e *Editor) SetOptions(o Options) {
	e.options = o
}

func (e *Editor) Mode() mtx.Mode {
	return e.modes.Mode()
}

// Selection returns the visual mode selection, or nil outside of visual mode.
func (e *Editor) Selection() *Selection {
	return e.selection
}

func (e *Editor) SetSize(s mtx.Size) {
	e.size = s
}

func (e *Editor) GetSize() mtx.Size {
	return e.size
}

// ReadFile replaces the buffer with the contents of a file.
// If the file can't be read, the editor is left with an empty unnamed buffer.
func (e *Editor) ReadFile(path string) error {
	e.Cursor = mtx.Point{}
	e.Offset = mtx.Point{}
	b, err := ReadFile(path)
	if err != nil {
		e.Buffer = NewBuffer()
		return fmt.Errorf("could not open file %s: %w", path, err)
	}
	e.Buffer = b
	e.clamp()
	return nil
}

func (e *Editor) WriteFile(path string) error {
	return e.Buffer.WriteFile(path)
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// SetMessage sets the status message.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.now()
}

// GetMessage returns the status message until it expires.
func (e *Editor) GetMessage() string {
	if e.options.MessageTimeout > 0 && e.now().Sub(e.messageTime) >= e.options.MessageTimeout {
		return ""
	}
	return e.message
}

// clamp keeps the cursor valid after a command and lets the selection follow it.
func (e *Editor) clamp() {
	Clamp(&e.Cursor, e.Buffer, e.Mode())
	if e.selection != nil && e.Mode() == mtx.ModeVisual {
		e.selection.Update(e.Cursor, e.Buffer)
	}
}

func (e *Editor) moveOptions() MoveOptions {
	switch e.Mode() {
	case mtx.ModeInsert:
		return MoveOptions{AllowWrap: true, AllowEOL: true}
	case mtx.ModeVisual:
		return MoveOptions{AllowEOL: true}
	default:
		return MoveOptions{AllowWrap: e.options.WrapCursor}
	}
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	if multiplier < 1 {
		multiplier = 1
	}
	opts := e.moveOptions()
	switch direction {
	case mtx.MoveUp:
		MoveUp(&e.Cursor, multiplier)
	case mtx.MoveDown:
		MoveDown(&e.Cursor, e.Buffer, multiplier)
	case mtx.MoveLeft:
		for i := 0; i < multiplier; i++ {
			MoveLeft(&e.Cursor, e.Buffer, opts)
		}
	case mtx.MoveRight:
		for i := 0; i < multiplier; i++ {
			MoveRight(&e.Cursor, e.Buffer, opts)
		}
	}
	e.clamp()
}

func (e *Editor) MoveToBeginningOfLine() {
	MoveToStartOfLine(&e.Cursor)
	e.clamp()
}

func (e *Editor) MoveToEndOfLine() {
	MoveToEndOfLine(&e.Cursor, e.Buffer, e.Mode() != mtx.ModeNormal)
	e.clamp()
}

// MoveCursorToLine moves to the start of line n, counting from 1.
func (e *Editor) MoveCursorToLine(n int) {
	e.Cursor.Row = max(n-1, 0)
	e.Cursor.Col = 0
	e.clamp()
}

func (e *Editor) MoveCursorToLastLine() {
	e.MoveCursorToLine(e.Buffer.GetRowCount())
}

func (e *Editor) pageHeight() int {
	return max(e.size.Rows, 1)
}

func (e *Editor) PageUp(multiplier int) {
	for i := 0; i < max(multiplier, 1); i++ {
		PageUp(&e.Cursor, &e.Offset, e.pageHeight())
	}
	e.clamp()
}

func (e *Editor) PageDown(multiplier int) {
	for i := 0; i < max(multiplier, 1); i++ {
		PageDown(&e.Cursor, &e.Offset, e.Buffer, e.pageHeight())
	}
	e.clamp()
}

func (e *Editor) HalfPageUp(multiplier int) {
	for i := 0; i < max(multiplier, 1); i++ {
		PageUp(&e.Cursor, &e.Offset, max(e.pageHeight()/2, 1))
	}
	e.clamp()
}

func (e *Editor) HalfPageDown(multiplier int) {
	for i := 0; i < max(multiplier, 1); i++ {
		PageDown(&e.Cursor, &e.Offset, e.Buffer, max(e.pageHeight()/2, 1))
	}
	e.clamp()
}

// BeginInsert enters insert mode with the cursor at one of the insert positions.
func (e *Editor) BeginInsert(position int) bool {
	if !e.modes.Enter(mtx.ModeInsert) {
		return false
	}
	switch position {
	case mtx.InsertAtCursor:
	case mtx.InsertAfterCursor:
		if e.Buffer.GetRowLength(e.Cursor.Row) > 0 {
			e.Cursor.Col++
		}
	case mtx.InsertAtStartOfLine:
		e.Cursor.Col = 0
	case mtx.InsertAfterEndOfLine:
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	case mtx.InsertAtNewLineBelowCursor:
		if row, ok := e.Buffer.Row(e.Cursor.Row); ok {
			e.Buffer.InsertNewline(mtx.Point{Row: e.Cursor.Row, Col: row.Length()})
			e.Cursor = mtx.Point{Row: e.Cursor.Row + 1}
		} else {
			e.Buffer.InsertNewline(mtx.Point{})
			e.Cursor = mtx.Point{}
		}
	case mtx.InsertAtNewLineAboveCursor:
		// splitting at the first column leaves an empty row above the cursor
		e.Buffer.InsertNewline(mtx.Point{Row: e.Cursor.Row})
		e.Cursor.Col = 0
	}
	e.clamp()
	return true
}

// EndMode returns to normal mode from insert or visual mode.
func (e *Editor) EndMode() bool {
	switch e.Mode() {
	case mtx.ModeInsert, mtx.ModeVisual:
		e.modes.Enter(mtx.ModeNormal)
		e.selection = nil
		e.clamp()
		return true
	}
	return false
}

// the cursor row is created if the cursor is just past the last row
func (e *Editor) ensureRow() {
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.InsertRow(e.Cursor.Row, "")
	}
}

// insertText inserts text at the cursor and leaves the cursor after it.
// The cursor is not clamped, so that consecutive insertions stay in order.
func (e *Editor) insertText(text string) {
	text = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
	for _, cluster := range grapheme.Split(text) {
		if cluster == "\n" {
			e.ensureRow()
			e.Buffer.InsertNewline(e.Cursor)
			e.Cursor.Row++
			e.Cursor.Col = 0
			continue
		}
		before := e.Buffer.GetRowLength(e.Cursor.Row)
		e.Buffer.InsertGrapheme(e.Cursor, cluster)
		// a combining mark joins the previous cluster without moving the cursor
		e.Cursor.Col += e.Buffer.GetRowLength(e.Cursor.Row) - before
	}
}

func (e *Editor) InsertChar(c rune) {
	e.insertText(string(c))
	e.clamp()
}

func (e *Editor) InsertText(text string) {
	e.insertText(text)
	e.clamp()
}

// BackspaceChar deletes the character before the cursor, joining rows at the start of a row.
func (e *Editor) BackspaceChar() {
	if e.Buffer.IsEmpty() || (e.Cursor.Row == 0 && e.Cursor.Col == 0) {
		return
	}
	MoveLeft(&e.Cursor, e.Buffer, MoveOptions{AllowWrap: true, AllowEOL: true})
	e.Buffer.DeleteCharacter(e.Cursor)
	e.clamp()
}

// DeleteCharacter deletes the character under the cursor, joining the next row at the end of a row.
func (e *Editor) DeleteCharacter() {
	e.Buffer.DeleteCharacter(e.Cursor)
	e.clamp()
}

func (e *Editor) DeleteCharacterAtCursor(multiplier int) {
	length, ok := e.Buffer.RowLength(e.Cursor.Row)
	if !ok {
		return
	}
	n := min(max(multiplier, 1), length-e.Cursor.Col)
	if n <= 0 {
		return
	}
	end := mtx.Point{Row: e.Cursor.Row, Col: e.Cursor.Col + n - 1}
	e.SetPasteBoard(e.Buffer.Text(e.Cursor, end), mtx.PasteAtCursor)
	e.Buffer.DeleteRange(e.Cursor, end)
	e.clamp()
}

func (e *Editor) rowsText(first, last int) string {
	var sb strings.Builder
	for i := first; i <= last; i++ {
		if row, ok := e.Buffer.Row(i); ok {
			sb.WriteString(row.Text())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (e *Editor) YankRow(multiplier int) {
	if e.Buffer.IsEmpty() {
		return
	}
	last := e.Cursor.Row + max(multiplier, 1) - 1
	e.SetPasteBoard(e.rowsText(e.Cursor.Row, last), mtx.PasteNewLine)
}

// DeleteRowAtCursor deletes rows starting at the cursor and puts them on the pasteboard.
func (e *Editor) DeleteRowAtCursor(multiplier int) {
	if e.Buffer.IsEmpty() {
		return
	}
	e.YankRow(multiplier)
	e.Buffer.DeleteRowRange(e.Cursor.Row, e.Cursor.Row+max(multiplier, 1)-1)
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.Cursor.Row = max(e.Buffer.GetRowCount()-1, 0)
	}
	e.clamp()
}

func (e *Editor) DeleteToEndOfLine() {
	length, ok := e.Buffer.RowLength(e.Cursor.Row)
	if !ok || e.Cursor.Col >= length {
		return
	}
	e.SetPasteBoard(e.Buffer.Text(e.Cursor, mtx.Point{Row: e.Cursor.Row, Col: length - 1}), mtx.PasteAtCursor)
	e.Buffer.DeleteToEndOfRow(e.Cursor)
	e.clamp()
}

// JoinRow appends the following rows to the cursor row.
// The cursor is left at the last join point.
func (e *Editor) JoinRow(multiplier int) {
	for i := 0; i < max(multiplier, 1); i++ {
		if e.Cursor.Row+1 >= e.Buffer.GetRowCount() {
			break
		}
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		e.Buffer.JoinWithNext(e.Cursor)
	}
	e.clamp()
}

func (e *Editor) SetPasteBoard(text string, mode int) {
	e.pasteText = text
	e.pasteMode = mode
	if e.options.SystemClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

func (e *Editor) GetPasteText() string {
	return e.pasteText
}

func (e *Editor) GetPasteMode() int {
	return e.pasteMode
}

// Paste inserts the pasteboard after the cursor, or below the cursor row
// when the pasteboard holds whole rows.
func (e *Editor) Paste(multiplier int) {
	if e.pasteText == "" {
		return
	}
	if e.pasteMode == mtx.PasteNewLine {
		lines := strings.Split(strings.TrimSuffix(e.pasteText, "\n"), "\n")
		at := e.Cursor.Row + 1
		if e.Buffer.IsEmpty() {
			at = 0
		}
		i := at
		for n := 0; n < max(multiplier, 1); n++ {
			for _, line := range lines {
				e.Buffer.InsertRow(i, line)
				i++
			}
		}
		e.Cursor = mtx.Point{Row: at}
		e.clamp()
		return
	}
	if e.Buffer.GetRowLength(e.Cursor.Row) > 0 {
		e.Cursor.Col++
	}
	for n := 0; n < max(multiplier, 1); n++ {
		e.insertText(e.pasteText)
	}
	// rest on the last character pasted
	e.Cursor.Col = max(e.Cursor.Col-1, 0)
	e.clamp()
}

// BeginVisual starts a selection at the cursor.
func (e *Editor) BeginVisual() bool {
	if !e.modes.Enter(mtx.ModeVisual) {
		return false
	}
	e.selection = BeginSelection(e.Cursor)
	e.clamp()
	return true
}

// YankSelection copies the selected text and returns to normal mode.
func (e *Editor) YankSelection() {
	if e.selection == nil {
		return
	}
	low, high := e.selection.Normalize()
	e.SetPasteBoard(e.Buffer.Text(low, high), mtx.PasteAtCursor)
	e.Cursor = low
	e.EndMode()
}

// DeleteSelection cuts the selected text and returns to normal mode.
func (e *Editor) DeleteSelection() {
	if e.selection == nil {
		return
	}
	low, high := e.selection.Normalize()
	e.SetPasteBoard(e.Buffer.Text(low, high), mtx.PasteAtCursor)
	e.Buffer.DeleteRange(low, high)
	e.Cursor = low
	e.EndMode()
}

// BeginPrompt opens an empty command line.
func (e *Editor) BeginPrompt() bool {
	if !e.modes.Enter(mtx.ModeCommand) {
		return false
	}
	e.prompt = NewRow("")
	e.promptCol = 0
	return true
}

func (e *Editor) PromptInsert(c rune) {
	before := e.prompt.Length()
	e.prompt.InsertChar(e.promptCol, c)
	e.promptCol += e.prompt.Length() - before
}

// PromptBackspace deletes the character before the prompt cursor.
// It returns false if there was nothing to delete.
func (e *Editor) PromptBackspace() bool {
	if e.promptCol == 0 {
		return false
	}
	e.promptCol--
	e.prompt.DeleteChar(e.promptCol)
	return true
}

func (e *Editor) PromptLeft() {
	e.promptCol = max(e.promptCol-1, 0)
}

func (e *Editor) PromptRight() {
	e.promptCol = min(e.promptCol+1, e.prompt.Length())
}

func (e *Editor) PromptText() string {
	return e.prompt.Text()
}

func (e *Editor) PromptCursor() int {
	return e.promptCol
}

// EndPrompt closes the command line and returns what was typed.
// The editor goes back to the mode it was in when the prompt opened.
func (e *Editor) EndPrompt() string {
	text := e.prompt.Text()
	if e.modes.Leave() {
		e.prompt = NewRow("")
		e.promptCol = 0
		e.clamp()
	}
	return text
}
