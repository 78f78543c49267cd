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

// Package types holds the values shared by the editor, the commander and the screen.
package types

// Mode is an editing mode.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Paste modes
const (
	PasteAtCursor = 0
	PasteNewLine  = 1
)

// A Point addresses a grapheme in a buffer: Row is the line index and
// Col is the grapheme index within that line.
type Point struct {
	Row int
	Col int
}

// ComparePoints orders points row-major. It returns -1, 0 or 1.
func ComparePoints(a, b Point) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

type Size struct {
	Rows int
	Cols int
}

// Style selects how a cell is drawn.
type Style int

const (
	StyleText Style = iota
	StyleSelected
	StyleTilde
	StyleInfoBar
	StyleMessageBar
)

// A Display is a grid of cells that the editor draws into.
type Display interface {
	Size() Size
	SetCell(col, row int, c rune, style Style)
	SetCursor(p Point)
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventMouse  = 2
	EventError  = 3
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlU
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)
