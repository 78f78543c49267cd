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
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	mtx "github.com/mtxedit/mtx/types"
)

// A Renderer draws itself into a display.
type Renderer interface {
	Render(d mtx.Display)
}

// The Screen is a terminal display.
type Screen struct{}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("could not open terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() mtx.Size {
	cols, rows := termbox.Size()
	return mtx.Size{Rows: rows, Cols: cols}
}

func (s *Screen) SetCell(col, row int, c rune, style mtx.Style) {
	fg, bg := colors(style)
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(p mtx.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

// Render clears the terminal, draws r and flushes.
func (s *Screen) Render(r Renderer) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	r.Render(s)
	termbox.Flush()
}

func colors(style mtx.Style) (fg, bg termbox.Attribute) {
	switch style {
	case mtx.StyleSelected:
		return termbox.ColorBlack, termbox.ColorYellow
	case mtx.StyleTilde:
		return termbox.ColorBlue, termbox.ColorBlack
	case mtx.StyleInfoBar:
		return termbox.ColorBlack, termbox.ColorWhite
	case mtx.StyleMessageBar:
		return termbox.ColorWhite, termbox.ColorBlack
	default:
		return termbox.ColorWhite, termbox.ColorBlack
	}
}

// GetNextEvent blocks until the terminal delivers an event.
func (s *Screen) GetNextEvent() *mtx.Event {
	event := termbox.PollEvent()
	return translate(event)
}

func translate(event termbox.Event) *mtx.Event {
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &mtx.Event{Type: mtx.EventResize}
	case termbox.EventMouse:
		return &mtx.Event{Type: mtx.EventMouse}
	case termbox.EventError:
		return &mtx.Event{Type: mtx.EventError}
	}
	if event.Ch != 0 {
		return &mtx.Event{Type: mtx.EventKey, Ch: event.Ch}
	}
	return &mtx.Event{Type: mtx.EventKey, Key: key(event.Key)}
}

func key(k termbox.Key) mtx.Key {
	switch k {
	case termbox.KeyArrowDown:
		return mtx.KeyArrowDown
	case termbox.KeyArrowLeft:
		return mtx.KeyArrowLeft
	case termbox.KeyArrowRight:
		return mtx.KeyArrowRight
	case termbox.KeyArrowUp:
		return mtx.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return mtx.KeyBackspace
	case termbox.KeyCtrlA:
		return mtx.KeyCtrlA
	case termbox.KeyCtrlB:
		return mtx.KeyCtrlB
	case termbox.KeyCtrlC:
		return mtx.KeyCtrlC
	case termbox.KeyCtrlD:
		return mtx.KeyCtrlD
	case termbox.KeyCtrlE:
		return mtx.KeyCtrlE
	case termbox.KeyCtrlF:
		return mtx.KeyCtrlF
	case termbox.KeyCtrlQ:
		return mtx.KeyCtrlQ
	case termbox.KeyCtrlS:
		return mtx.KeyCtrlS
	case termbox.KeyCtrlU:
		return mtx.KeyCtrlU
	case termbox.KeyDelete:
		return mtx.KeyDelete
	case termbox.KeyEnd:
		return mtx.KeyEnd
	case termbox.KeyEnter:
		return mtx.KeyEnter
	case termbox.KeyEsc:
		return mtx.KeyEsc
	case termbox.KeyHome:
		return mtx.KeyHome
	case termbox.KeyPgdn:
		return mtx.KeyPgdn
	case termbox.KeyPgup:
		return mtx.KeyPgup
	case termbox.KeySpace:
		return mtx.KeySpace
	case termbox.KeyTab:
		return mtx.KeyTab
	default:
		return mtx.KeyUnsupported
	}
}
