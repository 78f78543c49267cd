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
package commander

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/mtxedit/mtx/editor"
	mtx "github.com/mtxedit/mtx/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor     *editor.Editor
	running    bool
	debug      bool              // debug mode displays information about events (key codes, etc)
	editKeys   string            // edit key sequences in progress
	multiplier string            // multiplier string as it is being entered
	normalKeys map[string]string // normal mode key sequences and the lisp they run
	visualKeys map[string]string // visual mode key sequences and the lisp they run
}

func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e, running: true}
	c.normalKeys = make(map[string]string)
	for k, v := range defaultNormalKeys {
		c.normalKeys[k] = v
	}
	c.visualKeys = make(map[string]string)
	for k, v := range defaultVisualKeys {
		c.visualKeys[k] = v
	}
	c.registerPrimitives()
	return c
}

// BindKeys adds or replaces normal mode key bindings.
// An empty expression removes a binding.
func (c *Commander) BindKeys(keys map[string]string) {
	for k, v := range keys {
		if v == "" {
			delete(c.normalKeys, k)
		} else {
			c.normalKeys[k] = v
		}
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Quit() {
	c.running = false
}

func (c *Commander) ProcessEvent(event *mtx.Event) error {
	if c.debug {
		c.editor.SetMessage("event=%+v", event)
	}
	switch event.Type {
	case mtx.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *mtx.Event) error {
	switch c.editor.Mode() {
	case mtx.ModeNormal:
		return c.processKeyNormalMode(event)
	case mtx.ModeInsert:
		return c.processKeyInsertMode(event)
	case mtx.ModeVisual:
		return c.processKeyVisualMode(event)
	case mtx.ModeCommand:
		return c.processKeyCommandMode(event)
	}
	return nil
}

func (c *Commander) processKeyNormalMode(event *mtx.Event) error {
	ch := event.Ch
	// command multipliers are collected until a command uses them
	if c.editKeys == "" && ch >= '0' && ch <= '9' && !(ch == '0' && c.multiplier == "") {
		c.multiplier += string(ch)
		return nil
	}
	return c.processBoundKey(event, c.normalKeys)
}

func (c *Commander) processKeyVisualMode(event *mtx.Event) error {
	if event.Key == mtx.KeyEsc {
		c.editKeys = ""
		c.multiplier = ""
		c.editor.EndMode()
		return nil
	}
	ch := event.Ch
	if c.editKeys == "" && ch >= '0' && ch <= '9' && !(ch == '0' && c.multiplier == "") {
		c.multiplier += string(ch)
		return nil
	}
	return c.processBoundKey(event, c.visualKeys)
}

// processBoundKey runs the binding for the key sequence in progress.
// Sequences that begin a longer binding wait for more keys.
func (c *Commander) processBoundKey(event *mtx.Event, keys map[string]string) error {
	name := keyName(event)
	if name == "" {
		return nil
	}
	if name == "<esc>" {
		c.editKeys = ""
		c.multiplier = ""
		return nil
	}
	sequence := c.editKeys + name
	if expression, ok := keys[sequence]; ok {
		c.editKeys = ""
		_, err := c.ParseEval(expression)
		c.multiplier = ""
		if err != nil {
			c.editor.SetMessage("%s: %v", sequence, err)
		}
		return err
	}
	for k := range keys {
		if strings.HasPrefix(k, sequence) {
			c.editKeys = sequence
			return nil
		}
	}
	c.editKeys = ""
	c.multiplier = ""
	return nil
}

func (c *Commander) processKeyInsertMode(event *mtx.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case mtx.KeyEsc: // end an insert operation.
			e.EndMode()
		case mtx.KeyBackspace:
			e.BackspaceChar()
		case mtx.KeyDelete:
			e.DeleteCharacter()
		case mtx.KeyTab:
			e.InsertChar(' ')
			for e.Cursor.Col%8 != 0 {
				e.InsertChar(' ')
			}
		case mtx.KeyEnter:
			e.InsertChar('\n')
		case mtx.KeySpace:
			e.InsertChar(' ')
		case mtx.KeyArrowUp:
			e.MoveCursor(mtx.MoveUp, 1)
		case mtx.KeyArrowDown:
			e.MoveCursor(mtx.MoveDown, 1)
		case mtx.KeyArrowLeft:
			e.MoveCursor(mtx.MoveLeft, 1)
		case mtx.KeyArrowRight:
			e.MoveCursor(mtx.MoveRight, 1)
		case mtx.KeyHome:
			e.MoveToBeginningOfLine()
		case mtx.KeyEnd:
			e.MoveToEndOfLine()
		case mtx.KeyCtrlS:
			c.save("")
		}
		return nil
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *mtx.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case mtx.KeyEsc:
			e.EndPrompt()
		case mtx.KeyEnter:
			return c.PerformCommand(e.EndPrompt())
		case mtx.KeyBackspace:
			// backspace on an empty command line closes it
			if !e.PromptBackspace() {
				e.EndPrompt()
			}
		case mtx.KeyArrowLeft:
			e.PromptLeft()
		case mtx.KeyArrowRight:
			e.PromptRight()
		case mtx.KeySpace:
			e.PromptInsert(' ')
		}
		return nil
	}
	if ch != 0 {
		e.PromptInsert(ch)
	}
	return nil
}

// PerformCommand runs a command typed on the command line.
func (c *Commander) PerformCommand(command string) error {
	e := c.editor

	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}
	if strings.HasPrefix(command, "(") {
		result, err := c.ParseEval(command)
		if err != nil {
			e.SetMessage("%v", err)
			return err
		}
		e.SetMessage("%s", result)
		return nil
	}

	parts := strings.Fields(command)
	if i, err := strconv.Atoi(parts[0]); err == nil {
		e.MoveCursorToLine(i)
		return nil
	}
	var argument string
	if len(parts) > 1 {
		argument = parts[1]
	}
	switch parts[0] {
	case "q":
		if e.Buffer.IsDirty() {
			e.SetMessage("No write since last change (add ! to override)")
			return nil
		}
		c.Quit()
	case "q!":
		c.Quit()
	case "w":
		return c.save(argument)
	case "wq":
		if err := c.save(argument); err != nil {
			return err
		}
		c.Quit()
	case "x":
		if e.Buffer.IsDirty() || argument != "" {
			if err := c.save(argument); err != nil {
				return err
			}
		}
		c.Quit()
	case "e":
		return c.edit(argument)
	case "$":
		e.MoveCursorToLastLine()
	case "fmt":
		if err := e.FormatGo(); err != nil {
			e.SetMessage("%v", err)
			return err
		}
	case "cursor":
		e.SetMessage("%d,%d", e.Cursor.Row+1, e.Cursor.Col+1)
	case "debug":
		c.debug = argument != "off"
		if !c.debug {
			e.SetMessage("")
		}
	default:
		e.SetMessage("Not an editor command: %s", parts[0])
	}
	return nil
}

func (c *Commander) save(path string) error {
	e := c.editor
	err := e.WriteFile(path)
	if errors.Is(err, editor.ErrNoFileName) {
		e.SetMessage("No file name")
		return err
	}
	if err != nil {
		log.Printf("%v", err)
		e.SetMessage("%v", err)
		return err
	}
	e.SetMessage("\"%s\" %dL written", e.Buffer.GetFileName(), e.Buffer.GetRowCount())
	return nil
}

func (c *Commander) edit(path string) error {
	e := c.editor
	if path == "" {
		e.SetMessage("No file name")
		return nil
	}
	if e.Buffer.IsDirty() {
		e.SetMessage("No write since last change")
		return nil
	}
	if err := e.ReadFile(path); err != nil {
		log.Printf("%v", err)
		e.SetMessage("Err: %v", err)
		return err
	}
	e.SetMessage("\"%s\" %dL", path, e.Buffer.GetRowCount())
	return nil
}

// Multiplier returns the count typed before a command and clears it.
func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.Atoi(c.multiplier)
	c.multiplier = ""
	if err != nil || i < 1 {
		return 1
	}
	return i
}

func (c *Commander) hasMultiplier() bool {
	return c.multiplier != ""
}

var keyNames = map[mtx.Key]string{
	mtx.KeyArrowDown:  "<down>",
	mtx.KeyArrowLeft:  "<left>",
	mtx.KeyArrowRight: "<right>",
	mtx.KeyArrowUp:    "<up>",
	mtx.KeyBackspace:  "<backspace>",
	mtx.KeyCtrlA:      "C-a",
	mtx.KeyCtrlB:      "C-b",
	mtx.KeyCtrlC:      "C-c",
	mtx.KeyCtrlD:      "C-d",
	mtx.KeyCtrlE:      "C-e",
	mtx.KeyCtrlF:      "C-f",
	mtx.KeyCtrlQ:      "C-q",
	mtx.KeyCtrlS:      "C-s",
	mtx.KeyCtrlU:      "C-u",
	mtx.KeyDelete:     "<delete>",
	mtx.KeyEnd:        "<end>",
	mtx.KeyEnter:      "<enter>",
	mtx.KeyEsc:        "<esc>",
	mtx.KeyHome:       "<home>",
	mtx.KeyPgdn:       "<pgdn>",
	mtx.KeyPgup:       "<pgup>",
	mtx.KeySpace:      " ",
	mtx.KeyTab:        "<tab>",
}

// keyName returns the name used for an event in key bindings.
func keyName(event *mtx.Event) string {
	if event.Key != 0 {
		return keyNames[event.Key]
	}
	if event.Ch != 0 {
		return string(event.Ch)
	}
	return ""
}

// String describes the pending key sequence for the message bar.
func (c *Commander) String() string {
	return fmt.Sprintf("%s%s", c.multiplier, c.editKeys)
}
