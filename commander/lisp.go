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
	"fmt"
	"log"

	"github.com/steelseries/golisp"

	mtx "github.com/mtxedit/mtx/types"
)

// A primitive is an editor command callable from lisp.
type primitive func(c *Commander, args *golisp.Data) (*golisp.Data, error)

var primitives = map[string]primitive{
	"move-left":  move(mtx.MoveLeft),
	"move-right": move(mtx.MoveRight),
	"move-up":    move(mtx.MoveUp),
	"move-down":  move(mtx.MoveDown),
	"beginning-of-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.MoveToBeginningOfLine()
		return nil, nil
	},
	"end-of-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.MoveToEndOfLine()
		return nil, nil
	},
	"first-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.MoveCursorToLine(c.count(args))
		return nil, nil
	},
	"last-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		// a count picks the line, as with :<n>
		if c.hasMultiplier() || !golisp.NilP(args) {
			c.editor.MoveCursorToLine(c.count(args))
		} else {
			c.editor.MoveCursorToLastLine()
		}
		return nil, nil
	},
	"goto-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, ok := intArg(args)
		if !ok {
			return nil, fmt.Errorf("goto-line requires a line number")
		}
		c.editor.MoveCursorToLine(n)
		return nil, nil
	},
	"page-up":        counted((*Commander).pageUp),
	"page-down":      counted((*Commander).pageDown),
	"half-page-up":   counted((*Commander).halfPageUp),
	"half-page-down": counted((*Commander).halfPageDown),

	"insert-at-cursor":         insert(mtx.InsertAtCursor),
	"insert-after-cursor":      insert(mtx.InsertAfterCursor),
	"insert-at-start-of-line":  insert(mtx.InsertAtStartOfLine),
	"insert-after-end-of-line": insert(mtx.InsertAfterEndOfLine),
	"open-line-below":          insert(mtx.InsertAtNewLineBelowCursor),
	"open-line-above":          insert(mtx.InsertAtNewLineAboveCursor),
	"insert-text": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		text := golisp.Car(args)
		if !golisp.StringP(text) {
			return nil, fmt.Errorf("insert-text requires a string argument")
		}
		c.editor.InsertText(golisp.StringValue(text))
		return nil, nil
	},

	"delete-char": counted((*Commander).deleteChar),
	"delete-row":  counted((*Commander).deleteRow),
	"delete-to-end-of-line": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.DeleteToEndOfLine()
		return nil, nil
	},
	"join-row": counted((*Commander).joinRow),
	"yank-row": counted((*Commander).yankRow),
	"paste":    counted((*Commander).paste),

	"visual-mode": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.BeginVisual()
		return nil, nil
	},
	"normal-mode": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.EndMode()
		return nil, nil
	},
	"delete-selection": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.DeleteSelection()
		return nil, nil
	},
	"yank-selection": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.YankSelection()
		return nil, nil
	},
	"command-prompt": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.BeginPrompt()
		return nil, nil
	},

	"save": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		var path string
		if name := golisp.Car(args); golisp.StringP(name) {
			path = golisp.StringValue(name)
		}
		return nil, c.save(path)
	},
	"quit": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return nil, c.PerformCommand("q")
	},
	"command": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		command := golisp.Car(args)
		if !golisp.StringP(command) {
			return nil, fmt.Errorf("command requires a string argument")
		}
		return nil, c.PerformCommand(golisp.StringValue(command))
	},
	"message": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.SetMessage("%s", golisp.String(golisp.Car(args)))
		return nil, nil
	},

	"row-count": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Buffer.GetRowCount())), nil
	},
	"cursor-row": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Cursor.Row + 1)), nil
	},
	"cursor-col": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Cursor.Col + 1)), nil
	},
	"row-text": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, ok := intArg(args)
		if !ok {
			n = c.editor.Cursor.Row + 1
		}
		row, ok := c.editor.Buffer.Row(n - 1)
		if !ok {
			return nil, nil
		}
		return golisp.StringWithValue(row.Text()), nil
	},
	"buffer-text": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.StringWithValue(string(c.editor.Bytes())), nil
	},
	"mode": func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.StringWithValue(c.editor.Mode().String()), nil
	},
}

// Primitives are bound in the global lisp environment to the most recently
// created commander.
func (c *Commander) registerPrimitives() {
	for name, p := range primitives {
		golisp.MakePrimitiveFunction(name, "*", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return p(c, args)
		})
	}
}

func move(direction int) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.MoveCursor(direction, c.count(args))
		return nil, nil
	}
}

func insert(position int) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.BeginInsert(position)
		return nil, nil
	}
}

func counted(f func(c *Commander, n int)) primitive {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		f(c, c.count(args))
		return nil, nil
	}
}

func (c *Commander) pageUp(n int)       { c.editor.PageUp(n) }
func (c *Commander) pageDown(n int)     { c.editor.PageDown(n) }
func (c *Commander) halfPageUp(n int)   { c.editor.HalfPageUp(n) }
func (c *Commander) halfPageDown(n int) { c.editor.HalfPageDown(n) }
func (c *Commander) deleteChar(n int)   { c.editor.DeleteCharacterAtCursor(n) }
func (c *Commander) deleteRow(n int)    { c.editor.DeleteRowAtCursor(n) }
func (c *Commander) joinRow(n int)      { c.editor.JoinRow(n) }
func (c *Commander) yankRow(n int)      { c.editor.YankRow(n) }
func (c *Commander) paste(n int)        { c.editor.Paste(n) }

// count returns an explicit numeric argument, or else the typed multiplier.
func (c *Commander) count(args *golisp.Data) int {
	if n, ok := intArg(args); ok {
		c.multiplier = ""
		return n
	}
	return c.Multiplier()
}

func intArg(args *golisp.Data) (int, bool) {
	if golisp.NilP(args) {
		return 0, false
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), true
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), true
	}
	return 0, false
}

// ParseEval evaluates a lisp expression against the editor and returns the printed result.
func (c *Commander) ParseEval(command string) (string, error) {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	if golisp.NilP(value) {
		return "", nil
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}
