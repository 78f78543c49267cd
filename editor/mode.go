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

// A ModeMachine tracks the editing mode.
// The zero value is in normal mode.
type ModeMachine struct {
	mode  mtx.Mode
	prior mtx.Mode // mode to return to when the command prompt closes
}

func (m *ModeMachine) Mode() mtx.Mode {
	return m.mode
}

func (m *ModeMachine) canEnter(next mtx.Mode) bool {
	switch m.mode {
	case mtx.ModeNormal:
		return next == mtx.ModeInsert || next == mtx.ModeVisual || next == mtx.ModeCommand
	case mtx.ModeInsert:
		return next == mtx.ModeNormal || next == mtx.ModeCommand
	case mtx.ModeVisual:
		return next == mtx.ModeNormal
	}
	return false
}

// Enter switches to next and reports whether the transition was allowed.
// Invalid transitions leave the machine unchanged.
func (m *ModeMachine) Enter(next mtx.Mode) bool {
	if !m.canEnter(next) {
		return false
	}
	if next == mtx.ModeCommand {
		m.prior = m.mode
	}
	m.mode = next
	return true
}

// Leave closes the command prompt, restoring the mode that was active when it opened.
func (m *ModeMachine) Leave() bool {
	if m.mode != mtx.ModeCommand {
		return false
	}
	m.mode = m.prior
	return true
}
