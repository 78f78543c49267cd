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
	"testing"

	mtx "github.com/mtxedit/mtx/types"
)

func TestModeTransitions(t *testing.T) {
	modes := []mtx.Mode{mtx.ModeNormal, mtx.ModeInsert, mtx.ModeVisual, mtx.ModeCommand}
	valid := map[[2]mtx.Mode]bool{
		{mtx.ModeNormal, mtx.ModeInsert}:  true,
		{mtx.ModeNormal, mtx.ModeVisual}:  true,
		{mtx.ModeNormal, mtx.ModeCommand}: true,
		{mtx.ModeInsert, mtx.ModeNormal}:  true,
		{mtx.ModeInsert, mtx.ModeCommand}: true,
		{mtx.ModeVisual, mtx.ModeNormal}:  true,
	}
	// reach returns a machine in mode m
	reach := func(m mtx.Mode) *ModeMachine {
		machine := &ModeMachine{}
		if m != mtx.ModeNormal {
			machine.Enter(m)
		}
		return machine
	}
	for _, from := range modes {
		for _, to := range modes {
			machine := reach(from)
			if machine.Mode() != from {
				t.Fatalf("could not reach %s", from)
			}
			ok := machine.Enter(to)
			want := valid[[2]mtx.Mode{from, to}]
			if ok != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, ok, want)
			}
			if !ok && machine.Mode() != from {
				t.Errorf("%s -> %s: rejected transition changed mode to %s", from, to, machine.Mode())
			}
		}
	}
}

func TestCommandRestoresPriorMode(t *testing.T) {
	for _, prior := range []mtx.Mode{mtx.ModeNormal, mtx.ModeInsert} {
		machine := &ModeMachine{}
		machine.Enter(prior)
		if !machine.Enter(mtx.ModeCommand) {
			t.Fatalf("could not open the prompt from %s", prior)
		}
		if !machine.Leave() {
			t.Fatalf("could not close the prompt")
		}
		if machine.Mode() != prior {
			t.Errorf("mode after prompt=%s, want %s", machine.Mode(), prior)
		}
	}
}

func TestLeaveOutsideCommandMode(t *testing.T) {
	machine := &ModeMachine{}
	if machine.Leave() {
		t.Errorf("Leave in normal mode should be rejected")
	}
	if machine.Mode() != mtx.ModeNormal {
		t.Errorf("mode=%s, want NORMAL", machine.Mode())
	}
}
