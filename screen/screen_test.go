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
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	mtx "github.com/mtxedit/mtx/types"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		in   termbox.Key
		want mtx.Key
	}{
		{termbox.KeyEsc, mtx.KeyEsc},
		{termbox.KeyBackspace, mtx.KeyBackspace},
		{termbox.KeyBackspace2, mtx.KeyBackspace},
		{termbox.KeyCtrlQ, mtx.KeyCtrlQ},
		{termbox.KeyPgdn, mtx.KeyPgdn},
		{termbox.KeyF1, mtx.KeyUnsupported},
	}
	for _, tt := range tests {
		event := translate(termbox.Event{Type: termbox.EventKey, Key: tt.in})
		assert.Equal(t, mtx.EventKey, event.Type)
		assert.Equal(t, tt.want, event.Key)
	}
}

func TestTranslateCharacters(t *testing.T) {
	event := translate(termbox.Event{Type: termbox.EventKey, Ch: 'x'})
	assert.Equal(t, &mtx.Event{Type: mtx.EventKey, Ch: 'x'}, event)

	event = translate(termbox.Event{Type: termbox.EventMouse})
	assert.Equal(t, mtx.EventMouse, event.Type)
}

func TestColors(t *testing.T) {
	fg, bg := colors(mtx.StyleInfoBar)
	assert.Equal(t, termbox.ColorBlack, fg)
	assert.Equal(t, termbox.ColorWhite, bg)

	fg, _ = colors(mtx.StyleTilde)
	assert.Equal(t, termbox.ColorBlue, fg)
}
