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

// Key sequences are named by the characters typed, with special keys
// written as <up>, <esc>, <pgdn> and so on, and control keys as C-x.

var defaultNormalKeys = map[string]string{
	"h":       "(move-left)",
	"j":       "(move-down)",
	"k":       "(move-up)",
	"l":       "(move-right)",
	"<left>":  "(move-left)",
	"<down>":  "(move-down)",
	"<up>":    "(move-up)",
	"<right>": "(move-right)",
	" ":       "(move-right)",
	"0":       "(beginning-of-line)",
	"$":       "(end-of-line)",
	"<home>":  "(beginning-of-line)",
	"<end>":   "(end-of-line)",
	"C-a":     "(beginning-of-line)",
	"C-e":     "(end-of-line)",
	"gg":      "(first-line)",
	"G":       "(last-line)",
	"C-b":     "(page-up)",
	"C-f":     "(page-down)",
	"<pgup>":  "(page-up)",
	"<pgdn>":  "(page-down)",
	"C-u":     "(half-page-up)",
	"C-d":     "(half-page-down)",

	"i": "(insert-at-cursor)",
	"a": "(insert-after-cursor)",
	"I": "(insert-at-start-of-line)",
	"A": "(insert-after-end-of-line)",
	"o": "(open-line-below)",
	"O": "(open-line-above)",

	"x":        "(delete-char)",
	"<delete>": "(delete-char)",
	"dd":       "(delete-row)",
	"D":        "(delete-to-end-of-line)",
	"J":        "(join-row)",
	"yy":       "(yank-row)",
	"p":        "(paste)",

	"v": "(visual-mode)",
	":": "(command-prompt)",

	"C-s": "(save)",
	"C-q": "(quit)",
}

var defaultVisualKeys = map[string]string{
	"h":       "(move-left)",
	"j":       "(move-down)",
	"k":       "(move-up)",
	"l":       "(move-right)",
	"<left>":  "(move-left)",
	"<down>":  "(move-down)",
	"<up>":    "(move-up)",
	"<right>": "(move-right)",
	"0":       "(beginning-of-line)",
	"$":       "(end-of-line)",
	"gg":      "(first-line)",
	"G":       "(last-line)",
	"d":       "(delete-selection)",
	"x":       "(delete-selection)",
	"y":       "(yank-selection)",
	"v":       "(normal-mode)",
}
