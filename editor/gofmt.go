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
	"bytes"
	"fmt"
	"go/format"
	"log"
)

// Gofmt formats Go source. Syntax errors are reported with the file name.
func Gofmt(filename string, inputBytes []byte) ([]byte, error) {
	outputBytes, err := format.Source(inputBytes)
	if err != nil {
		log.Printf("Syntax errors in %s: %v", filename, err)
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return outputBytes, nil
}

// FormatGo reformats the buffer as Go source.
// If the source doesn't parse, the buffer is left unchanged.
func (e *Editor) FormatGo() error {
	in := e.Buffer.Bytes()
	out, err := Gofmt(e.Buffer.GetName(), in)
	if err != nil {
		return err
	}
	if bytes.Equal(in, out) {
		return nil
	}
	e.Buffer.LoadBytes(out)
	e.Buffer.dirty = true
	e.clamp()
	return nil
}
