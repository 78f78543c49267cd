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
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtxedit/mtx/editor"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	configPath, script = "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "mtx version "+editor.Version+"\n", execute(t, "version"))
}

func TestEval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0644))
	assert.Equal(t, "3\n", execute(t, "--eval", "(row-count)", path))
	assert.Equal(t, "beta\n", execute(t, "--eval", "(row-text 2)", path))
}

func TestEvalOnNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	assert.Equal(t, "0\n", execute(t, "--eval", "(row-count)", path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenFileMessages(t *testing.T) {
	e := editor.NewEditor()
	openFile(e, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, "", e.Buffer.GetFileName())
	assert.Equal(t, "[No Name]", e.Buffer.GetName())
	assert.True(t, e.Buffer.IsEmpty())
	assert.Contains(t, e.GetMessage(), "Err: could not open file")

	openFile(e, t.TempDir())
	assert.Contains(t, e.GetMessage(), "Err: could not open file")
	assert.Equal(t, "", e.Buffer.GetFileName())
}
