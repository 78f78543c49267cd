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

// Package config reads the editor's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mtxedit/mtx/editor"
)

// Config holds user settings.
type Config struct {
	LogFile         string            `yaml:"log_file"`
	MessageTimeout  time.Duration     `yaml:"message_timeout"`
	WrapCursor      bool              `yaml:"wrap_cursor"`
	SystemClipboard bool              `yaml:"system_clipboard"`
	Keys            map[string]string `yaml:"keys"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	options := editor.DefaultOptions()
	c := &Config{
		MessageTimeout:  options.MessageTimeout,
		WrapCursor:      options.WrapCursor,
		SystemClipboard: options.SystemClipboard,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.LogFile = filepath.Join(home, ".mtxlog")
	}
	return c
}

// DefaultPath is ~/.config/mtx/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mtx", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if c.MessageTimeout < 0 {
		return nil, fmt.Errorf("invalid message_timeout %v in %s", c.MessageTimeout, path)
	}
	return c, nil
}

// Options returns the editor options selected by the config.
func (c *Config) Options() editor.Options {
	return editor.Options{
		WrapCursor:      c.WrapCursor,
		MessageTimeout:  c.MessageTimeout,
		SystemClipboard: c.SystemClipboard,
	}
}
