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
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtxedit/mtx/commander"
	"github.com/mtxedit/mtx/config"
	"github.com/mtxedit/mtx/editor"
	"github.com/mtxedit/mtx/screen"
)

var (
	configPath string
	script     string
)

var rootCmd = &cobra.Command{
	Use:          "mtx [file]",
	Short:        "A modal terminal text editor",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// The editor manages all text manipulation.
		e := editor.NewEditor()
		e.SetOptions(cfg.Options())

		// The commander converts user inputs into commands for the editor.
		c := commander.NewCommander(e)
		c.BindKeys(cfg.Keys)

		e.SetMessage("HELP: Ctrl-Q = quit")
		if len(args) > 0 {
			openFile(e, args[0])
		}

		if script != "" {
			// Run a script against the buffer and exit.
			result, err := c.ParseEval(script)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		}
		return run(e, c, cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mtx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mtx version %s\n", editor.Version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/mtx/config.yaml)")
	rootCmd.Flags().StringVar(&script, "eval", "", "evaluate a lisp expression against the file and exit")
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// openFile reads path into the editor. On failure the buffer is empty and unnamed.
func openFile(e *editor.Editor, path string) {
	if err := e.ReadFile(path); err != nil {
		log.Printf("%v", err)
		e.SetMessage("Err: %v", err)
	}
}

func run(e *editor.Editor, c *commander.Commander, cfg *config.Config) error {
	// Open a log file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		log.SetOutput(f)
		defer f.Close()
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Printf("%v", err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
