// Package config resolves where the two storage files live.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default file names, created in the user's home directory.
const (
	DefaultTodoFileName    = ".todo_items.json"
	DefaultPatternFileName = ".todo_patterns.json"
)

// Config carries the resolved storage paths. The CLI builds it once and
// passes it into the stores; core packages never read globals.
type Config struct {
	TodoFile    string
	PatternFile string
}

// Load resolves the storage paths. Precedence: flag, then environment
// (TODOPAT_TODO_FILE, TODOPAT_PATTERN_FILE), then the home-directory
// defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("home dir: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("todopat")
	v.AutomaticEnv()
	v.SetDefault("todo_file", filepath.Join(home, DefaultTodoFileName))
	v.SetDefault("pattern_file", filepath.Join(home, DefaultPatternFileName))

	if f := flags.Lookup("todo-file"); f != nil {
		if err := v.BindPFlag("todo_file", f); err != nil {
			return Config{}, fmt.Errorf("bind todo-file: %w", err)
		}
	}
	if f := flags.Lookup("pattern-file"); f != nil {
		if err := v.BindPFlag("pattern_file", f); err != nil {
			return Config{}, fmt.Errorf("bind pattern-file: %w", err)
		}
	}

	return Config{
		TodoFile:    v.GetString("todo_file"),
		PatternFile: v.GetString("pattern_file"),
	}, nil
}
