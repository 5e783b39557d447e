package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is loaded, when it exists, if no --config is given.
const defaultConfigFile = "goproc.toml"

// Config holds settings that may come from a TOML file or flags.
type Config struct {
	Trace   bool          `toml:"trace"`
	Lex     LexConfig     `toml:"lex"`
	Compile CompileConfig `toml:"compile"`
}

// LexConfig holds settings for the lex command.
type LexConfig struct {
	// Mnemonics renders control bytes in token text as names like <NUL>.
	Mnemonics bool `toml:"mnemonics"`
}

// CompileConfig holds settings for the com command.
type CompileConfig struct {
	Format string `toml:"format"`
	Jobs   int    `toml:"jobs"`
}

var dumpFormats = []string{"text", "yaml"}

func defaultConfig() Config {
	return Config{
		Lex:     LexConfig{Mnemonics: true},
		Compile: CompileConfig{Format: "text", Jobs: runtime.NumCPU()},
	}
}

// loadConfig decodes the TOML file at path over the defaults. A missing file
// is only an error if it was asked for explicitly.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("invalid config %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("invalid config %v: unknown keys %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if !isDumpFormat(cfg.Compile.Format) {
		return fmt.Errorf("invalid format %q, must be one of %v", cfg.Compile.Format, strings.Join(dumpFormats, ", "))
	}
	if cfg.Compile.Jobs < 1 {
		return fmt.Errorf("invalid jobs %v, must be at least 1", cfg.Compile.Jobs)
	}
	return nil
}

func isDumpFormat(format string) bool {
	for _, f := range dumpFormats {
		if f == format {
			return true
		}
	}
	return false
}
