// Package project loads solum.toml manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up when walking towards the root.
const ManifestName = "solum.toml"

// ErrPackageSectionMissing indicates that [package] is missing.
var ErrPackageSectionMissing = errors.New("missing [package]")

// LexerConfig carries tokenizer settings from the [lexer] section.
// Zero/empty values mean "use the defaults".
type LexerConfig struct {
	// Jobs bounds parallel tokenization; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// Cache enables the on-disk token stream cache.
	Cache bool `toml:"cache"`
	// Extension is the source file suffix, ".sol" by default.
	Extension string `toml:"extension"`
}

// Manifest is a parsed solum.toml.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Lexer LexerConfig `toml:"lexer"`

	// Dir is the directory the manifest was loaded from.
	Dir string `toml:"-"`
}

// Load parses a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return nil, fmt.Errorf("%s: [package].name is empty", path)
	}
	if m.Lexer.Extension != "" && !strings.HasPrefix(m.Lexer.Extension, ".") {
		m.Lexer.Extension = "." + m.Lexer.Extension
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// Find walks from dir towards the filesystem root looking for solum.toml.
// It returns nil without an error when no manifest exists.
func Find(dir string) (*Manifest, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(cur, ManifestName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return Load(candidate)
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return nil, statErr
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, nil
		}
		cur = parent
	}
}
