// Package gitconfig locates and reads git configuration files by level.
package gitconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

var (
	// ErrNoRepository indicates the repository level was requested without a
	// repository.
	ErrNoRepository = errors.New("repository level requires a repository")
	// ErrInvalidKey indicates a malformed configuration key.
	ErrInvalidKey = errors.New("invalid configuration key")
	// ErrNoValue indicates a configuration key is not set.
	ErrNoValue = errors.New("configuration key not set")
)

// SystemPath is the system-wide configuration file.
var SystemPath = "/etc/gitconfig"

// Path returns the configuration file of level. gitDir is the repository's
// .git directory, only used by [gittypes.LevelRepository].
func Path(level gittypes.ConfigLevel, gitDir string) (string, error) {
	switch level {
	case gittypes.LevelSystem:
		return SystemPath, nil
	case gittypes.LevelUser:
		return filepath.Join(xdg.ConfigHome, "git", "config"), nil
	case gittypes.LevelGlobal:
		return filepath.Join(xdg.Home, ".gitconfig"), nil
	case gittypes.LevelRepository:
		if gitDir == "" {
			return "", ErrNoRepository
		}
		return filepath.Join(gitDir, "config"), nil
	default:
		return "", gittypes.Never(level)
	}
}

// Read decodes the configuration file of level. A missing file yields an
// empty configuration.
func Read(level gittypes.ConfigLevel, gitDir string) (*config.Config, error) {
	p, err := Path(level, gitDir)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("configuration file not found", "level", level, "path", p)
		return config.NewConfig(), nil
	case err != nil:
		return nil, fmt.Errorf("opening %s configuration: %w", level, err)
	}
	defer f.Close()

	cfg, err := config.ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s configuration %s: %w", level, p, err)
	}
	slog.Debug("read configuration file", "level", level, "path", p)
	return cfg, nil
}

// Merged reads every level in [gittypes.ConfigLevels] order. Options of later
// levels override earlier ones. The repository level is skipped when gitDir
// is empty.
func Merged(gitDir string) (*config.Config, error) {
	raw := format.New()
	for _, level := range gittypes.ConfigLevels {
		if level == gittypes.LevelRepository && gitDir == "" {
			continue
		}
		cfg, err := Read(level, gitDir)
		if err != nil {
			return nil, err
		}
		merge(raw, cfg.Raw)
	}

	var buf bytes.Buffer
	if err := format.NewEncoder(&buf).Encode(raw); err != nil {
		return nil, fmt.Errorf("encoding merged configuration: %w", err)
	}
	cfg, err := config.ReadConfig(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding merged configuration: %w", err)
	}
	return cfg, nil
}

// merge appends the options of src to dst. Lookups return the last value of
// an option, so src wins.
func merge(dst, src *format.Config) {
	for _, s := range src.Sections {
		ds := dst.Section(s.Name)
		for _, o := range s.Options {
			ds.AddOption(o.Key, o.Value)
		}
		for _, ss := range s.Subsections {
			dss := ds.Subsection(ss.Name)
			for _, o := range ss.Options {
				dss.AddOption(o.Key, o.Value)
			}
		}
	}
}

// Get returns the value of key, written "section.key" or
// "section.subsection.key". The subsection may contain dots.
func Get(cfg *config.Config, key string) (string, error) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	section, name := key[:first], key[last+1:]

	if !cfg.Raw.HasSection(section) {
		return "", fmt.Errorf("%w: %s", ErrNoValue, key)
	}
	opts := cfg.Raw.Section(section).Options
	if first != last {
		sub := key[first+1 : last]
		s := cfg.Raw.Section(section)
		if !s.HasSubsection(sub) {
			return "", fmt.Errorf("%w: %s", ErrNoValue, key)
		}
		opts = s.Subsection(sub).Options
	}

	if !opts.Has(name) {
		return "", fmt.Errorf("%w: %s", ErrNoValue, key)
	}
	return opts.Get(name), nil
}
