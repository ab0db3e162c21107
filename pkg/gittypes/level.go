package gittypes

import (
	"fmt"
	"slices"

	"github.com/go-git/go-git/v5/config"
)

// ConfigLevel names one layer of Git configuration.
//
// See https://git-scm.com/docs/git-config#FILES.
type ConfigLevel string

// Configuration levels.
const (
	// LevelSystem is the installation wide configuration, e.g. /etc/gitconfig.
	LevelSystem ConfigLevel = "system"
	// LevelUser is the XDG configuration, e.g. ~/.config/git/config.
	LevelUser ConfigLevel = "user"
	// LevelGlobal is the per user configuration, e.g. ~/.gitconfig.
	LevelGlobal ConfigLevel = "global"
	// LevelRepository is the repository configuration, e.g. .git/config.
	LevelRepository ConfigLevel = "repository"
)

// ConfigLevels lists every level from lowest to highest precedence. Files
// are read in this order and later levels override earlier ones.
var ConfigLevels = [4]ConfigLevel{
	LevelSystem,
	LevelUser,
	LevelGlobal,
	LevelRepository,
}

// IsConfigLevel returns true if s names a [ConfigLevel].
func IsConfigLevel(s string) bool {
	return slices.Contains(ConfigLevels[:], ConfigLevel(s))
}

// ParseConfigLevel converts s into a [ConfigLevel].
func ParseConfigLevel(s string) (ConfigLevel, error) {
	if !IsConfigLevel(s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownConfigLevel, s)
	}
	return ConfigLevel(s), nil
}

func (l ConfigLevel) String() string {
	return string(l)
}

// Scope returns the go-git scope that reads l. go-git does not separate the
// user and global files, both are part of [config.GlobalScope].
func (l ConfigLevel) Scope() (config.Scope, error) {
	switch l {
	case LevelSystem:
		return config.SystemScope, nil
	case LevelUser, LevelGlobal:
		return config.GlobalScope, nil
	case LevelRepository:
		return config.LocalScope, nil
	default:
		return config.LocalScope, Never(l)
	}
}
