package config

import (
	"path/filepath"
	"strings"
)

// StoragePath returns where the settings slot lives for backend.
// An explicit storage.path wins. If the config is project-local
// (.a11ypanel/config.yaml) the slot sits alongside it; otherwise it goes
// under ~/.config/a11ypanel.
func StoragePath(cfg StorageConfig, configPath string) string {
	if strings.TrimSpace(cfg.Path) != "" {
		return cfg.Path
	}

	base := UserConfigDir()
	if configPath != "" {
		clean := filepath.Clean(configPath)
		suffix := filepath.Join(ProjectConfigDir, "config.yaml")
		if strings.HasSuffix(clean, suffix) {
			base = filepath.Dir(clean)
		}
	}

	if strings.EqualFold(cfg.Backend, "sqlite") {
		return filepath.Join(base, "settings.db")
	}
	return filepath.Join(base, "state")
}

// LogPath returns the configured log file, defaulting to a11ypanel.log
// next to the storage location when debug logging is requested.
func LogPath(cfg Config, configPath string, debug bool) string {
	if cfg.Log.Path != "" {
		return cfg.Log.Path
	}
	if !debug {
		return ""
	}
	return filepath.Join(filepath.Dir(StoragePath(cfg.Storage, configPath)), "a11ypanel.log")
}
