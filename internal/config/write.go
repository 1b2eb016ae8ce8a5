package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigHeader = `# a11ypanel configuration
#
# storage.backend: file | sqlite | memory
# sound.*: feedback tone played after each change when "Enable Sound
#          Feedback" is on in the panel. override_file plays a WAV instead.
`

// WriteDefaultConfig writes Defaults() to path as YAML, creating parent
// directories. Uses an atomic temp file + rename.
func WriteDefaultConfig(path string) error {
	return Save(path, Defaults())
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data := append([]byte(defaultConfigHeader+"\n"), body...)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
