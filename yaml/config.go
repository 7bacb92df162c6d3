// Package yaml loads pagecomp configuration files using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/pagecomp"
	"gopkg.in/yaml.v3"
)

// AppName names the configuration directory under XDG_CONFIG_HOME.
const AppName = "pagecomp"

// ConfigFile is the configuration file name.
const ConfigFile = "config.yaml"

// EnvConfig names the environment variable overriding the config path.
const EnvConfig = "PAGECOMP_CONFIG"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// DefaultPath returns $XDG_CONFIG_HOME/pagecomp/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFile)
}

// ResolvePath picks the config path: the explicit flag value first, then
// PAGECOMP_CONFIG, then DefaultPath. explicit reports whether the path
// came from the user, in which case a missing file is an error.
func ResolvePath(flag string, getenv func(string) string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if env := getenv(EnvConfig); env != "" {
		return env, true
	}
	return DefaultPath(), false
}

// LoadConfig reads and decodes the file at path. Defaults are not applied.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfig(path string) (*pagecomp.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return DecodeConfig(bytes.NewReader(data))
}

// DecodeConfig decodes a YAML config. Unknown keys are rejected.
// An empty document yields a zero Config.
func DecodeConfig(r io.Reader) (*pagecomp.Config, error) {
	var cfg pagecomp.Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, pagecomp.Errorf(pagecomp.EINVALID, "invalid config: %v", err)
	}
	return &cfg, nil
}

// Load resolves the config path, reads the file and applies defaults.
// A missing file at the default location yields the default config.
func Load(flag string, getenv func(string) string) (*pagecomp.Config, error) {
	path, explicit := ResolvePath(flag, getenv)
	cfg, err := LoadConfig(path)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		cfg = &pagecomp.Config{}
	case err != nil:
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	return cfg, nil
}
