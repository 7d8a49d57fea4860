// Package config loads ghfinder's settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/ghfinder/config.toml, falling back to
// ~/.config/ghfinder/config.toml. A missing file is not an error; every key
// has a default:
//
//	api_url  = "https://api.github.com"
//	per_page = 10
//	listen   = ":8080"
//
// GHFINDER_API_URL overrides api_url.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

const (
	appName  = "ghfinder"
	fileName = "config.toml"

	// EnvAPIURL overrides the api_url setting.
	EnvAPIURL = "GHFINDER_API_URL"
)

// Config holds user-configurable settings.
type Config struct {
	// APIURL is the GitHub REST API endpoint.
	APIURL string `toml:"api_url"`

	// PerPage is the number of users fetched per search.
	PerPage int `toml:"per_page"`

	// Listen is the address the JSON view server binds to.
	Listen string `toml:"listen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:  github.DefaultBaseURL,
		PerPage: 10,
		Listen:  ":8080",
	}
}

// DefaultPath returns the config file location following the XDG convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. An empty path means [DefaultPath]. A missing file
// yields the defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return applyEnv(cfg), nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return applyEnv(Default()), nil
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("read config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func (c Config) validate() error {
	if c.PerPage < 1 || c.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", c.PerPage)
	}
	if c.APIURL != "" && !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must use http or https scheme")
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	return cfg
}
