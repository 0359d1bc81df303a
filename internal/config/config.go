package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Debug   bool          `mapstructure:"debug"`
	Convert ConvertConfig `mapstructure:"convert"`
	View    ViewConfig    `mapstructure:"view"`
}

// ConvertConfig controls HTML generation.
type ConvertConfig struct {
	Sanitize   bool   `mapstructure:"sanitize"`   // run output through the UGC HTML policy
	Workers    int    `mapstructure:"workers"`    // 0 = sequential conversion
	Standalone bool   `mapstructure:"standalone"` // wrap output in a full HTML page
	Template   string `mapstructure:"template"`   // page template path ("" = built-in)
	CSS        string `mapstructure:"css"`        // stylesheet path ("" = built-in)
}

// ViewConfig controls the terminal viewer.
type ViewConfig struct {
	Style       string   `mapstructure:"style"` // dark, light or auto
	HistoryMax  int      `mapstructure:"history_max"`
	SearchRoots []string `mapstructure:"search_roots"`
}

// GetConfigDir returns the directory holding config.yaml.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minidown"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "minidown"), nil
}

// Load reads config from path, or from the default locations when path is "".
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("MINIDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("convert.sanitize", false)
	v.SetDefault("convert.workers", 0)
	v.SetDefault("convert.standalone", false)
	v.SetDefault("view.style", "auto")
	v.SetDefault("view.history_max", 50)
	v.SetDefault("view.search_roots", []string{"."})
}
