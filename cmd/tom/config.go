package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/medaskca/tom/internal/model"
	"github.com/medaskca/tom/internal/nav"
	"github.com/medaskca/tom/internal/tui"
)

const (
	defaultCompactWidth = nav.DefaultCompactWidth
	defaultSkin         = model.DefaultSkin
	defaultLoginTimeout = model.DefaultLoginTimeout
	defaultAPIAddr      = model.DefaultAPIAddr
	defaultLogLevel     = model.DefaultLogLevel
)

// appConfig is the runtime configuration of the dashboard binary.
type appConfig struct {
	CompactWidth int           `mapstructure:"compact-width"`
	Skin         string        `mapstructure:"skin"`
	AuthURL      string        `mapstructure:"auth-url"`
	LoginTimeout time.Duration `mapstructure:"login-timeout"`
	APIEnabled   bool          `mapstructure:"api-enabled"`
	APIAddr      string        `mapstructure:"api-addr"`
	Hospitals    []string      `mapstructure:"hospitals"`
	DataSources  []string      `mapstructure:"data-sources"`
	LogLevel     string        `mapstructure:"log-level"`
	LogFile      string        `mapstructure:"log-file"`

	ConfigDir  string `mapstructure:"-"` // skins are looked up here
	ConfigPath string `mapstructure:"-"` // empty when no file was read
}

func newViper(configPath, home string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TOM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("compact-width", defaultCompactWidth)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("auth-url", "")
	v.SetDefault("login-timeout", defaultLoginTimeout)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", defaultAPIAddr)
	v.SetDefault("hospitals", []string{model.DefaultHospital})
	v.SetDefault("data-sources", []string{model.DefaultDataSource})
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "tom", "tom.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "tom", "config.yml"))
	}
	return v
}

func loadConfig(configPath string) (appConfig, *viper.Viper, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return appConfig{}, nil, fmt.Errorf("finding home directory: %w", err)
	}

	v := newViper(configPath, home)
	read := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return appConfig{}, nil, fmt.Errorf("reading config: %w", err)
		}
		read = false
	}

	cfg, err := decodeConfig(v, home)
	if err != nil {
		return cfg, nil, err
	}
	cfg.ConfigDir = filepath.Dir(v.ConfigFileUsed())
	if read {
		cfg.ConfigPath = v.ConfigFileUsed()
	}
	return cfg, v, nil
}

func decodeConfig(v *viper.Viper, home string) (appConfig, error) {
	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.CompactWidth <= 0 {
		return cfg, fmt.Errorf("invalid compact-width: %d", cfg.CompactWidth)
	}
	if cfg.LoginTimeout <= 0 {
		return cfg, fmt.Errorf("invalid login-timeout: %s", cfg.LoginTimeout)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}
	cfg.AuthURL = strings.TrimSpace(cfg.AuthURL)
	cfg.Hospitals = uniqueNonEmpty(cfg.Hospitals)
	cfg.DataSources = uniqueNonEmpty(cfg.DataSources)
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("invalid log-level %q: %w", s, err)
	}
	return lvl, nil
}

// uniqueNonEmpty drops blank and duplicate entries, keeping order.
func uniqueNonEmpty(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// reloadMsg turns the current viper state into a dashboard reload message.
// A skin that fails to load is reported and the palette left alone.
func reloadMsg(v *viper.Viper, home, skinDir string, log *slog.Logger) (tui.ConfigReloadedMsg, error) {
	cfg, err := decodeConfig(v, home)
	if err != nil {
		return tui.ConfigReloadedMsg{}, err
	}
	msg := tui.ConfigReloadedMsg{
		CompactWidth: cfg.CompactWidth,
		Hospitals:    cfg.Hospitals,
		DataSources:  cfg.DataSources,
	}
	skin, err := tui.LoadSkin(cfg.Skin, skinDir)
	if err != nil {
		log.Warn("skin not reloaded", "skin", cfg.Skin, "error", err)
	} else {
		msg.Skin = skin
	}
	return msg, nil
}

// watchConfig forwards config file edits to the dashboard.
func watchConfig(v *viper.Viper, skinDir string, send func(msg tui.ConfigReloadedMsg), log *slog.Logger) {
	home, _ := os.UserHomeDir()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("config file changed", "file", e.Name, "op", e.Op.String())
		msg, err := reloadMsg(v, home, skinDir, log)
		if err != nil {
			log.Warn("ignoring invalid config", "error", err)
			return
		}
		send(msg)
	})
	v.WatchConfig()
}
