// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CLIConfig holds the tunables for the cmd/chanctl demo CLI. It configures a
// running process only; chanio itself keeps no persisted state (spec §6).
type CLIConfig struct {
	MaxPayload int64         `mapstructure:"max_payload"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	LogLevel   string        `mapstructure:"log_level"`
	Listen     string        `mapstructure:"listen"`
}

func defaultCLIConfig() CLIConfig {
	return CLIConfig{
		MaxPayload: 0,
		RetryDelay: 0,
		LogLevel:   "info",
		Listen:     "127.0.0.1:9443",
	}
}

// LoadConfig reads CLI tunables from configPath (if non-empty) and from
// CHANCTL_-prefixed environment variables, falling back to defaultCLIConfig
// for anything unset.
func LoadConfig(configPath string) (CLIConfig, error) {
	v := newConfigViper(configPath)
	cfg := defaultCLIConfig()
	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("chanio: read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("chanio: unmarshal config: %w", err)
	}
	return cfg, nil
}

func newConfigViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CHANCTL")
	v.AutomaticEnv()
	d := defaultCLIConfig()
	v.SetDefault("max_payload", d.MaxPayload)
	v.SetDefault("retry_delay", d.RetryDelay)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("listen", d.Listen)
	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	return v
}

// ConfigChangeFunc is called with the freshly reloaded configuration
// whenever the watched file changes.
type ConfigChangeFunc func(CLIConfig)

// WatchConfig watches configPath for changes and invokes onChange with the
// reloaded CLIConfig each time it is rewritten. The returned stop function
// closes the underlying watcher.
func WatchConfig(configPath string, onChange ConfigChangeFunc) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("chanio: new watcher: %w", err)
	}
	if err := w.Add(configPath); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("chanio: watch %s: %w", configPath, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := LoadConfig(configPath)
				if err != nil {
					continue
				}
				if onChange != nil {
					onChange(cfg)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return w.Close, nil
}
