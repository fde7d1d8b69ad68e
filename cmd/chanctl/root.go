// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chanctl is a small operational CLI exercising a chanio.Channel
// over a TCP listener, for manual testing and as a wiring reference. It is
// not a protocol feature; chanio itself ships no servers or clients.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chanproto.dev/chanio"
)

var (
	cfgFile    string
	listenAddr string
	logLevel   string
)

var (
	configMu     sync.RWMutex
	activeConfig chanio.CLIConfig
	stopWatch    func() error
)

var rootCmd = &cobra.Command{
	Use:   "chanctl",
	Short: "chanctl drives a chanio Channel over TCP for manual testing",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "listen/dial address (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dialCmd)
}

// initConfig loads chanctl's tunables through chanio.LoadConfig (so --config
// and CHANCTL_-prefixed env vars reach MaxPayload/RetryDelay, not just the
// raw listen/log-level flags) and, when a config file was given, keeps it
// live via chanio.WatchConfig. CLI flags that were explicitly set always win
// over both the file and its defaults.
func initConfig() {
	cfg, err := chanio.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chanctl: config:", err)
		cfg = chanio.CLIConfig{LogLevel: "info", Listen: "127.0.0.1:9443"}
	}
	applyFlagOverrides(&cfg)
	setActiveConfig(cfg)

	if cfgFile == "" {
		return
	}
	stop, err := chanio.WatchConfig(cfgFile, func(updated chanio.CLIConfig) {
		applyFlagOverrides(&updated)
		setActiveConfig(updated)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "chanctl: watch config:", err)
		return
	}
	stopWatch = stop
}

// applyFlagOverrides lets explicit --listen/--log-level flags win over
// whatever chanio.LoadConfig produced from file/env/defaults.
func applyFlagOverrides(cfg *chanio.CLIConfig) {
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}

func setActiveConfig(cfg chanio.CLIConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = cfg
}

func currentConfig() chanio.CLIConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeConfig
}

func newLogger() *zap.Logger {
	var cfg zap.Config
	switch currentConfig().LogLevel {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func main() {
	Execute()
}
