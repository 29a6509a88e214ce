// cmd/tidecalc/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/tidecalc/internal/app"
	"github.com/bethropolis/tidecalc/internal/config"
	"github.com/bethropolis/tidecalc/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogPath() // The TUI owns stderr
	}
	if err := logger.Setup(cfg.Logger); err != nil {
		stlog.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Close()
	logger.SetDebugFilter(*flags.DebugLog)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)
	logger.Debugf("Log file: %s", cfg.Logger.LogFilePath)
	if cfgErr != nil {
		logger.Errorf("Config: %v (using defaults)", cfgErr)
	}
	for _, keys := range cfg.Undecoded() {
		logger.Warnf("Config: Unknown keys ignored: %s", keys)
	}

	// --- Create and Run App ---
	calcApp, err := app.NewApp(cfg, nil)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logger.Close()
		stlog.Fatalf("Error initializing application: %v", err)
	}

	if err := calcApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
