package config

import "time"

// Base application details
const AppName = "tidecalc"
const ConfigDirName = "tidecalc"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "tidecalc.log"
const Version = "0.3.0"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Keypad button highlight after a press
const FlashDuration = 120 * time.Millisecond

// Calculator defaults
const DefaultHistorySize = 10
const MaxHistorySize = 100
const SystemClipboard = true
