package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/tabtray-control/internal/app"
	"github.com/atomicstack/tabtray-control/internal/prefs"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix = "TABTRAY_CONTROL"

	keyConfig        = "config"
	keyDataDir       = "data-dir"
	keyLogFile       = "log-file"
	keyTrace         = "trace"
	keyWidth         = "width"
	keyHeight        = "height"
	keyFooter        = "footer"
	keyPrivate       = "private"
	keyInactiveAfter = "inactive-after"
	keySweepInterval = "sweep-interval"
	keyPrefsFile     = "prefs-file"

	defaultDataDir       = "~/.local/share/tabtray-control"
	defaultConfigDir     = "~/.config/tabtray-control"
	defaultSweepInterval = 30 * time.Second
)

var keys = []string{
	keyConfig, keyDataDir, keyLogFile, keyTrace, keyWidth, keyHeight,
	keyFooter, keyPrivate, keyInactiveAfter, keySweepInterval, keyPrefsFile,
}

// Register defines the runtime flags on fs.
func Register(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "path to a TOML config file")
	fs.String(keyDataDir, defaultDataDir, "directory holding the tab session database and screenshots")
	fs.String(keyLogFile, "", "path to the log file")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	fs.Bool(keyPrivate, false, "open the tray on the private panel")
	fs.Duration(keyInactiveAfter, 0, "inactive tab threshold (0 uses the preferences file)")
	fs.Duration(keySweepInterval, defaultSweepInterval, "how often inactive tabs are re-evaluated")
	fs.String(keyPrefsFile, "", "path to the preferences file")
}

// LoadArgs parses args on a fresh flag set. The environment is read from the
// process.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("tabtray-control", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from parsed flags, TABTRAY_CONTROL_*
// environment variables and the optional config file, in that order of
// precedence.
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	dataDir, err := expand(v.GetString(keyDataDir))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyDataDir, err)
	}
	logFile, err := expand(v.GetString(keyLogFile))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyLogFile, err)
	}
	prefsFile, err := prefs.ResolvePath(v.GetString(keyPrefsFile))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyPrefsFile, err)
	}

	cfg := Config{
		App: app.Config{
			DataDir:       dataDir,
			PrefsFile:     prefsFile,
			Width:         v.GetInt(keyWidth),
			Height:        v.GetInt(keyHeight),
			ShowFooter:    v.GetBool(keyFooter),
			Private:       v.GetBool(keyPrivate),
			InactiveAfter: v.GetDuration(keyInactiveAfter),
			SweepInterval: v.GetDuration(keySweepInterval),
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    v.GetBool(keyTrace),
		},
		Flags: make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		cfg.Flags[key] = v.GetString(key)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	v.SetConfigType("toml")
	if path := v.GetString(keyConfig); path != "" {
		expanded, err := expand(path)
		if err != nil {
			return fmt.Errorf("%s: %w", keyConfig, err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", expanded, err)
		}
		return nil
	}
	dir, err := homedir.Expand(defaultConfigDir)
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.InactiveAfter < 0 {
		return fmt.Errorf("inactive-after must be >= 0 (got %s)", cfg.App.InactiveAfter)
	}
	if cfg.App.SweepInterval <= 0 {
		return fmt.Errorf("sweep-interval must be > 0 (got %s)", cfg.App.SweepInterval)
	}
	if cfg.App.DataDir == "" {
		return errors.New("data-dir must not be empty")
	}
	return nil
}
