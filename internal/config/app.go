package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SITESTUDIO_LOG_LEVEL.
const EnvPrefix = "SITESTUDIO"

// App is the studio's runtime configuration.
type App struct {
	DataDir      string `mapstructure:"data_dir" validate:"required"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	HumanLogs    bool   `mapstructure:"human_logs"`
	TemplatesDir string `mapstructure:"templates_dir"`
	CSSPrefix    string `mapstructure:"css_prefix" validate:"css_ident"`
}

// StorePath is the file backing the preference store.
func (a App) StorePath() string {
	return filepath.Join(a.DataDir, "storage.json")
}

// Load resolves configuration from defaults, an optional config file and the
// environment. A .env file in the working directory or the default data dir
// seeds the environment first.
// An explicit cfgFile must exist; the implicit search tolerates a missing file.
func Load(cfgFile string) (*App, error) {
	v := viper.New()

	defaultDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	loadDotEnv(".env", filepath.Join(defaultDir, ".env"))

	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("log_level", "warn")
	v.SetDefault("human_logs", true)
	v.SetDefault("templates_dir", "")
	v.SetDefault("css_prefix", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(defaultDir)
		v.SetConfigName("sitestudio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFile == "":
		case cfgFile != "" && errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	app.LogLevel = strings.ToLower(app.LogLevel)

	if err := ValidateStruct(app); err != nil {
		return nil, err
	}

	return &app, nil
}

// loadDotEnv loads the first existing file among paths into the process
// environment. Variables already set are not overridden.
func loadDotEnv(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".sitestudio"), nil
}
