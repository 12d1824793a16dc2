package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".qaforge"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for qaforge settings.
const envPrefix = "QAFORGE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// badgeSwitchKey carries the raw UPDATE_BADGES value, which allows loose
// truthy spellings a bool field cannot unmarshal.
const badgeSwitchKey = "badges.update"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
//
// The CI environment variables the original pipeline understands
// (MATRIX_OS, GITHUB_STEP_SUMMARY, UPDATE_BADGES, GITHUB_REPOSITORY, ...)
// are bound to their config keys here so the rest of the program never
// touches the environment.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)
	bindCIEnvironment(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	// UPDATE_BADGES historically accepts 1/true/yes, which is wider than a
	// plain bool parse, so it rides a string key of its own.
	if raw := viperCfg.GetString(badgeSwitchKey); raw != "" {
		cfg.Badges.Enabled = parseBoolish(raw)
	}

	cfg.Run.Commit = shortCommit(cfg.Run.Commit)

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("target", DefaultTarget)

	viperCfg.SetDefault("summary.path", "")

	viperCfg.SetDefault("badges.enabled", false)
	viperCfg.SetDefault("badges.update", "")
	viperCfg.SetDefault("badges.dir", DefaultBadgeDir)

	viperCfg.SetDefault("dashboard.dir", DefaultDashboardDir)
	viperCfg.SetDefault("dashboard.bundle_dir", DefaultBundleDir)
	viperCfg.SetDefault("dashboard.helper", DefaultDashboardHelper)

	viperCfg.SetDefault("matrix.os", DefaultMatrixOS)
	viperCfg.SetDefault("matrix.java", DefaultMatrixJava)

	viperCfg.SetDefault("run.repository", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.workflow", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.os", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.jdk", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.branch", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.commit", DefaultRunPlaceholder)
	viperCfg.SetDefault("run.author", DefaultRunPlaceholder)
}

// bindCIEnvironment maps the CI platform's variable names onto config keys.
// Where several variables can describe the same fact, the first one set wins.
func bindCIEnvironment(viperCfg *viper.Viper) {
	// BindEnv never fails when at least one key is given.
	_ = viperCfg.BindEnv("summary.path", "GITHUB_STEP_SUMMARY")
	_ = viperCfg.BindEnv(badgeSwitchKey, "UPDATE_BADGES")
	_ = viperCfg.BindEnv("badges.dir", "BADGE_OUTPUT_DIR")

	_ = viperCfg.BindEnv("matrix.os", "MATRIX_OS")
	_ = viperCfg.BindEnv("matrix.java", "MATRIX_JAVA")

	_ = viperCfg.BindEnv("run.repository", "GITHUB_REPOSITORY")
	_ = viperCfg.BindEnv("run.workflow", "GITHUB_WORKFLOW")
	_ = viperCfg.BindEnv("run.os", "MATRIX_OS", "RUNNER_OS")
	_ = viperCfg.BindEnv("run.jdk", "MATRIX_JAVA")
	_ = viperCfg.BindEnv("run.branch", "GITHUB_REF_NAME")
	_ = viperCfg.BindEnv("run.commit", "GITHUB_SHA")
	_ = viperCfg.BindEnv("run.author", "GITHUB_ACTOR")
}

// parseBoolish reports whether value is one of the accepted truthy spellings.
func parseBoolish(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// shortCommit truncates a full commit hash for display.
func shortCommit(commit string) string {
	if len(commit) > commitShortLen {
		return commit[:commitShortLen]
	}

	return commit
}
