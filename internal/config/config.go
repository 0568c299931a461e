package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// CapacityOverride adjusts the block capacities of trip days whose calendar
// dates match an rrule. A nil field leaves that block at its default.
type CapacityOverride struct {
	RRule         string `yaml:"rrule" validate:"required"`
	MorningMins   *int   `yaml:"morningMins,omitempty" validate:"omitempty,min=0"`
	AfternoonMins *int   `yaml:"afternoonMins,omitempty" validate:"omitempty,min=0"`
	EveningMins   *int   `yaml:"eveningMins,omitempty" validate:"omitempty,min=0"`
}

// Config represents the application configuration
type Config struct {
	CatalogSheetID    string             `yaml:"catalogSheetID" validate:"required"`
	ActivitiesTab     string             `yaml:"activitiesTab" validate:"required"`
	ItinerarySheetID  string             `yaml:"itinerarySheetID" validate:"required"`
	DatabaseURL       string             `yaml:"databaseURL,omitempty" validate:"required"`
	DefaultDaysCount  int                `yaml:"defaultDaysCount" validate:"required,min=1"`
	CapacityOverrides []CapacityOverride `yaml:"capacityOverrides,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for the given environment.
// It looks for tripsmith_config.<env>.yaml in the current directory first,
// then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// The database URL can come from the environment instead of the config
	// file so credentials stay out of version control. A .env file in the
	// working directory is honored.
	_ = godotenv.Load()
	if url := os.Getenv("TRIPSMITH_DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.CapacityOverrides {
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in capacityOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for tripsmith_config.<env>.yaml in the current
// directory and the home directory
func findConfigFile(env string) (string, error) {
	configFileName := fmt.Sprintf("tripsmith_config.%s.yaml", env)

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
