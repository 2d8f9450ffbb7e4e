package watchdog

import (
	"fmt"

	"github.com/core-tools/hsu-memwatch/pkg/errors"
)

// ValidateConfig validates the entire configuration structure. Malformed
// configuration is rejected here, at startup, and never surfaces mid-loop.
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	if err := validateMemwatchConfig(&config.Memwatch); err != nil {
		return errors.NewValidationError("invalid memwatch configuration", err)
	}

	if err := validateSupervisorConfig(&config.Supervisor); err != nil {
		return errors.NewValidationError("invalid supervisor configuration", err)
	}

	if err := validateLogLevel(config.Logging.Level); err != nil {
		return errors.NewValidationError("invalid logging configuration", err)
	}

	return nil
}

func validateMemwatchConfig(config *MemwatchConfigOptions) error {
	if config.Any == nil {
		return errors.NewValidationError("catch-all threshold 'any' is required", nil)
	}
	if *config.Any < 0 {
		return errors.NewValidationError(
			fmt.Sprintf("catch-all threshold cannot be negative: %d", *config.Any),
			nil,
		)
	}

	for key, threshold := range config.Programs {
		if threshold < 0 {
			return errors.NewValidationError(
				fmt.Sprintf("program threshold cannot be negative: %d", threshold),
				nil,
			).WithContext("program", key)
		}
	}
	for key, threshold := range config.Groups {
		if threshold < 0 {
			return errors.NewValidationError(
				fmt.Sprintf("group threshold cannot be negative: %d", threshold),
				nil,
			).WithContext("group", key)
		}
	}

	if config.Uptime != nil && *config.Uptime < 0 {
		return errors.NewValidationError(
			fmt.Sprintf("minimum uptime cannot be negative: %v", *config.Uptime),
			nil,
		)
	}

	return nil
}

func validateSupervisorConfig(config *SupervisorConfigOptions) error {
	if config.URL == "" {
		return errors.NewValidationError("supervisor URL is required", nil)
	}
	if config.TickInterval <= 0 {
		return errors.NewValidationError(
			fmt.Sprintf("tick interval must be positive: %v", config.TickInterval),
			nil,
		)
	}
	if config.RequestTimeout <= 0 {
		return errors.NewValidationError(
			fmt.Sprintf("request timeout must be positive: %v", config.RequestTimeout),
			nil,
		)
	}
	return nil
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}

	return errors.NewValidationError(
		fmt.Sprintf("invalid log level: %s", level),
		nil,
	).WithContext("valid_levels", "debug, info, warn, error")
}
