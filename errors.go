package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLogBase indicates a logarithm base <= 1.
	ErrInvalidLogBase = errors.New("logarithm base must be greater than 1")

	// ErrBadTickUnit indicates a TickUnitSupplier returned a unit <= 0
	// or a unit that decreases with a growing raw unit.
	ErrBadTickUnit = errors.New("tick unit supplier computed an illegal unit")

	// ErrNoTickUnitSupplier indicates a nil TickUnitSupplier.
	ErrNoTickUnitSupplier = errors.New("no tick unit supplier")

	// ErrNonPositiveLogBound indicates a manual bound <= 0 on a log axis
	// or <= -1 on a log-time axis.
	ErrNonPositiveLogBound = errors.New("log axis bound must be positive")

	// ErrInvalidOption indicates an out of range configuration value.
	ErrInvalidOption = errors.New("invalid option")
)

// ConfigError reports a misconfigured axis. It always wraps one of the
// sentinel errors of this package.
type ConfigError struct {
	Setting string
	Value   any
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("axis: %s = %v: %v", e.Setting, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(setting string, value any, err error) *ConfigError {
	return &ConfigError{Setting: setting, Value: value, Err: err}
}
