package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrNoSurface indicates a simulation was initialised without a rendering surface.
	ErrNoSurface = errors.New("dynamo: no rendering surface")

	// ErrNoTimer indicates a simulation was started without a timer service.
	ErrNoTimer = errors.New("dynamo: no timer service")

	// ErrNotInitialized indicates an operation that requires Init was called first.
	ErrNotInitialized = errors.New("dynamo: simulation not initialized")

	// ErrAlreadyInitialized indicates Init was called on a live simulation.
	ErrAlreadyInitialized = errors.New("dynamo: simulation already initialized")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrUnknownIntegrator indicates an integrator name with no registered rule.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")
)

// ConfigError wraps ErrInvalidConfig with the offending field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.Field + " " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
