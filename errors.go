package gopaginator

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every error returned from New.
var ErrConfiguration = errors.New("invalid paginator configuration")

// ConfigurationError reports why a Paginator could not be constructed.
type ConfigurationError struct {
	Reason string
}

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
