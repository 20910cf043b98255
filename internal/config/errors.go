package config

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is wrapped by the ConfigurationError returned when a
// provider needs an API key and none was configured.
var ErrMissingCredential = errors.New("missing credential")

// ConfigurationError reports a setting that is absent or unusable. It is
// always raised before any request leaves the process.
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
