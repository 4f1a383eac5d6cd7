package chart

import "fmt"

// ConfigError marks a problem the caller must fix before retrying: a bad
// color spec, a malformed period label, a misconfigured or missing encoder.
// It is raised at construction or at the first use of the offending option
// and aborts the whole operation.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
