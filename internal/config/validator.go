package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidStrategies returns the accepted conflict.strategy values
func ValidStrategies() []string {
	return []string{"prompt", "newer", "left", "right", "concat", "defer"}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the client configuration.
func (c *Client) Validate() ValidationErrors {
	var errs ValidationErrors

	if u, err := url.Parse(c.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "server_url", Value: c.ServerURL, Message: "must be an absolute URL"})
	}
	if c.DBPath == "" {
		errs = append(errs, ValidationError{Field: "db_path", Value: c.DBPath, Message: "must not be empty"})
	}
	if !slices.Contains(ValidStrategies(), c.Conflict.Strategy) {
		errs = append(errs, ValidationError{
			Field:   "conflict.strategy",
			Value:   c.Conflict.Strategy,
			Message: "must be one of " + strings.Join(ValidStrategies(), ", "),
		})
	}
	if c.Conflict.SessionTimeout < 0 {
		errs = append(errs, ValidationError{Field: "conflict.session_timeout", Value: c.Conflict.SessionTimeout, Message: "must not be negative"})
	}
	if c.Conflict.WaitTimeout < 0 {
		errs = append(errs, ValidationError{Field: "conflict.wait_timeout", Value: c.Conflict.WaitTimeout, Message: "must not be negative"})
	}
	if c.Signal.Retention < 0 {
		errs = append(errs, ValidationError{Field: "signal.retention", Value: c.Signal.Retention, Message: "must not be negative"})
	}

	return append(errs, c.Log.validate()...)
}

// Validate checks the server configuration.
func (c *Server) Validate() ValidationErrors {
	var errs ValidationErrors

	if c.Listen == "" {
		errs = append(errs, ValidationError{Field: "listen", Value: c.Listen, Message: "must not be empty"})
	}
	if c.DBPath == "" {
		errs = append(errs, ValidationError{Field: "db_path", Value: c.DBPath, Message: "must not be empty"})
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, ValidationError{Field: "jwt_secret", Value: "***", Message: "must be at least 16 characters"})
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "token_ttl", Value: c.TokenTTL, Message: "must be positive"})
	}
	if c.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "rate_limit", Value: c.RateLimit, Message: "must not be negative"})
	}

	return append(errs, c.Log.validate()...)
}

func (l LogConfig) validate() ValidationErrors {
	var errs ValidationErrors
	if !slices.Contains(ValidLogLevels(), strings.ToLower(l.Level)) {
		errs = append(errs, ValidationError{Field: "log.level", Value: l.Level, Message: "must be one of " + strings.Join(ValidLogLevels(), ", ")})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(l.Format)) {
		errs = append(errs, ValidationError{Field: "log.format", Value: l.Format, Message: "must be one of " + strings.Join(ValidLogFormats(), ", ")})
	}
	return errs
}
