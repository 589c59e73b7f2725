package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/purge/internal/dataset"
	"github.com/wesleyorama2/purge/internal/remove"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the configuration.
//
// Returns nil if valid, or a *ValidationErrors containing all validation
// errors.
func (c *BenchConfig) Validate() error {
	errs := &ValidationErrors{}

	if c.Size != nil && *c.Size < 0 {
		errs.Add("size", "size must be a non-negative integer")
	}

	if c.Value != nil && !dataset.InRange(*c.Value) {
		errs.Add("value", fmt.Sprintf("value must be in [%d; %d] range", dataset.MinValue, dataset.MaxValue))
	}

	if c.Repeat != nil && *c.Repeat < 1 {
		errs.Add("repeat", "repeat must be at least 1")
	}
	if c.Workers < 0 {
		errs.Add("workers", "workers cannot be negative")
	}
	if c.MinChunk < 0 {
		errs.Add("minChunk", "minChunk cannot be negative")
	}

	for i, name := range c.Strategies {
		if _, err := remove.ParseStrategy(name); err != nil {
			errs.Add(fmt.Sprintf("strategies[%d]", i), err.Error())
		}
	}

	switch c.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		errs.Add("format", fmt.Sprintf("unknown format: %s", c.Format))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
