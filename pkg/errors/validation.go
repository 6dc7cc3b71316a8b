package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports the problems found on one request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// ValidationErrorCollector groups field errors into a single 400 response.
// Messages for the same field are merged into one entry.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

// Add appends err, merging its messages into an existing entry for the same field.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	for _, existing := range c.errors {
		if existing.Field == err.Field {
			existing.Messages = append(existing.Messages, err.Messages...)
			return c
		}
	}
	c.errors = append(c.errors, err)
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

// Fields lists the offending field names in the order they were added.
func (c *ValidationErrorCollector) Fields() []string {
	fields := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		fields = append(fields, err.Field)
	}
	return fields
}

func (c *ValidationErrorCollector) Error() string {
	parts := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
