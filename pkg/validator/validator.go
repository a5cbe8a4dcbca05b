package validator

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the set of failed rules returned by Apply.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed at least one rule.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Fields groups the messages by field.
func (e Errors) Fields() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Rule is a deferred check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply runs every rule and returns Errors for those that failed, or nil.
func Apply(rules ...Rule) error {
	var errs Errors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Extract returns the Errors wrapped in err, or nil.
func Extract(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

func rule(field string, ok func() bool, format string, args ...any) Rule {
	return Rule{Check: ok, Error: FieldError{Field: field, Message: fmt.Sprintf(format, args...)}}
}
