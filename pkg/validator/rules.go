package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Numeric is any integer or float type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Required fails for empty and whitespace-only strings.
func Required(field, value string) Rule {
	return rule(field, func() bool { return strings.TrimSpace(value) != "" }, "must not be empty")
}

// MaxLen limits the length of value in runes.
func MaxLen(field, value string, max int) Rule {
	return rule(field, func() bool { return utf8.RuneCountInString(value) <= max },
		"must be at most %d characters", max)
}

// MinItems requires at least min elements.
func MinItems[T any](field string, values []T, min int) Rule {
	msg := "must contain at least %d entries"
	if min == 1 {
		msg = "must contain at least %d entry"
	}
	return rule(field, func() bool { return len(values) >= min }, msg, min)
}

// MaxItems allows at most max elements.
func MaxItems[T any](field string, values []T, max int) Rule {
	return rule(field, func() bool { return len(values) <= max }, "must contain at most %d entries", max)
}

// OneOf requires value to be one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return rule(field, func() bool { return slices.Contains(allowed, value) },
		"must be one of: %s", strings.Join(allowed, ", "))
}

// NonNegative fails for values below zero.
func NonNegative[T Numeric](field string, value T) Rule {
	return rule(field, func() bool { return value >= 0 }, "must not be negative")
}

// Each builds one rule per element. Element fields are named "field[i]".
func Each[T any](field string, values []T, build func(field string, value T) Rule) []Rule {
	rules := make([]Rule, len(values))
	for i, v := range values {
		rules[i] = build(fmt.Sprintf("%s[%d]", field, i), v)
	}
	return rules
}
