package plugin

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/pictool/internal/imaging"
)

// Kind is the value type a transform parameter expects.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	Text
)

// String returns the kind name used in help text and JSON schemas.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// accepts reports whether v is a valid value of kind k. Floats also accept
// ints.
func (k Kind) accepts(v any) bool {
	switch v.(type) {
	case bool:
		return k == Bool
	case int:
		return k == Int || k == Float
	case float64:
		return k == Float
	case string:
		return k == Text
	}
	return false
}

// ParseValue converts the textual value of a command-line option.
//
// "True"/"true" and "False"/"false" become bools, text made only of
// decimal digits becomes an int, anything else that parses as a number
// becomes a float64, and the rest is returned unchanged as a string. The
// transform decides later whether the resulting type is acceptable.
func ParseValue(text string) any {
	switch text {
	case "True", "true":
		return true
	case "False", "false":
		return false
	}
	if isDigits(text) {
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Options holds the named optional arguments of one transform call.
type Options map[string]any

// Bool returns the named option as a bool.
func (o Options) Bool(name string) (bool, error) {
	v, ok := o[name].(bool)
	if !ok {
		return false, invalid(name, "a bool", o[name])
	}
	return v, nil
}

// Int returns the named option as an int.
func (o Options) Int(name string) (int, error) {
	v, ok := o[name].(int)
	if !ok {
		return 0, invalid(name, "an int", o[name])
	}
	return v, nil
}

// Float returns the named option as a float64. Int values are widened.
func (o Options) Float(name string) (float64, error) {
	switch v := o[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, invalid(name, "a number", o[name])
}

// Text returns the named option as a string.
func (o Options) Text(name string) (string, error) {
	v, ok := o[name].(string)
	if !ok {
		return "", invalid(name, "a string", o[name])
	}
	return v, nil
}

func invalid(name, want string, got any) error {
	if got == nil {
		return fmt.Errorf("%w: option %s is missing", imaging.ErrInvalidArgument, name)
	}
	return fmt.Errorf("%w: %s must be %s, got %v (%T)", imaging.ErrInvalidArgument, name, want, got, got)
}
