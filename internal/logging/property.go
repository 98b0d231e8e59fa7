package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrPropertyAbsent = errors.New("property has no value")
	ErrEmptyPath      = errors.New("log file path is empty")
)

// PropertyDefiner computes a value that configuration can refer to by name.
// ok is false when no value could be produced.
type PropertyDefiner interface {
	PropertyValue() (value string, ok bool)
}

// CachedPropertyDefiner reports a value only when it has already been
// computed, without side effects.
type CachedPropertyDefiner interface {
	CachedPropertyValue() (value string, ok bool)
}

// StaticProperty is a PropertyDefiner with a fixed value.
type StaticProperty string

func (p StaticProperty) PropertyValue() (string, bool) {
	return string(p), true
}

func (p StaticProperty) CachedPropertyValue() (string, bool) {
	return p.PropertyValue()
}

// ExpandPath replaces ${name} and $name in template with the values of the
// matching properties.
func ExpandPath(template string, props map[string]PropertyDefiner) (string, error) {
	var absent []string
	path := os.Expand(template, func(name string) string {
		definer, ok := props[name]
		if !ok || definer == nil {
			absent = append(absent, name)
			return ""
		}
		v, ok := definer.PropertyValue()
		if !ok {
			absent = append(absent, name)
			return ""
		}
		return v
	})
	if len(absent) > 0 {
		return "", fmt.Errorf("%w: %s", ErrPropertyAbsent, strings.Join(absent, ", "))
	}
	if path == "" {
		return "", ErrEmptyPath
	}
	return path, nil
}
