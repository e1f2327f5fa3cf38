package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TypeAnnotation holds parsed @wire annotation
type TypeAnnotation struct {
	Atomic    bool // encode into scratch space and copy on success
	AtomicSet bool // atomic was given explicitly
}

var (
	annotationRe = regexp.MustCompile(`^@wire(?:\s+(.*))?$`)

	errNoAnnotation = errors.New("no @wire annotation found")
)

// ParseAnnotation parses @wire annotation from comment text
//
// Expected format:
//
//	// @wire
//	// @wire atomic
//	// @wire atomic=false
//
// Params are space-separated; boolean params may omit "=true".
func ParseAnnotation(comment string) (*TypeAnnotation, error) {
	matches := annotationRe.FindStringSubmatch(strings.TrimSpace(comment))
	if matches == nil {
		return nil, errNoAnnotation
	}

	anno := &TypeAnnotation{}
	for _, param := range strings.Fields(matches[1]) {
		key, value, hasValue := strings.Cut(param, "=")

		switch key {
		case "atomic":
			anno.AtomicSet = true
			if !hasValue {
				anno.Atomic = true
				continue
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("atomic must be true or false, got: %s", value)
			}
			anno.Atomic = b

		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for @wire annotation.
// A line that starts with @wire but carries bad params is an error,
// not a miss.
func FindAnnotation(comments []string) (*TypeAnnotation, bool, error) {
	for _, comment := range comments {
		anno, err := ParseAnnotation(comment)
		if errors.Is(err, errNoAnnotation) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return anno, true, nil
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @wire atomic" → "@wire atomic"
// "/* @wire */" → "@wire"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		return line
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		return line
	}

	return line
}
