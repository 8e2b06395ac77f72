package libopts

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalSpec is returned when the specification tree itself is
	// malformed: duplicate short/long/env bindings, reserved characters or
	// names, flagvalue on a required option, args=remaining on a non-array
	// key, an empty short character. Detected entirely by the compiler
	// (C1), before any argument or environment is inspected.
	ErrIllegalSpec = errors.New("illegal specification")

	// ErrIllegalUse is returned for problems found while parsing argv or
	// applying resolved values: unknown options, a missing required
	// argument, an argument attached to a no-argument option, repetition of
	// a non-array option, or two sources resolving to the same key.
	ErrIllegalUse = errors.New("illegal use")
)

// specErrorf wraps ErrIllegalSpec with a formatted detail message.
func specErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalSpec}, a...)...)
}

// useErrorf wraps ErrIllegalUse with a formatted detail message.
func useErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalUse}, a...)...)
}
