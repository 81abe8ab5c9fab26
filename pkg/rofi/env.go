// Package rofi implements the rofi script-mode protocol.
// It decodes the invocation context rofi hands to a script (ROFI_RETV and the
// command line arguments) and encodes mode options and rows into the
// NUL / unit-separator line format rofi reads from the script's stdout.
package rofi

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RetvEnv is the environment variable rofi uses to report why the script
// was invoked.
const RetvEnv = "ROFI_RETV"

// ErrUnknownRetv is returned when ROFI_RETV holds an integer outside the
// values rofi documents.
var ErrUnknownRetv = errors.New("unknown ROFI_RETV value")

// UnknownRetvError carries the offending ROFI_RETV value
type UnknownRetvError struct {
	Value int8
}

func (e *UnknownRetvError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownRetv, e.Value)
}

func (e *UnknownRetvError) Unwrap() error {
	return ErrUnknownRetv
}

// State is the reason for the current script invocation
type State int

const (
	InitialCall State = iota
	EntrySelected
	CustomEntrySelected
	CustomKey
)

// String returns string representation of State
func (s State) String() string {
	switch s {
	case InitialCall:
		return "initial-call"
	case EntrySelected:
		return "entry-selected"
	case CustomEntrySelected:
		return "custom-entry-selected"
	case CustomKey:
		return "custom-key"
	default:
		return "unknown"
	}
}

// Retv is a decoded ROFI_RETV. Key is set only for CustomKey and ranges 1..19.
type Retv struct {
	State State
	Key   int
}

func (r Retv) String() string {
	if r.State == CustomKey {
		return fmt.Sprintf("%s(%d)", r.State, r.Key)
	}
	return r.State.String()
}

// DecodeRetv maps a raw ROFI_RETV integer to a Retv.
//
//	0      -> InitialCall
//	1      -> EntrySelected
//	2      -> CustomEntrySelected
//	10..28 -> CustomKey(1..19)
func DecodeRetv(v int8) (Retv, error) {
	switch {
	case v == 0:
		return Retv{State: InitialCall}, nil
	case v == 1:
		return Retv{State: EntrySelected}, nil
	case v == 2:
		return Retv{State: CustomEntrySelected}, nil
	case v >= 10 && v <= 28:
		return Retv{State: CustomKey, Key: int(v) - 9}, nil
	default:
		return Retv{}, &UnknownRetvError{Value: v}
	}
}

// ParseRetv decodes the textual ROFI_RETV value. Text that is not a signed
// 8-bit integer yields a nil Retv and no error; rofi versions without
// ROFI_RETV support are treated the same way.
func ParseRetv(raw string) (*Retv, error) {
	n, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		return nil, nil
	}

	retv, err := DecodeRetv(int8(n))
	if err != nil {
		return nil, err
	}
	return &retv, nil
}

// Context is the snapshot rofi provides for a single script run
type Context struct {
	// Retv is nil when ROFI_RETV is unset, unparsable or unknown.
	Retv *Retv
	// Input is the space-joined argument list, usually the selected entry.
	Input string
}

// HasState reports whether rofi supplied the given state
func (c *Context) HasState(s State) bool {
	return c.Retv != nil && c.Retv.State == s
}

// ReadContext builds a Context from an environment lookup function and the
// script's arguments (without the program name). Arguments are joined with a
// single space and are not trimmed.
//
// When ROFI_RETV holds an unknown value the returned Context is still usable,
// with a nil Retv, and the *UnknownRetvError is returned alongside it.
func ReadContext(lookup func(string) (string, bool), args []string) (*Context, error) {
	ctx := &Context{Input: strings.Join(args, " ")}

	raw, ok := lookup(RetvEnv)
	if !ok {
		return ctx, nil
	}

	retv, err := ParseRetv(raw)
	if err != nil {
		return ctx, err
	}
	ctx.Retv = retv
	return ctx, nil
}

// NewContext reads the Context of the current process
func NewContext() (*Context, error) {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return ReadContext(os.LookupEnv, args)
}
