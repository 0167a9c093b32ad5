// Package params reads engine style command line parameters such as
// "-width 640" or "-windowed", the form the window host accepts.
package params

import (
	"os"
	"strconv"
	"strings"
)

// EnvArgs names the environment variable whose value is split and appended
// to the process arguments by FromEnvironment.
const EnvArgs = "PAKFB_ARGS"

// Options holds a raw argument list.
type Options struct {
	args []string
}

// WithArgs wraps an explicit argument list.
func WithArgs(args []string) *Options {
	return &Options{args: append([]string(nil), args...)}
}

// FromEnvironment combines os.Args[1:] with the words of PAKFB_ARGS.
// Parameters on the command line come first and therefore win.
func FromEnvironment() (*Options, error) {
	args := append([]string(nil), os.Args[1:]...)
	if extra := os.Getenv(EnvArgs); extra != "" {
		words, err := Split(extra)
		if err != nil {
			return nil, err
		}
		args = append(args, words...)
	}
	return &Options{args: args}, nil
}

// Args returns a copy of the argument list.
func (o *Options) Args() []string {
	return append([]string(nil), o.args...)
}

// IsSet reports whether param appears anywhere.
func (o *Options) IsSet(param string) bool {
	for _, a := range o.args {
		if a == param {
			return true
		}
	}
	return false
}

// CheckParam returns the argument following the first occurrence of param.
// A missing value or one that is itself an option ("-...") yields false.
func (o *Options) CheckParam(param string) (string, bool) {
	for i, a := range o.args {
		if a != param {
			continue
		}
		if i+1 >= len(o.args) {
			return "", false
		}
		value := o.args[i+1]
		if strings.HasPrefix(value, "-") {
			return "", false
		}
		return value, true
	}
	return "", false
}

// Int is CheckParam parsed as a base 10 integer.
func (o *Options) Int(param string) (int, bool) {
	value, ok := o.CheckParam(param)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float is CheckParam parsed as a float64.
func (o *Options) Float(param string) (float64, bool) {
	value, ok := o.CheckParam(param)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IntOr returns Int(param) or def when the parameter is absent or invalid.
func (o *Options) IntOr(param string, def int) int {
	if n, ok := o.Int(param); ok {
		return n
	}
	return def
}
