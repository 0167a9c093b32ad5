package params

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in argument string")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of arguments")
)

// Split breaks an argument string into words using POSIX shell rules:
// whitespace separates words, single quotes are literal, double quotes
// allow backslash escapes of " \ $ and `, and a bare backslash escapes
// any character.
//
//	Split(`-width 640 -title "my game"`) => ["-width", "640", "-title", "my game"]
func Split(input string) ([]string, error) {
	words := []string{}
	var word strings.Builder
	var single, double, quoted bool

	flush := func() {
		if word.Len() > 0 || quoted {
			words = append(words, word.String())
			word.Reset()
			quoted = false
		}
	}

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\' && !single:
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if double && !strings.ContainsRune("\"\\$`", next) {
				word.WriteRune('\\')
			}
			word.WriteRune(next)

		case ch == '\'' && !double:
			if single {
				quoted = true
			}
			single = !single

		case ch == '"' && !single:
			if double {
				quoted = true
			}
			double = !double

		case unicode.IsSpace(ch) && !single && !double:
			flush()

		default:
			word.WriteRune(ch)
		}
	}

	if single {
		return nil, fmt.Errorf("%w: unclosed single quote", ErrUnclosedQuote)
	}
	if double {
		return nil, fmt.Errorf("%w: unclosed double quote", ErrUnclosedQuote)
	}

	flush()
	return words, nil
}

// Join quotes each argument as needed so that Split(Join(args)) == args.
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = quote(arg)
	}
	return strings.Join(parts, " ")
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}

	special := func(ch rune) bool {
		return unicode.IsSpace(ch) || strings.ContainsRune("'\"\\$`", ch)
	}
	if strings.IndexFunc(arg, special) < 0 {
		return arg
	}

	if !strings.Contains(arg, "'") {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range arg {
		if strings.ContainsRune("\"\\$`", ch) {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('"')
	return b.String()
}
