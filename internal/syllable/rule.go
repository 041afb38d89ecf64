package syllable

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownRule is returned by RuleByName for names it does not know.
var ErrUnknownRule = errors.New("syllable: unknown compatibility rule")

// Rule decides whether next may directly follow prev inside a name.
// Implementations must return the same verdict for the same pair every time.
type Rule interface {
	Compatible(prev, next Syllable) bool
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(prev, next Syllable) bool

func (f RuleFunc) Compatible(prev, next Syllable) bool {
	return f(prev, next)
}

var (
	// Flags applies the +v/+c/-v/-c flags carried by the dialect file.
	Flags Rule = RuleFunc(func(prev, next Syllable) bool {
		return prev.Compatible(next)
	})

	// NoEcho rejects boundaries that repeat a letter, as in "dor" + "ra".
	NoEcho Rule = RuleFunc(func(prev, next Syllable) bool {
		last, first := lastLetter(prev.text), firstLetter(next.text)
		return unicode.ToLower(last) != unicode.ToLower(first)
	})

	// Strict combines Flags and NoEcho.
	Strict = All(Flags, NoEcho)
)

// All returns a rule that holds only when every given rule holds.
func All(rules ...Rule) Rule {
	return RuleFunc(func(prev, next Syllable) bool {
		for _, r := range rules {
			if !r.Compatible(prev, next) {
				return false
			}
		}
		return true
	})
}

// RuleByName resolves the rule names accepted in configuration.
func RuleByName(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "flags":
		return Flags, nil
	case "no-echo":
		return NoEcho, nil
	case "strict":
		return Strict, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}
