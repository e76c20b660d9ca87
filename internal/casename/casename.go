// Package casename renders display names for parameterized test cases.
//
// Names must be byte-stable across platforms and runs: string arguments
// are NFC normalized before quoting so that visually identical names
// compare equal, and long strings are truncated to keep reported names
// readable.
package casename

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxStringRunes is the rune budget for a string argument before it is
// truncated with an ellipsis inside the quotes.
const maxStringRunes = 40

// Format renders "Base(arg1,arg2)" for a parameterized case, or just
// "Base" when args is nil (the no-argument invocation).
func Format(base string, args []any) string {
	if args == nil {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatValue(arg))
	}
	b.WriteByte(')')
	return b.String()
}

// FormatValue renders one argument value.
//
// Strings are NFC normalized, truncated past the rune budget, and
// quoted with Go escape syntax. nil renders as "nil". Everything else
// uses fmt's %v verb.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		// NFC normalize at the rendering boundary.
		s := norm.NFC.String(val)
		if runes := []rune(s); len(runes) > maxStringRunes {
			s = string(runes[:maxStringRunes]) + "..."
		}
		return strconv.Quote(s)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Qualify joins an owner type name and a case display name into the
// fully qualified reporting name.
func Qualify(owner, name string) string {
	if owner == "" {
		return name
	}
	return owner + "." + name
}
