package urlbuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// stringifyArgs renders a modifier token from a prefix and an ordered list of
// primitive arguments. A nil argument marks an omitted optional: a trailing
// run of nils is dropped entirely, while a nil that precedes a supplied
// argument renders as an empty string (imgproxy reads an empty argument as
// the modifier's default).
func stringifyArgs(prefix string, args ...interface{}) string {
	n := len(args)
	for n > 0 && args[n-1] == nil {
		n--
	}

	parts := make([]string, 0, n+1)
	parts = append(parts, prefix)
	for _, a := range args[:n] {
		parts = append(parts, formatArg(a))
	}
	return strings.Join(parts, ":")
}

// formatArg renders a single token argument in its canonical textual form.
func formatArg(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		// Chain methods only ever pass the types above; anything else is a
		// bug in this package.
		panic(fmt.Sprintf("urlbuilder: unsupported token argument type %T", v))
	}
}

// optBool returns nil for false so a false optional is omitted rather than
// rendered as "0".
func optBool(b bool) interface{} {
	if !b {
		return nil
	}
	return b
}

// optString returns nil for the empty string.
func optString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// optFloat returns nil for zero. Every optional float argument in the token
// grammar treats zero as "not set".
func optFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
