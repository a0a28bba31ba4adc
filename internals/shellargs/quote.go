package shellargs

import (
	"strings"
	"unicode"
)

func needsQuoting(c rune) bool {
	return unicode.IsSpace(c) || strings.ContainsRune(`'"\$`, c)
}

// Quote returns arg as a single token. Splitting the result with a [Map]
// strategy yields arg again.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.IndexFunc(arg, needsQuoting) < 0 {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// Join quotes every arg and joins them with spaces
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}
