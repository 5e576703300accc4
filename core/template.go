package core

import (
	"fmt"
	"strings"
)

// Format substitutes "{N}" placeholders in template with fmt.Sprint of
// args[N]. The template is returned unchanged when no args are given or
// it contains no '{'. Placeholders that are malformed or out of range are
// copied verbatim.
func Format(template string, args ...any) string {
	if len(args) == 0 || strings.IndexByte(template, '{') < 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			continue
		}

		end := strings.IndexByte(template[i+1:], '}')
		if end <= 0 {
			b.WriteByte(c)
			continue
		}

		idx, ok := parseIndex(template[i+1 : i+1+end])
		if !ok || idx >= len(args) {
			b.WriteByte(c)
			continue
		}

		b.WriteString(fmt.Sprint(args[idx]))
		i += end + 1
	}

	return b.String()
}

// parseIndex parses a non-empty run of ASCII digits.
func parseIndex(s string) (int, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
