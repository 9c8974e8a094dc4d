package globallog

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatMessages renders msgs the way Python prints a list of strings,
// e.g. ['a', "it's"]. An empty slice renders as [].
func FormatMessages(msgs []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuoted(&b, msg)
	}
	b.WriteByte(']')
	return b.String()
}

// writeQuoted follows Python's str repr: single quotes unless the string
// holds a single quote and no double quote.
func writeQuoted(b *strings.Builder, s string) {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(b, `\u%04x`, r)
		default:
			fmt.Fprintf(b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
}
