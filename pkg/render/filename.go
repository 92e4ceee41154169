package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxBaseLen bounds the name part of an export file name, in bytes.
const maxBaseLen = 200

// Filename derives an export file name from the company name: lower-cased,
// whitespace runs collapsed to "-", suffixed with "-logo.<ext>". Path
// separators, dot runs and control characters are removed so the result is
// always a bare, relative file name.
func Filename(text, ext string) string {
	base := strings.Join(strings.Fields(strings.ToLower(text)), "-")
	base = strings.NewReplacer("/", "-", `\`, "-").Replace(base)
	base = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, base)
	for strings.Contains(base, "..") {
		base = strings.ReplaceAll(base, "..", ".")
	}
	for len(base) > maxBaseLen {
		_, size := utf8.DecodeLastRuneInString(base)
		base = base[:len(base)-size]
	}
	if strings.Trim(base, ".") == "" {
		base = "logo"
	}
	return base + "-logo." + ext
}
