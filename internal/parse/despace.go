package parse

import (
	"regexp"
	"strings"
	"unicode"
)

// despaceRule collapses one keyword whose letters the extractor spread
// apart ("S i g n a t u r e 5 0") back to its canonical form.
type despaceRule struct {
	re        *regexp.Regexp
	canonical string
}

// compileDespace builds a rule matching the keyword with optional
// whitespace between every character, case-insensitively.
func compileDespace(word string) despaceRule {
	var b strings.Builder
	b.WriteString(`(?i)`)
	runes := []rune(word)
	if isWordRune(runes[0]) {
		b.WriteString(`\b`)
	}
	for i, r := range runes {
		if i > 0 {
			b.WriteString(`\s*`)
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	if isWordRune(runes[len(runes)-1]) {
		b.WriteString(`\b`)
	}
	return despaceRule{re: regexp.MustCompile(b.String()), canonical: word}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// letterRunRe finds runs of three or more single letters separated by
// single spaces, the signature of free-text fields (names, locations)
// rendered glyph by glyph.
var letterRunRe = regexp.MustCompile(`\b(?:[A-Za-z] ){2,}[A-Za-z]\b`)

// collapseLetterRuns joins spaced-out free text back into words and
// re-splits on lower-to-upper transitions, so "A r s e n a l Y a r d s"
// becomes "Arsenal Yards". Passages without letter runs pass through.
func collapseLetterRuns(s string) string {
	matches := letterRunRe.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		lo, hi := m[0], m[1]
		// A trailing "w" followed by a slash belongs to the "w/"
		// instructor separator, not to the run.
		if hi < len(s) && s[hi] == '/' && s[hi-1] == 'w' {
			hi -= 2
			if hi-lo < 5 {
				continue
			}
		}
		b.WriteString(s[last:lo])
		b.WriteString(splitCamel(strings.ReplaceAll(s[lo:hi], " ", "")))
		last = hi
	}
	b.WriteString(s[last:])
	return b.String()
}

// splitCamel inserts a space at each lower-to-upper boundary.
func splitCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prev := rune(0)
	for _, r := range s {
		if unicode.IsLower(prev) && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
