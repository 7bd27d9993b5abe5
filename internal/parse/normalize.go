package parse

import (
	"regexp"
	"strings"
)

var (
	// The extractor renders some colons as a ratio glyph.
	ratioColonRe = regexp.MustCompile(`∶`)

	// "4:30 pm" / "4:30 P M" → "4:30pm".
	meridiemRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*([ap])\s*m\b`)

	// "M A," → "MA," (region code split by a space).
	regionSplitRe = regexp.MustCompile(`\b([A-Z])\s([A-Z]),`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize repairs common extraction artifacts so a single downstream
// pattern can match either of the known layouts. It is total, pure, and
// idempotent; passages it does not recognize pass through unchanged.
func (p *Parser) Normalize(text string) string {
	s := ratioColonRe.ReplaceAllString(text, ":")

	// Structural keywords first, so the generic letter-run pass never
	// sees a month name or class code.
	for _, d := range p.despacers {
		s = d.re.ReplaceAllString(s, d.canonical)
	}
	s = collapseLetterRuns(s)

	s = meridiemRe.ReplaceAllStringFunc(s, func(m string) string {
		g := meridiemRe.FindStringSubmatch(m)
		return g[1] + strings.ToLower(g[2]) + "m"
	})
	s = regionSplitRe.ReplaceAllString(s, "$1$2,")

	s = p.reorderMarkerDate(s)
	s = p.reorderTimeFirst(s)

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// reorderMarkerDate rewrites the layout where the row marker precedes
// the date tokens, so the date always comes first.
func (p *Parser) reorderMarkerDate(s string) string {
	return p.markerDateRe.ReplaceAllString(s, "$1 "+p.vocab.Marker)
}

// reorderTimeFirst rewrites the layout where an entry's time and
// duration precede the marker instead of following the instructor. The
// time block is moved past the entry's tail. A candidate is skipped
// when the tail is already followed by its own time, which keeps the
// rewrite idempotent and protects adjacent well-formed entries.
func (p *Parser) reorderTimeFirst(s string) string {
	matches := p.timeFirstRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start < last {
			continue
		}
		timeBlock := s[m[2]:m[3]]
		marker := s[m[4]:m[5]]

		tail := p.tailAfterRe.FindString(s[end:])
		if tail == "" {
			continue
		}
		tailEnd := end + len(tail)
		if p.timeLeadRe.MatchString(s[tailEnd:]) {
			continue
		}

		b.WriteString(s[last:start])
		b.WriteString(marker)
		b.WriteString(tail)
		b.WriteString(" ")
		b.WriteString(timeBlock)
		last = tailEnd
	}
	b.WriteString(s[last:])
	return b.String()
}
