package parse

import "strings"

// candidate is one unvalidated field tuple with its character offset in
// the normalized text. The builder consumes and discards it.
type candidate struct {
	day      string
	month    string
	year     string
	typeName string
	variant  string
	region   string
	location string
	instr    string
	clock    string
	duration string
	offset   int
}

// fragment is an independently matched piece of text used by the
// fallback association step.
type fragment struct {
	value  string
	offset int
}

// match applies the primary composite pattern, then associates leftover
// tail fragments with their nearest date and class-type fragments.
// Candidates come out in the order found; the builder sorts later.
func (p *Parser) match(text string) []candidate {
	var out []candidate

	primarySpans := p.primary.FindAllStringSubmatchIndex(text, -1)
	covered := make([][2]int, 0, len(primarySpans))
	for _, m := range primarySpans {
		covered = append(covered, [2]int{m[0], m[1]})
		c := candidate{
			day:      submatch(text, m, 1),
			month:    submatch(text, m, 2),
			year:     submatch(text, m, 3),
			typeName: submatch(text, m, 4),
			variant:  submatch(text, m, 5),
			region:   submatch(text, m, 6),
			location: submatch(text, m, 7),
			instr:    submatch(text, m, 8),
			clock:    submatch(text, m, 9),
			duration: submatch(text, m, 10),
			offset:   m[0],
		}
		if p.excluded(text, c) {
			continue
		}
		out = append(out, c)
	}

	// Fallback: entries the composite pattern could not span because
	// the extractor scattered their fields. PDF text ordering is not
	// guaranteed to keep one entry contiguous.
	dates := p.findDateFragments(text)
	types := p.findTypeFragments(text)

	for _, m := range p.tailRe.FindAllStringSubmatchIndex(text, -1) {
		if insideAny(m[0], covered) {
			continue
		}
		c := candidate{
			region:   submatch(text, m, 1),
			location: submatch(text, m, 2),
			instr:    submatch(text, m, 3),
			clock:    submatch(text, m, 4),
			duration: submatch(text, m, 5),
			offset:   m[0],
		}
		date, ok := nearestDate(dates, m[0], p.vocab.MaxAssocDistance)
		if !ok {
			continue
		}
		c.day, c.month, c.year = date.day, date.month, date.year
		if tf, ok := nearestFragment(types, m[0], p.vocab.MaxAssocDistance); ok {
			c.typeName = tf.value
		}
		if p.excluded(text, c) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// excluded reports whether a candidate must be discarded: a
// cancellation keyword nearby, or a variant/location belonging to a
// denylisted class family.
func (p *Parser) excluded(text string, c candidate) bool {
	lo := c.offset - p.vocab.CancelWindow
	if lo < 0 {
		lo = 0
	}
	hi := c.offset + p.vocab.CancelWindow
	if hi > len(text) {
		hi = len(text)
	}
	if p.cancelRe.MatchString(text[lo:hi]) {
		return true
	}
	haystack := strings.ToLower(c.variant + " " + c.location)
	for _, word := range p.vocab.Denylist {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}

// dateFragment is a date found during the fallback scan.
type dateFragment struct {
	day    string
	month  string
	year   string
	offset int
}

func (p *Parser) findDateFragments(text string) []dateFragment {
	var out []dateFragment
	for _, m := range p.dateRe.FindAllStringSubmatchIndex(text, -1) {
		day := submatch(text, m, 1)
		if day == "" {
			day = submatch(text, m, 3)
		}
		if day == "" {
			continue
		}
		out = append(out, dateFragment{
			day:    day,
			month:  submatch(text, m, 2),
			year:   submatch(text, m, 4),
			offset: m[0],
		})
	}
	return out
}

func (p *Parser) findTypeFragments(text string) []fragment {
	var out []fragment
	for _, m := range p.typeRe.FindAllStringIndex(text, -1) {
		out = append(out, fragment{value: text[m[0]:m[1]], offset: m[0]})
	}
	return out
}

// nearestDate picks the closest date fragment before the target offset;
// only when none precedes it does the closest following one win. Ties
// break toward the earlier fragment. Beyond maxDist there is no match.
func nearestDate(dates []dateFragment, target, maxDist int) (dateFragment, bool) {
	best := -1
	bestDist := maxDist
	for i, d := range dates {
		if d.offset >= target {
			continue
		}
		if dist := target - d.offset; dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		for i, d := range dates {
			if d.offset < target {
				continue
			}
			if dist := d.offset - target; dist < bestDist {
				bestDist = dist
				best = i
			}
		}
	}
	if best < 0 {
		return dateFragment{}, false
	}
	return dates[best], true
}

// nearestFragment picks the closest fragment, penalizing ones after the
// target twice over since an entry's type is printed before its tail.
func nearestFragment(frags []fragment, target, maxDist int) (fragment, bool) {
	best := -1
	bestDist := maxDist
	for i, f := range frags {
		dist := target - f.offset
		if f.offset >= target {
			dist = (f.offset - target) * 2
		}
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		return fragment{}, false
	}
	return frags[best], true
}

func insideAny(pos int, spans [][2]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}

func submatch(text string, m []int, i int) string {
	lo, hi := m[2*i], m[2*i+1]
	if lo < 0 {
		return ""
	}
	return strings.TrimSpace(text[lo:hi])
}
