package parse

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/solidstats/internal/class"
)

const (
	minYear = 2000
	maxYear = 2100
)

// build converts matched candidates into typed records, skipping any
// candidate that fails field validation. It never fails for a single
// malformed candidate; a record is either fully valid or absent.
func (p *Parser) build(candidates []candidate) []class.Record {
	var records []class.Record
	seen := make(map[string]bool)

	for _, c := range candidates {
		date, ok := p.buildDate(c)
		if !ok {
			continue
		}
		r := class.Record{
			Date:       date,
			Time:       strings.ToLower(strings.ReplaceAll(c.clock, " ", "")),
			Type:       p.canonicalType(c.typeName),
			Variant:    cleanField(c.variant),
			Instructor: p.normalizeInstructor(c.instr),
			Location:   stripRegion(cleanField(c.location)),
		}
		if r.Instructor == "" || r.Location == "" {
			continue
		}
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records
}

// buildDate resolves the month name and rejects anything that is not a
// real calendar date in a sane year range.
func (p *Parser) buildDate(c candidate) (time.Time, bool) {
	month, ok := p.monthIndex[strings.ToLower(c.month)]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(c.day)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(c.year)
	if err != nil || year < minYear || year > maxYear {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March; that means the tokens did
	// not name a real date.
	if date.Day() != day || int(date.Month()) != month+1 {
		return time.Time{}, false
	}
	return date, true
}

// canonicalType maps a matched code onto the closed enum. Keywords are
// tested in table order, most specific first. An unmatched code falls
// back to the standard session, the one documented fabrication in the
// pipeline.
func (p *Parser) canonicalType(s string) class.Type {
	lower := strings.ToLower(s)
	for _, tk := range p.vocab.TypeKeywords {
		if strings.Contains(lower, tk.Keyword) {
			return tk.Type
		}
	}
	return class.Signature50
}

// normalizeInstructor strips role suffixes and truncation markers, then
// abbreviates to "First L." form. Single-token names pass through.
func (p *Parser) normalizeInstructor(name string) string {
	s := cleanField(name)
	s = p.roleRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("…", "", "...", "").Replace(s)
	s = strings.TrimRight(strings.TrimSpace(s), "-. ")

	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		last := parts[len(parts)-1]
		return parts[0] + " " + last[:1] + "."
	}
}

// fieldCutset are the secondary delimiters after which a variant or
// location carries only annotations (playlists, footnotes).
var fieldCutset = []string{"•", "|"}

// cleanField re-collapses leftover letter spacing, drops trailing
// annotation segments, and squeezes whitespace.
func cleanField(s string) string {
	for _, cut := range fieldCutset {
		if i := strings.Index(s, cut); i >= 0 {
			s = s[:i]
		}
	}
	s = collapseLetterRuns(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripRegion removes a leading two-letter region prefix ("MA, ").
func stripRegion(location string) string {
	if len(location) >= 3 && location[2] == ',' &&
		isUpperAlpha(location[0]) && isUpperAlpha(location[1]) {
		return strings.TrimSpace(location[3:])
	}
	return location
}

func isUpperAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }
