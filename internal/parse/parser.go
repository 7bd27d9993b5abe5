// Package parse recovers structured attendance records from the flat,
// unreliable text a PDF extractor produces. The pipeline is three
// stages: normalize (repair extraction artifacts), match (pattern rules
// over the repaired text), and build (typed, deduplicated records).
// Every stage is pure; re-running on the same input yields identical
// output.
package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/solidstats/internal/class"
)

// Parser holds the compiled pattern grammar for one vocabulary.
// Safe for concurrent use; all methods are read-only.
type Parser struct {
	vocab Vocabulary

	despacers []despaceRule

	// Primary composite pattern: one contiguous entry.
	primary *regexp.Regexp

	// Fragment patterns for the fallback association step.
	dateRe *regexp.Regexp
	typeRe *regexp.Regexp
	tailRe *regexp.Regexp

	// Normalizer rewrites.
	markerDateRe *regexp.Regexp
	timeFirstRe  *regexp.Regexp
	tailAfterRe  *regexp.Regexp
	timeLeadRe   *regexp.Regexp

	cancelRe *regexp.Regexp
	roleRe   *regexp.Regexp

	monthIndex map[string]int
}

// New compiles a Parser for the given vocabulary.
func New(v Vocabulary) *Parser {
	p := &Parser{vocab: v, monthIndex: make(map[string]int, len(v.Months))}

	for i, m := range v.Months {
		p.monthIndex[strings.ToLower(m)] = i
	}
	for _, w := range v.despaceKeywords() {
		p.despacers = append(p.despacers, compileDespace(w))
	}

	months := alternation(v.Months)
	weekdays := alternation(v.Weekdays)
	marker := regexp.QuoteMeta(v.Marker)
	typeCodes := typeCodeAlternation(v.TypeKeywords)

	// A full date span in any admissible token order, used by the
	// reorder rewrites. The weekday may sit before or after the day.
	dateSpan := fmt.Sprintf(
		`(?:%[1]s,?\s+)?\d{1,2}\s+(?:%[1]s,?\s+)?%[2]s,?\s+\d{4}`,
		weekdays, months)

	p.primary = regexp.MustCompile(fmt.Sprintf(
		`(?i)(?:%[1]s,?\s+)?(\d{1,2})\s+(?:%[1]s,?\s+)?(%[2]s),?\s+(\d{4})`+
			`\s+%[3]s\s+(%[4]s)(?:\s*[-–:]\s*|\s+)([^,]*?)\s*`+
			`\b([A-Za-z]{2}),\s*(.+?)\s+w/\s+([A-Za-z][^,()]*?)\s+`+
			`(\d{1,2}:\d{2}(?:am|pm))\s*\((\d+)\s*min\)`,
		weekdays, months, marker, typeCodes))

	p.dateRe = regexp.MustCompile(fmt.Sprintf(
		`(?i)(\d{1,2})?\s*(?:%[1]s)?,?\s*(%[2]s)[,\s]*(\d{1,2})?[,\s]*(\d{4})`,
		weekdays, months))

	p.typeRe = regexp.MustCompile(`(?i)\b(` + typeCodes + `)\b`)

	// The region code needs a word boundary so the trailing letters of
	// a longer word before a comma cannot pose as one.
	p.tailRe = regexp.MustCompile(
		`(?i)\b([A-Za-z]{2}),\s*(.+?)\s+w/\s+([A-Za-z][^,()]*?)\s+` +
			`(\d{1,2}:\d{2}(?:am|pm))\s*\((\d+)\s*min\)`)

	p.markerDateRe = regexp.MustCompile(fmt.Sprintf(
		`(?i)%s\s+(%s)`, marker, dateSpan))

	p.timeFirstRe = regexp.MustCompile(fmt.Sprintf(
		`(?i)(\d{1,2}:\d{2}(?:am|pm)\s*\(\d+\s*min\))\s+(%s)`, marker))
	p.tailAfterRe = regexp.MustCompile(
		`(?i)^\s+\S[^()]*?w/\s+[A-Za-z][A-Za-z .'-]*[A-Za-z.]`)
	p.timeLeadRe = regexp.MustCompile(`(?i)^\s*\d{1,2}:\d{2}(?:am|pm)`)

	p.cancelRe = regexp.MustCompile(`(?i)` + alternation(v.CancelWords))
	p.roleRe = regexp.MustCompile(
		`(?i)\s*-\s*(?:` + alternation(v.RoleTitles) + `)\b.*$`)

	return p
}

// alternation joins literals into a non-capturing regexp group, longest
// first so no literal shadows one it prefixes.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return `(?:` + strings.Join(quoted, `|`) + `)`
}

// typeCodeAlternation builds the class-code group from the full codes
// in the keyword table (base containment keys are not printable codes).
func typeCodeAlternation(keywords []TypeKeyword) string {
	var codes []string
	seen := make(map[class.Type]bool)
	for _, tk := range keywords {
		if hasDigit(tk.Keyword) && !seen[tk.Type] {
			seen[tk.Type] = true
			codes = append(codes, string(tk.Type))
		}
	}
	return alternation(codes)
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
)

// Default returns the Parser for the built-in vocabulary.
func Default() *Parser {
	defaultOnce.Do(func() {
		defaultParser = New(DefaultVocabulary())
	})
	return defaultParser
}

// Normalize repairs extraction artifacts using the default vocabulary.
func Normalize(text string) string {
	return Default().Normalize(text)
}

// ExtractRecords runs the full pipeline with the default vocabulary.
func ExtractRecords(text string) ([]class.Record, error) {
	return Default().ExtractRecords(text)
}

// ExtractRecords composes Normalize, match, and build. It returns
// *NoRecordsError when the text yields no valid records.
func (p *Parser) ExtractRecords(text string) ([]class.Record, error) {
	normalized := p.Normalize(text)
	records := p.build(p.match(normalized))
	if len(records) == 0 {
		return nil, &NoRecordsError{TextLen: len(strings.TrimSpace(text))}
	}
	return records, nil
}

// CheckDensity reports *NoTextError when the extracted text is
// implausibly short for the page count, the signature of an image-only
// document with no text layer.
func (p *Parser) CheckDensity(text string, pages int) error {
	if pages <= 0 {
		pages = 1
	}
	chars := len(strings.TrimSpace(text))
	if chars < pages*p.vocab.MinCharsPerPage {
		return &NoTextError{Pages: pages, Chars: chars}
	}
	return nil
}
