package parse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/solidstats/internal/class"
)

// TypeKeyword maps a containment keyword to a canonical class type.
// Keywords are tested in slice order, so a longer code must appear
// before any shorter code that is a prefix of it.
type TypeKeyword struct {
	Keyword string     `yaml:"keyword"`
	Type    class.Type `yaml:"type"`
}

// Vocabulary is the declarative table driving normalization and
// matching. Adding a class code, cancel word, or role title is a data
// change here (or in a rules file), not a code change.
type Vocabulary struct {
	// Marker is the keyword that tags an attendance row in the export.
	Marker string `yaml:"marker"`

	// Months in calendar order; slice index is the month index.
	Months []string `yaml:"months"`

	Weekdays []string `yaml:"weekdays"`

	// TypeKeywords in priority order, most specific first.
	TypeKeywords []TypeKeyword `yaml:"type_keywords"`

	// CancelWords near a match exclude it (lowercase).
	CancelWords []string `yaml:"cancel_words"`

	// Denylist excludes entries whose variant or location belongs to a
	// different class family that shares scheduling vocabulary (lowercase).
	Denylist []string `yaml:"denylist"`

	// RoleTitles are stripped from instructor names after a dash.
	RoleTitles []string `yaml:"role_titles"`

	// MinCharsPerPage is the density below which extracted text is
	// treated as "no usable text" (image-only source).
	MinCharsPerPage int `yaml:"min_chars_per_page"`

	// MaxAssocDistance is the furthest, in characters, a fragment may
	// sit from its date/type neighbor and still be associated.
	MaxAssocDistance int `yaml:"max_assoc_distance"`

	// CancelWindow is the half-width of the cancellation search window.
	CancelWindow int `yaml:"cancel_window"`
}

// DefaultVocabulary returns the built-in tables for Mindbody schedule
// exports of [solidcore] classes.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Marker: "[solidcore]",
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Weekdays: []string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
		TypeKeywords: []TypeKeyword{
			{Keyword: "advanced65", Type: class.Advanced65},
			{Keyword: "foundation50", Type: class.Foundation50},
			{Keyword: "signature50", Type: class.Signature50},
			{Keyword: "advanced50", Type: class.Advanced50},
			{Keyword: "starter50", Type: class.Starter50},
			{Keyword: "power30", Type: class.Power30},
			{Keyword: "focus50", Type: class.Focus50},
			{Keyword: "foundation", Type: class.Foundation50},
			{Keyword: "signature", Type: class.Signature50},
			{Keyword: "advanced", Type: class.Advanced50},
			{Keyword: "starter", Type: class.Starter50},
			{Keyword: "power", Type: class.Power30},
			{Keyword: "focus", Type: class.Focus50},
		},
		CancelWords: []string{"cancelled", "canceled", "late cancel"},
		Denylist:    []string{"yoga", "barre", "cycle", "bootcamp", "waitlist"},
		RoleTitles: []string{
			"Senior Master", "Master Coach", "Master", "Pro Coach",
			"Head Coach", "Coach", "Instructor",
		},
		MinCharsPerPage:  40,
		MaxAssocDistance: 500,
		CancelWindow:     100,
	}
}

// fileVocabulary is the YAML rules-file shape. Every field is optional;
// list fields extend the defaults rather than replacing them, except
// type_keywords which are prepended so overrides win.
type fileVocabulary struct {
	Marker       *string       `yaml:"marker"`
	TypeKeywords []TypeKeyword `yaml:"type_keywords"`
	CancelWords  []string      `yaml:"cancel_words"`
	Denylist     []string      `yaml:"denylist"`
	RoleTitles   []string      `yaml:"role_titles"`

	MinCharsPerPage  *int `yaml:"min_chars_per_page"`
	MaxAssocDistance *int `yaml:"max_assoc_distance"`
	CancelWindow     *int `yaml:"cancel_window"`
}

// LoadVocabulary reads a YAML rules file and merges it over the
// defaults. A missing path returns the defaults unchanged.
func LoadVocabulary(path string) (Vocabulary, error) {
	v := DefaultVocabulary()
	if path == "" {
		return v, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return v, fmt.Errorf("read rules file: %w", err)
	}
	var f fileVocabulary
	if err := yaml.Unmarshal(data, &f); err != nil {
		return v, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if f.Marker != nil && *f.Marker != "" {
		v.Marker = *f.Marker
	}
	v.TypeKeywords = append(f.TypeKeywords, v.TypeKeywords...)
	v.CancelWords = append(v.CancelWords, f.CancelWords...)
	v.Denylist = append(v.Denylist, f.Denylist...)
	v.RoleTitles = append(f.RoleTitles, v.RoleTitles...)
	if f.MinCharsPerPage != nil {
		v.MinCharsPerPage = *f.MinCharsPerPage
	}
	if f.MaxAssocDistance != nil {
		v.MaxAssocDistance = *f.MaxAssocDistance
	}
	if f.CancelWindow != nil {
		v.CancelWindow = *f.CancelWindow
	}
	return v, nil
}

// despaceKeywords returns every structural keyword that the normalizer
// should repair when the extractor spaces its letters apart.
func (v Vocabulary) despaceKeywords() []string {
	words := make([]string, 0, len(v.Months)+len(v.Weekdays)+len(v.TypeKeywords)+1)
	words = append(words, v.Months...)
	words = append(words, v.Weekdays...)
	for _, tk := range v.TypeKeywords {
		// Bare base names ("focus") are containment keys, not words the
		// export prints; only full codes get a despace rule.
		if hasDigit(tk.Keyword) {
			words = append(words, string(tk.Type))
		}
	}
	words = append(words, v.Marker)
	return words
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
