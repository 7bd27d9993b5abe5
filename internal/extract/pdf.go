// Package extract pulls the raw text out of a PDF schedule export. It
// is the boundary collaborator for the parsing pipeline: one flat
// concatenated string per document plus a page count. Everything
// downstream treats that string as untrusted and self-repairs.
package extract

import (
	"fmt"
	"strings"

	"github.com/ajroetker/pdf"
)

// Result is the extraction output for one document.
type Result struct {
	Text  string
	Pages int
}

// ProgressFunc reports per-page progress. page is 1-based.
type ProgressFunc func(page, total int)

// Text extracts every page's text, joining items with spaces and pages
// with newlines, the way the schedule exports lay out their rows. The
// optional progress callback fires after each page.
func Text(path string, progress ProgressFunc) (Result, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	var b strings.Builder
	for i := 1; i <= total; i++ {
		b.WriteString(pageText(r, i))
		b.WriteByte('\n')
		if progress != nil {
			progress(i, total)
		}
	}
	return Result{Text: b.String(), Pages: total}, nil
}

// pageText renders one page's text items in content order. A page that
// cannot be decoded contributes nothing; the pipeline's density check
// catches documents where that happens throughout.
func pageText(r *pdf.Reader, n int) (text string) {
	// Malformed pages panic inside the decoder; treat them as empty.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	p := r.Page(n)
	if p.V.IsNull() {
		return ""
	}
	var b strings.Builder
	for _, t := range p.Content().Text {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
	}
	return b.String()
}
