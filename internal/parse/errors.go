package parse

import "fmt"

// NoRecordsError signals that the text was readable but contained no
// recognizable attendance entries: wrong document type or an
// unsupported layout. Distinct from NoTextError so the caller can
// render different guidance.
type NoRecordsError struct {
	TextLen int
}

func (e *NoRecordsError) Error() string {
	return "no attendance records found in the document text; " +
		"make sure this is a schedule export with completed classes"
}

// NoTextError signals that extraction produced implausibly little text
// for the page count, which usually means the document is image-only
// and has no text layer.
type NoTextError struct {
	Pages int
	Chars int
}

func (e *NoTextError) Error() string {
	return fmt.Sprintf(
		"document yielded almost no text (%d chars over %d pages); "+
			"it looks like a scanned or image-only PDF", e.Chars, e.Pages)
}
