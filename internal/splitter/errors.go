package splitter

import "fmt"

// PageRangeError reports a referenced page beyond the document's length.
type PageRangeError struct {
    Page       int
    TotalPages int
}

func (e *PageRangeError) Error() string {
    return fmt.Sprintf("Page %d does not exist. PDF has %d pages.", e.Page, e.TotalPages)
}

// DocumentError reports source bytes that could not be loaded as a PDF.
type DocumentError struct {
    Err error
}

func (e *DocumentError) Error() string {
    return fmt.Sprintf("failed to load PDF document: %v", e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }
