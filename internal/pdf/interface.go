package pdf

import (
	"io"
)

// Document is an opened source PDF. Page numbers are 1-based.
type Document interface {
	PageCount() int
	// WritePages serializes a new document made of the given pages, in
	// order, to w.
	WritePages(w io.Writer, pageNrs []int) error
	Close() error
}

type Opener interface {
	Open(path string) (Document, error)
}

// TextExtractor returns the plain text of every page, in page order.
type TextExtractor interface {
	Name() string
	ExtractText(path string, progress func(page, total int)) ([]string, error)
}
