package split_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/pkg/utils"
)

var errFakeWrite = errors.New("fake serialization failure")

// fakeDocument serializes a unit as a fixed header followed by each page's
// bytes, so a unit's size is exactly overhead + sum of its page sizes.
type fakeDocument struct {
	pageSizes []int64
	overhead  int64
	failOn    int
	closed    bool
	writes    int
}

func newFakeDocument(pageSizesMB ...float64) *fakeDocument {
	sizes := make([]int64, len(pageSizesMB))
	for i, mb := range pageSizesMB {
		sizes[i] = int64(mb * utils.BytesPerMB)
	}
	return &fakeDocument{pageSizes: sizes, overhead: 1024}
}

func uniformFakeDocument(pages int, pageSizeMB float64) *fakeDocument {
	sizes := make([]float64, pages)
	for i := range sizes {
		sizes[i] = pageSizeMB
	}
	return newFakeDocument(sizes...)
}

func (d *fakeDocument) PageCount() int {
	return len(d.pageSizes)
}

func (d *fakeDocument) WritePages(w io.Writer, pageNrs []int) error {
	d.writes++
	for _, nr := range pageNrs {
		if nr == d.failOn {
			return errFakeWrite
		}
	}

	header := fmt.Sprintf("%%FAKE %v\n", pageNrs)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if err := writeFill(w, '#', d.overhead-int64(len(header))); err != nil {
		return err
	}

	for _, nr := range pageNrs {
		if err := writeFill(w, byte('a'+nr%26), d.pageSizes[nr-1]); err != nil {
			return err
		}
	}
	return nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

func writeFill(w io.Writer, b byte, n int64) error {
	chunk := bytes.Repeat([]byte{b}, 64*1024)
	for n > 0 {
		size := int64(len(chunk))
		if n < size {
			size = n
		}
		if _, err := w.Write(chunk[:size]); err != nil {
			return err
		}
		n -= size
	}
	return nil
}

type fakeOpener struct {
	docs    map[string]*fakeDocument
	openErr error
	opened  []string
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{docs: make(map[string]*fakeDocument)}
}

func (o *fakeOpener) Open(path string) (pdf.Document, error) {
	o.opened = append(o.opened, path)
	if o.openErr != nil {
		return nil, o.openErr
	}
	doc, ok := o.docs[path]
	if !ok {
		return nil, fmt.Errorf("no fake document for %s", path)
	}
	return doc, nil
}
