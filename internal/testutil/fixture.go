// Package testutil writes small, fully controlled PDF files for tests.
package testutil

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Page describes one fixture page: a line of text and a number of
// incompressible padding bytes hidden in content stream comments.
type Page struct {
	Text    string
	Padding int
}

// UniformPages returns n pages labelled "Page1".."Pagen", each carrying the
// same amount of padding.
func UniformPages(n, padding int) []Page {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Text: fmt.Sprintf("Page%d", i+1), Padding: padding}
	}
	return pages
}

// WritePDF writes a PDF 1.4 file with one page per entry. Padding bytes are
// drawn from a seeded source so the same input always yields the same file.
func WritePDF(path string, pages []Page) error {
	return os.WriteFile(path, BuildPDF(pages), 0644)
}

func BuildPDF(pages []Page) []byte {
	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(int64(len(pages))))

	objCount := 3 + 2*len(pages)
	offsets := make([]int, objCount+1)

	writeObj := func(nr int, body string) {
		offsets[nr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		pageNr := 4 + 2*i
		contentNr := pageNr + 1

		writeObj(pageNr, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentNr,
		))

		content := contentStream(page, rng)
		offsets[contentNr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", contentNr, len(content))
		buf.Write(content)
		buf.WriteString("\nendstream\nendobj\n")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for nr := 1; nr <= objCount; nr++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[nr])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", objCount+1, xrefOffset)

	return buf.Bytes()
}

func contentStream(page Page, rng *rand.Rand) []byte {
	var content bytes.Buffer
	fmt.Fprintf(&content, "BT /F1 24 Tf 72 720 Td (%s) Tj ET\n", page.Text)

	const lineLen = 128
	for written := 0; written < page.Padding; written += lineLen {
		n := lineLen
		if rest := page.Padding - written; rest < n {
			n = rest
		}
		content.WriteByte('%')
		for j := 0; j < n; j++ {
			// Any byte but an end-of-line keeps the comment on one line.
			b := byte(rng.Intn(254) + 1)
			if b == '\n' || b == '\r' {
				b = 'x'
			}
			content.WriteByte(b)
		}
		content.WriteByte('\n')
	}

	return content.Bytes()
}
