package pdf_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/gestionpdf/internal/pdf"
	"github.com/kpauljoseph/gestionpdf/internal/testutil"
	"github.com/kpauljoseph/gestionpdf/pkg/logger"
)

func pdfTestLogger() *logger.Logger {
	return logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[pdf-test] "),
		logger.WithFlags(0),
		logger.WithLevels(true, true),
	)
}

var _ = Describe("pdfcpu document", func() {
	var (
		tempDir    string
		sourcePath string
		opener     *pdf.CPUOpener
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pdf-document-test-*")
		Expect(err).NotTo(HaveOccurred())

		sourcePath = filepath.Join(tempDir, "source.pdf")
		Expect(testutil.WritePDF(sourcePath, testutil.UniformPages(4, 20*1024))).To(Succeed())

		opener = pdf.NewOpener(pdfTestLogger())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should report the page count", func() {
		doc, err := opener.Open(sourcePath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		Expect(doc.PageCount()).To(Equal(4))
	})

	It("should serialize a subset of pages into a readable document", func() {
		doc, err := opener.Open(sourcePath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		var buf bytes.Buffer
		Expect(doc.WritePages(&buf, []int{2, 3})).To(Succeed())
		Expect(buf.Bytes()).To(HavePrefix("%PDF-"))

		subsetPath := filepath.Join(tempDir, "subset.pdf")
		Expect(os.WriteFile(subsetPath, buf.Bytes(), 0644)).To(Succeed())

		subset, err := opener.Open(subsetPath)
		Expect(err).NotTo(HaveOccurred())
		defer subset.Close()
		Expect(subset.PageCount()).To(Equal(2))
	})

	It("should grow with the number of pages serialized", func() {
		doc, err := opener.Open(sourcePath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		var one, three bytes.Buffer
		Expect(doc.WritePages(&one, []int{1})).To(Succeed())
		Expect(doc.WritePages(&three, []int{1, 2, 3})).To(Succeed())

		Expect(one.Len()).To(BeNumerically(">", 20*1024))
		Expect(three.Len()).To(BeNumerically(">", one.Len()+2*20*1024-1024))
	})

	It("should not alter the source when serializing repeatedly", func() {
		doc, err := opener.Open(sourcePath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		for i := 0; i < 3; i++ {
			var buf bytes.Buffer
			Expect(doc.WritePages(&buf, pdf.PageRange(1, 4))).To(Succeed())
		}
		Expect(doc.PageCount()).To(Equal(4))
	})

	It("should reject empty and out-of-range selections", func() {
		doc, err := opener.Open(sourcePath)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		var buf bytes.Buffer
		Expect(errors.Is(doc.WritePages(&buf, nil), pdf.ErrNoPages)).To(BeTrue())
		Expect(doc.WritePages(&buf, []int{5})).To(MatchError(ContainSubstring("out of range")))
	})

	It("should fail on a file that is not a PDF", func() {
		bogus := filepath.Join(tempDir, "bogus.pdf")
		Expect(os.WriteFile(bogus, []byte("definitely not a pdf"), 0644)).To(Succeed())

		_, err := opener.Open(bogus)
		Expect(err).To(HaveOccurred())
	})

	It("should fail on a missing file", func() {
		_, err := opener.Open(filepath.Join(tempDir, "missing.pdf"))
		Expect(err).To(MatchError(ContainSubstring("failed to open PDF")))
	})

	DescribeTable("PageRange",
		func(first, last int, expected []int) {
			Expect(pdf.PageRange(first, last)).To(Equal(expected))
		},
		Entry("single page", 3, 3, []int{3}),
		Entry("several pages", 1, 4, []int{1, 2, 3, 4}),
		Entry("empty range", 4, 3, nil),
	)
})
