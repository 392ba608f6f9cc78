package split_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/gestionpdf/internal/split"
)

var _ = Describe("Batch splitting", func() {
	var (
		rootDir  string
		opener   *fakeOpener
		splitter *split.Splitter
	)

	writeSource := func(rel string, size int) string {
		path := filepath.Join(rootDir, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(os.WriteFile(path, make([]byte, size), 0644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		rootDir, err = os.MkdirTemp("", "split-batch-test-*")
		Expect(err).NotTo(HaveOccurred())
		rootDir, err = filepath.EvalSymlinks(rootDir)
		Expect(err).NotTo(HaveOccurred())

		opener = newFakeOpener()
		splitter = split.NewSplitter(opener, splitterTestLogger())
	})

	AfterEach(func() {
		os.RemoveAll(rootDir)
	})

	It("should split large files next to themselves and skip small ones", func() {
		large := writeSource(filepath.Join("nested", "large.pdf"), 2*1024*1024)
		writeSource("small.pdf", 1024)
		opener.docs[large] = uniformFakeDocument(4, 0.6)

		results, err := splitter.SplitAll(context.Background(), rootDir, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))

		Expect(results[0].Source.RelativePath).To(Equal(filepath.Join("nested", "large.pdf")))
		Expect(results[0].Err).NotTo(HaveOccurred())
		Expect(rangesOf(results[0].Parts)).To(Equal([]pageRange{{1, 1}, {2, 2}, {3, 3}, {4, 4}}))
		Expect(filepath.Dir(results[0].Parts[0].Path)).To(Equal(filepath.Dir(large)))

		Expect(results[1].Source.RelativePath).To(Equal("small.pdf"))
		Expect(results[1].Skipped).To(BeTrue())
		Expect(opener.opened).To(Equal([]string{large}))
	})

	It("should ignore earlier split outputs", func() {
		writeSource("big_partie_001.pdf", 2*1024*1024)

		results, err := splitter.SplitAll(context.Background(), rootDir, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
		Expect(opener.opened).To(BeEmpty())
	})

	It("should record a failing file and continue", func() {
		broken := writeSource("a_broken.pdf", 2*1024*1024)
		good := writeSource("b_good.pdf", 2*1024*1024)
		opener.docs[good] = uniformFakeDocument(2, 0.6)

		results, err := splitter.SplitAll(context.Background(), rootDir, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Source.AbsolutePath).To(Equal(broken))
		Expect(results[0].Err).To(MatchError(ContainSubstring("a_broken.pdf")))
		Expect(results[1].Err).NotTo(HaveOccurred())
		Expect(results[1].Parts).To(HaveLen(2))
	})

	It("should reject an invalid size before scanning", func() {
		_, err := splitter.SplitAll(context.Background(), filepath.Join(rootDir, "missing"), -1)
		Expect(errors.Is(err, split.ErrInvalidMaxSize)).To(BeTrue())
	})

	It("should stop when the context is cancelled", func() {
		writeSource("large.pdf", 2*1024*1024)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := splitter.SplitAll(ctx, rootDir, 1)
		Expect(err).To(Equal(context.Canceled))
		Expect(opener.opened).To(BeEmpty())
	})
})
