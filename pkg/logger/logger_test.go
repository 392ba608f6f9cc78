package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/gestionpdf/pkg/logger"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	newLogger := func(verbose, debug bool) *logger.Logger {
		return logger.New(
			logger.WithOutput(buf),
			logger.WithPrefix("[test] "),
			logger.WithFlags(0),
			logger.WithLevels(verbose, debug),
		)
	}

	It("should only print info by default", func() {
		log := newLogger(false, false)
		log.Info("created %d", 3)
		log.Debug("hidden")
		log.Trace("hidden")

		Expect(buf.String()).To(Equal("[test] INFO: created 3\n"))
	})

	It("should print debug when verbose", func() {
		log := newLogger(true, false)
		log.Debug("visible")
		log.Trace("hidden")

		Expect(buf.String()).To(Equal("[test] DEBUG: visible\n"))
		Expect(log.IsVerbose()).To(BeTrue())
		Expect(log.Level()).To(Equal(logger.LevelInfo))
	})

	It("should print everything in debug mode", func() {
		log := newLogger(false, true)
		log.Debug("one")
		log.Trace("two")

		Expect(buf.String()).To(Equal("[test] DEBUG: one\n[test] TRACE: two\n"))
		Expect(log.Level()).To(Equal(logger.LevelTrace))
	})

	It("should tag warnings and errors", func() {
		log := newLogger(false, false)
		log.Warn("careful")
		log.Error("broken: %v", "xref")

		Expect(buf.String()).To(Equal("[test] WARN: careful\n[test] ERROR: broken: xref\n"))
	})

	It("should drop everything when discarding", func() {
		log := logger.Discard()
		log.Info("nothing")
		Expect(buf.Len()).To(BeZero())
	})
})
