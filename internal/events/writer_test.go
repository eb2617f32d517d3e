// ABOUTME: Tests for the JSONL writer that persists config change events
// ABOUTME: Covers appending, filtering, ordering, limits, and malformed lines
package events_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/claudeup/syscolor/internal/events"
)

var _ = Describe("JSONLWriter", func() {
	var (
		writer  *events.JSONLWriter
		logPath string
	)

	BeforeEach(func() {
		logPath = filepath.Join(GinkgoT().TempDir(), "events", "operations.log")

		var err error
		writer, err = events.NewJSONLWriter(logPath)
		Expect(err).NotTo(HaveOccurred())
	})

	event := func(op, file string, at time.Time) *events.FileOperation {
		return &events.FileOperation{
			Timestamp:  at,
			Operation:  op,
			File:       file,
			ChangeType: events.ChangeTypeUpdate,
		}
	}

	It("creates the log directory", func() {
		info, err := os.Stat(filepath.Dir(logPath))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
		Expect(writer.Path()).To(Equal(logPath))
	})

	It("returns no events before anything is written", func() {
		recorded, err := writer.Query(events.EventFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded).To(BeEmpty())
	})

	It("appends one line per event", func() {
		now := time.Now()
		Expect(writer.Write(event("config set-format", "/a.json", now))).To(Succeed())
		Expect(writer.Write(event("config reset", "/a.json", now))).To(Succeed())

		data, err := os.ReadFile(logPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(HaveSuffix("\n"))
		Expect(strings.Count(string(data), "\n")).To(Equal(2))
	})

	It("returns the most recent events first", func() {
		base := time.Now().Add(-time.Hour)
		Expect(writer.Write(event("first", "/a.json", base))).To(Succeed())
		Expect(writer.Write(event("third", "/a.json", base.Add(2*time.Minute)))).To(Succeed())
		Expect(writer.Write(event("second", "/a.json", base.Add(time.Minute)))).To(Succeed())

		recorded, err := writer.Query(events.EventFilters{Limit: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded).To(HaveLen(2))
		Expect(recorded[0].Operation).To(Equal("third"))
		Expect(recorded[1].Operation).To(Equal("second"))
	})

	It("filters by operation, file, and time", func() {
		base := time.Now().Add(-time.Hour)
		Expect(writer.Write(event("config set-fallback", "/a.json", base))).To(Succeed())
		Expect(writer.Write(event("config unset-fallback", "/b.json", base.Add(30*time.Minute)))).To(Succeed())
		Expect(writer.Write(event("config reset", "/a.json", base.Add(40*time.Minute)))).To(Succeed())

		byOp, err := writer.Query(events.EventFilters{Operation: "fallback"})
		Expect(err).NotTo(HaveOccurred())
		Expect(byOp).To(HaveLen(2))

		byFile, err := writer.Query(events.EventFilters{File: "/b.json"})
		Expect(err).NotTo(HaveOccurred())
		Expect(byFile).To(HaveLen(1))

		recent, err := writer.Query(events.EventFilters{Since: base.Add(35 * time.Minute)})
		Expect(err).NotTo(HaveOccurred())
		Expect(recent).To(HaveLen(1))
		Expect(recent[0].Operation).To(Equal("config reset"))
	})

	It("skips malformed lines", func() {
		Expect(writer.Write(event("config reset", "/a.json", time.Now()))).To(Succeed())

		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0600)
		Expect(err).NotTo(HaveOccurred())
		_, err = f.WriteString("not json\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Close()).To(Succeed())

		recorded, err := writer.Query(events.EventFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded).To(HaveLen(1))
	})
})

